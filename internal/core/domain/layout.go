package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "docbuild.yaml"

	// DefaultOutputDir is the directory that receives every generated artifact.
	DefaultOutputDir = "./documentation-build"

	// DefaultDocument is the primary document rendered to HTML and PDF.
	DefaultDocument = "README.adoc"

	// DefaultManpageDocument is the source of the command line manpage.
	DefaultManpageDocument = "Manpage.adoc"

	// DefaultDiagramExtension is the asciidoctor extension loaded for every rendering.
	DefaultDiagramExtension = "asciidoctor-diagram"

	// DefaultHTMLBinary is the logical name of the primary rendering binary.
	DefaultHTMLBinary = "asciidoctor"

	// DefaultPDFBinary is the logical name of the PDF rendering binary.
	DefaultPDFBinary = "asciidoctor-pdf"

	// ManpageBackend is the asciidoctor backend producing roff manpages.
	ManpageBackend = "manpage"

	// DefaultContainerEngine is the container build/run tool.
	DefaultContainerEngine = "docker"

	// DefaultContainerFile is the container build description in the working directory.
	DefaultContainerFile = "Dockerfile"

	// DefaultContainerMount is where the working directory is mounted inside the container.
	DefaultContainerMount = "/documents"

	// DefaultQuirkDir is the host directory left behind by the containerized font cache.
	// The container runs as the invoking user, which has no home directory there,
	// so the cache ends up below a literal "?" in the bind-mounted working directory.
	DefaultQuirkDir = "?"

	// DefaultLibraryDir is the companion library whose reference documentation is generated.
	DefaultLibraryDir = "akl-core-system-lib"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// ManpageSubdir returns the path below the output directory that receives manpages.
func ManpageSubdir() string {
	return filepath.Join("man", "man1")
}

// DefaultLibraryCommand returns the generator invocation without the target flag.
func DefaultLibraryCommand() []string {
	return []string{"cargo", "doc", "--no-deps", "--document-private-items"}
}

// DefaultLibraryTargets returns the platforms the library documentation is built for.
func DefaultLibraryTargets() []string {
	return []string{"x86_64-pc-windows-gnu", "x86_64-unknown-linux-gnu"}
}

// InventoryIgnores returns the name patterns left out of the artifact report.
// The diagram extension keeps its cache in .asciidoctor below the output directory.
func InventoryIgnores() []string {
	return []string{".asciidoctor", "*.tmp"}
}

// DefaultCleanPatterns returns the glob patterns matching build-artifact directories.
func DefaultCleanPatterns() []string {
	return []string{
		"./*/bin",
		"./*/obj",
		"./*/TestResults",
		"./akl-*/target",
		"./akl-*/build-*",
	}
}
