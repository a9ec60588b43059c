package config

// Docfile represents the structure of the docbuild.yaml configuration file.
// Every field is optional; absent fields keep their defaults.
type Docfile struct {
	Version          int           `yaml:"version"`
	Output           *string       `yaml:"output"`
	Document         *string       `yaml:"document"`
	Manpage          *string       `yaml:"manpage"`
	ManpageDir       *string       `yaml:"manpage_dir"`
	DiagramExtension *string       `yaml:"diagram_extension"`
	Binaries         *BinariesDTO  `yaml:"binaries"`
	Container        *ContainerDTO `yaml:"container"`
	Revision         *RevisionDTO  `yaml:"revision"`
	Library          *LibraryDTO   `yaml:"library"`
	Parallel         *bool         `yaml:"parallel"`
	Clean            []string      `yaml:"clean"`
}

// BinariesDTO names the host rendering programs.
type BinariesDTO struct {
	HTML *string `yaml:"html"`
	PDF  *string `yaml:"pdf"`
}

// ContainerDTO configures container mode.
type ContainerDTO struct {
	Engine   *string `yaml:"engine"`
	File     *string `yaml:"file"`
	Mount    *string `yaml:"mount"`
	QuirkDir *string `yaml:"quirk_dir"`
}

// RevisionDTO selects how the revision stamp is read.
type RevisionDTO struct {
	Source *string `yaml:"source"`
}

// LibraryDTO configures the library documentation step.
type LibraryDTO struct {
	Dir         *string  `yaml:"dir"`
	Command     []string `yaml:"command"`
	Targets     []string `yaml:"targets"`
	Diagnostics *bool    `yaml:"diagnostics"`
	Warn        *bool    `yaml:"warn"`
}
