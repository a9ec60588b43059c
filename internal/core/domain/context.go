package domain

import "slices"

// ExecutionContext is the resolved toolchain for a single build.
// It is created once per run and passed by value to every component.
type ExecutionContext struct {
	useContainer  bool
	primaryBinary string
	pdfBinary     string
	containerID   string
	wrapper       []string
}

// NewHostContext returns a context that runs the resolved binaries directly.
func NewHostContext(primaryBinary, pdfBinary string) ExecutionContext {
	return ExecutionContext{
		primaryBinary: primaryBinary,
		pdfBinary:     pdfBinary,
	}
}

// NewContainerContext returns a context that runs every rendering command
// through wrapper inside the container image containerID.
func NewContainerContext(primaryBinary, pdfBinary, containerID string, wrapper []string) ExecutionContext {
	return ExecutionContext{
		useContainer:  true,
		primaryBinary: primaryBinary,
		pdfBinary:     pdfBinary,
		containerID:   containerID,
		wrapper:       slices.Clone(wrapper),
	}
}

// UseContainer reports whether commands run inside a container.
func (c ExecutionContext) UseContainer() bool { return c.useContainer }

// PrimaryBinary returns the HTML and manpage rendering binary.
func (c ExecutionContext) PrimaryBinary() string { return c.primaryBinary }

// PDFBinary returns the PDF rendering binary.
func (c ExecutionContext) PDFBinary() string { return c.pdfBinary }

// ContainerID returns the image identifier, empty in host mode.
func (c ExecutionContext) ContainerID() string { return c.containerID }

// Wrap prefixes cmd with the container invocation. In host mode cmd is returned unchanged.
func (c ExecutionContext) Wrap(cmd Command) Command {
	if !c.useContainer {
		return cmd
	}
	return cmd.WithPrefix(c.wrapper)
}
