package domain

// ToolchainGuidance is printed when a rendering binary is missing in host mode.
const ToolchainGuidance = `Please install asciidoctor with the asciidoctor-diagram extension and
asciidoctor-pdf:

  https://docs.asciidoctor.org/asciidoctor/latest/install/ruby-packaging/
  https://docs.asciidoctor.org/pdf-converter/latest/install/#install-asciidoctor-pdf
  https://docs.asciidoctor.org/diagram-extension/latest/installation/
  https://docs.asciidoctor.org/asciidoctor/latest/syntax-highlighting/rouge/

Alternatively run with --docker to build inside a container.`
