package toolchain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/docbuild/internal/adapters/toolchain"
	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // test requires an executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o700))
	return path
}

func defaultBinaries() domain.Binaries {
	return domain.Binaries{HTML: domain.DefaultHTMLBinary, PDF: domain.DefaultPDFBinary}
}

func TestResolver_Resolve_Host(t *testing.T) {
	dir := t.TempDir()
	html := writeExecutable(t, dir, "asciidoctor")
	pdf := writeExecutable(t, dir, "asciidoctor-pdf")

	resolver := toolchain.NewResolverWithEnv([]string{"PATH=" + dir})
	got, err := resolver.Resolve(defaultBinaries(), false)
	require.NoError(t, err)
	assert.Equal(t, domain.Binaries{HTML: html, PDF: pdf}, got)
}

func TestResolver_Resolve_HostMissing(t *testing.T) {
	tests := []struct {
		name        string
		present     []string
		wantMissing string
	}{
		{name: "pdf missing", present: []string{"asciidoctor"}, wantMissing: "asciidoctor-pdf"},
		{name: "html missing", present: []string{"asciidoctor-pdf"}, wantMissing: "asciidoctor"},
		{name: "both missing", present: nil, wantMissing: "asciidoctor, asciidoctor-pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, name := range tt.present {
				writeExecutable(t, dir, name)
			}

			resolver := toolchain.NewResolverWithEnv([]string{"PATH=" + dir})
			got, err := resolver.Resolve(defaultBinaries(), false)
			require.ErrorIs(t, err, domain.ErrToolchainMissing)
			assert.Equal(t, domain.Binaries{}, got)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.wantMissing, zErr.Metadata()["missing"])
		})
	}
}

func TestResolver_Resolve_CustomBinaries(t *testing.T) {
	dir := t.TempDir()
	html := writeExecutable(t, dir, "my-asciidoctor")
	pdf := writeExecutable(t, dir, "my-asciidoctor-pdf")

	resolver := toolchain.NewResolverWithEnv([]string{"PATH=" + dir})
	got, err := resolver.Resolve(domain.Binaries{HTML: "my-asciidoctor", PDF: "my-asciidoctor-pdf"}, false)
	require.NoError(t, err)
	assert.Equal(t, domain.Binaries{HTML: html, PDF: pdf}, got)
}

func TestResolver_Resolve_ContainerSkipsLookup(t *testing.T) {
	resolver := toolchain.NewResolverWithEnv(nil)

	got, err := resolver.Resolve(domain.Binaries{HTML: "custom", PDF: "custom-pdf"}, true)
	require.NoError(t, err)
	assert.Equal(t, defaultBinaries(), got)
}
