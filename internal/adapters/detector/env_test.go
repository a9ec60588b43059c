package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/docbuild/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		isTTY bool
		ci    string
		want  detector.LogMode
	}{
		{name: "terminal outside CI", isTTY: true, ci: "", want: detector.ModePretty},
		{name: "terminal with CI=true", isTTY: true, ci: "true", want: detector.ModeJSON},
		{name: "terminal with CI=1", isTTY: true, ci: "1", want: detector.ModeJSON},
		{name: "terminal with CI=false", isTTY: true, ci: "false", want: detector.ModePretty},
		{name: "pipe", isTTY: false, ci: "", want: detector.ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeJSON, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.LogMode
		flag     string
		want     detector.LogMode
	}{
		{name: "empty keeps detection", detected: detector.ModePretty, flag: "", want: detector.ModePretty},
		{name: "auto keeps detection", detected: detector.ModeJSON, flag: "auto", want: detector.ModeJSON},
		{name: "pretty override", detected: detector.ModeJSON, flag: "pretty", want: detector.ModePretty},
		{name: "text alias", detected: detector.ModeJSON, flag: "text", want: detector.ModePretty},
		{name: "json override", detected: detector.ModePretty, flag: "json", want: detector.ModeJSON},
		{name: "unknown keeps detection", detected: detector.ModePretty, flag: "xml", want: detector.ModePretty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}

func TestLogMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "pretty", detector.ModePretty.String())
	assert.Equal(t, "json", detector.ModeJSON.String())
}
