// Package output renders runner results for people and for tools.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AdamBrianBright/callbackreturn/internal/rule"
	"github.com/AdamBrianBright/callbackreturn/internal/runner"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Render writes results to w in the given format. Color only affects text.
func Render(w io.Writer, format Format, results []runner.FileResult, useColor bool) error {
	switch format {
	case FormatText:
		return Text(w, results, useColor)
	case FormatJSON:
		return JSON(w, results)
	case FormatYAML:
		return YAML(w, results)
	}

	return fmt.Errorf("unknown format %q", format)
}

// FileReport is the machine readable form of a runner.FileResult.
type FileReport struct {
	Path        string            `json:"path" yaml:"path"`
	Error       string            `json:"error,omitempty" yaml:"error,omitempty"`
	Diagnostics []rule.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// Reports converts results, keeping their order. Diagnostics is never nil.
func Reports(results []runner.FileResult) []FileReport {
	reports := make([]FileReport, 0, len(results))
	for _, res := range results {
		report := FileReport{Path: res.Path, Diagnostics: res.Diagnostics}
		if report.Diagnostics == nil {
			report.Diagnostics = []rule.Diagnostic{}
		}
		if res.Err != nil {
			report.Error = res.Err.Error()
		}
		reports = append(reports, report)
	}

	return reports
}

// JSON writes an indented JSON array of FileReport.
func JSON(w io.Writer, results []runner.FileResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Reports(results)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// YAML writes a YAML sequence of FileReport.
func YAML(w io.Writer, results []runner.FileResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Reports(results)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}
