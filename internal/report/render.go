// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format names accepted by [Render].
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by [Render] for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(18)
	faintStyle = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Render writes s to w in format.
func Render(w io.Writer, format string, s Summary) error {
	return render(w, format, s, func() error { return Text(w, s) })
}

// RenderModels writes m to w in format.
func RenderModels(w io.Writer, format string, m ModelList) error {
	return render(w, format, m, func() error { return ModelsText(w, m) })
}

func render(w io.Writer, format string, v any, text func() error) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return text()
	case FormatJSON:
		return JSON(w, v)
	case FormatYAML:
		return YAML(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Text writes a human-readable report.
func Text(w io.Writer, s Summary) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Gemini configuration"))
	b.WriteString("\n\n")

	row(&b, "API keys", fmt.Sprintf("%d (%d valid)", len(s.Keys), s.ValidKeys()))
	for _, k := range s.Keys {
		row(&b, fmt.Sprintf("  [%d]", k.Index), fmt.Sprintf("%s  %s", k.Masked, status(k.Valid, "ok", "invalid length")))
	}

	if s.Proxy != nil {
		row(&b, "Proxy", fmt.Sprintf("%s  %s", s.Proxy.URL, status(s.Proxy.Valid, "ok", "invalid")))
	} else {
		row(&b, "Proxy", "none")
	}
	row(&b, "Default model", s.DefaultModel)
	row(&b, "Request timeout", fmt.Sprintf("%d ms", s.RequestTimeoutMs))
	row(&b, "Max retries", fmt.Sprint(s.MaxRetries))

	if len(s.Checks) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Key checks"))
		b.WriteString("\n")
		for _, c := range s.Checks {
			result := status(true, "accepted", "")
			if !c.OK {
				result = badStyle.Render(c.Error)
			}
			if c.RequestID != "" {
				result += faintStyle.Render("  request " + c.RequestID)
			}
			row(&b, fmt.Sprintf("  [%d]", c.Index), fmt.Sprintf("%s  %s", c.Masked, result))
		}
	}

	if len(s.Problems) > 0 {
		b.WriteString("\n")
		b.WriteString(badStyle.Render("Problems"))
		b.WriteString("\n")
		for _, p := range s.Problems {
			b.WriteString("  - ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ModelsText writes a human-readable model listing.
func ModelsText(w io.Writer, m ModelList) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Gemini models"))
	b.WriteString("\n\n")

	row(&b, "Key", fmt.Sprintf("[%d] %s", m.KeyIndex, m.Key))
	row(&b, "Default model", fmt.Sprintf("%s  %s", m.DefaultModel, status(m.HasDefault, "available", "not listed")))
	row(&b, "Models", fmt.Sprint(len(m.Models)))
	for _, model := range m.Models {
		limits := ""
		if model.InputTokenLimit > 0 || model.OutputTokenLimit > 0 {
			limits = fmt.Sprintf("  in %d / out %d tokens", model.InputTokenLimit, model.OutputTokenLimit)
		}
		b.WriteString("  - ")
		b.WriteString(model.ID)
		b.WriteString(limits)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func status(ok bool, good, bad string) string {
	if ok {
		return okStyle.Render(good)
	}
	return badStyle.Render(bad)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

// YAML writes v as YAML.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
