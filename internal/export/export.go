// Package export writes both collections to a single JSON or YAML document.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q (use json or yaml)", s)
}

// Document is the export file layout. Collection field names match the
// storage keys.
type Document struct {
	App            string                `json:"app" yaml:"app"`
	Version        string                `json:"version" yaml:"version"`
	ExportedAt     time.Time             `json:"exportedAt" yaml:"exportedAt"`
	JournalEntries []models.JournalEntry `json:"journalEntries" yaml:"journalEntries"`
	Reminders      []models.Reminder     `json:"reminders" yaml:"reminders"`
}

func NewDocument(entries []models.JournalEntry, reminders []models.Reminder, at time.Time) Document {
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	return Document{
		App:            constants.AppName,
		Version:        constants.Version,
		ExportedAt:     at.UTC().Truncate(time.Second),
		JournalEntries: entries,
		Reminders:      reminders,
	}
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json export: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml export: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	return nil
}

// Read decodes an export produced by Write.
func Read(r io.Reader, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("failed to decode json export: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("failed to decode yaml export: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported export format %q", format)
	}
	return doc, nil
}
