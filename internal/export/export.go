// Package export renders a prompt's saved results to Markdown or JSON files
// for sharing outside the app.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"chatlist/internal/models"
	"chatlist/internal/storeerr"
)

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Document is one prompt with the results selected for export.
type Document struct {
	Prompt  models.Prompt
	Results []models.ResultWithModel
}

type jsonResult struct {
	ModelName    string   `json:"model_name"`
	ModelID      uint     `json:"model_id"`
	ResponseText string   `json:"response_text"`
	ResponseTime *float64 `json:"response_time"`
	TokensUsed   *int     `json:"tokens_used"`
	SavedAt      string   `json:"saved_at"`
}

type jsonDocument struct {
	ExportDate   string       `json:"export_date"`
	Prompt       string       `json:"prompt"`
	Tags         string       `json:"tags,omitempty"`
	ResultsCount int          `json:"results_count"`
	Results      []jsonResult `json:"results"`
}

// DefaultFilename names export files the way the app always has:
// chatlist_export_YYYYMMDD_HHMMSS plus the format's extension.
func DefaultFilename(format string, now time.Time) string {
	ext := ".md"
	if format == FormatJSON {
		ext = ".json"
	}
	return "chatlist_export_" + now.Format("20060102_150405") + ext
}

// WriteMarkdown renders the document as a Markdown report.
func WriteMarkdown(w io.Writer, doc Document, now time.Time) error {
	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	write("# ChatList export\n\n")
	write("**Export date:** %s\n\n", now.Format("2006-01-02 15:04:05"))
	write("**Prompt:**\n\n```\n%s\n```\n\n", doc.Prompt.Text)
	if doc.Prompt.Tags != "" {
		write("**Tags:** %s\n\n", doc.Prompt.Tags)
	}
	write("**Results:** %d\n\n---\n\n", len(doc.Results))

	for i, res := range doc.Results {
		write("## %d. %s\n\n", i+1, res.ModelName)
		write("**Response:**\n\n%s\n\n", res.ResponseText)
		if res.ResponseTime != nil {
			write("**Response time:** %.2fs", *res.ResponseTime)
			if res.TokensUsed != nil {
				write(" | **Tokens used:** %d", *res.TokensUsed)
			}
			write("\n\n")
		} else if res.TokensUsed != nil {
			write("**Tokens used:** %d\n\n", *res.TokensUsed)
		}
		write("---\n\n")
	}
	return err
}

// WriteJSON renders the document as an indented JSON payload.
func WriteJSON(w io.Writer, doc Document, now time.Time) error {
	out := jsonDocument{
		ExportDate:   now.Format(time.RFC3339),
		Prompt:       doc.Prompt.Text,
		Tags:         doc.Prompt.Tags,
		ResultsCount: len(doc.Results),
		Results:      make([]jsonResult, 0, len(doc.Results)),
	}
	for _, res := range doc.Results {
		out.Results = append(out.Results, jsonResult{
			ModelName:    res.ModelName,
			ModelID:      res.ModelID,
			ResponseText: res.ResponseText,
			ResponseTime: res.ResponseTime,
			TokensUsed:   res.TokensUsed,
			SavedAt:      res.SavedAt.Format(time.RFC3339),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// WriteFile writes the document to path in the given format. The content goes
// to a uniquely named temp file first and is renamed into place, so a failed
// export never leaves a partial file at path.
func WriteFile(path, format string, doc Document) error {
	if format != FormatMarkdown && format != FormatJSON {
		return storeerr.Validation("export format must be 'markdown' or 'json'")
	}

	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	now := time.Now()
	if format == FormatJSON {
		err = WriteJSON(f, doc, now)
	} else {
		err = WriteMarkdown(f, doc, now)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write export: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalize export: %w", err)
	}
	return nil
}
