// Package report renders scan results. The plain-text form writes one
// formatted line per finding; table, JSON and SARIF forms are available for
// terminals and CI integrations. Rendering never reorders or drops findings.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/leakscan/leakscan/internal/types"
)

// Options carries presentation knobs shared by the renderers.
type Options struct {
	Color        bool
	Duration     time.Duration
	FilesScanned int
}

// WriteText writes one line per finding in the canonical format. It stops at
// the first write error so callers can report unsaved results.
func WriteText(w io.Writer, findings []types.Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintf(w, "File: %s, Pattern: %s, Line: %s, Line Number: %d\n",
			f.Path, f.Rule, f.Line, f.LineNumber); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the findings as an indented JSON array.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// Summary writes a short footer with counts and timing. Used by the table
// renderer and verbose terminal output.
func Summary(w io.Writer, findings []types.Finding, opts Options) {
	if len(findings) == 0 {
		msg := "No secrets found"
		if opts.Color {
			msg = color.GreenString(msg)
		}
		fmt.Fprintln(w, msg)
	} else {
		msg := fmt.Sprintf("Findings: %d", len(findings))
		if opts.Color {
			msg = color.RedString(msg)
		}
		fmt.Fprintln(w, msg)
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}
