// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-importer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParseResult outputs a human-readable summary of one parse result.
func (p *Printer) PrintParseResult(filename string, result types.ParseResult) {
	var sb strings.Builder

	status := "FAILED"
	if result.Success {
		status = "OK"
	}
	sb.WriteString(fmt.Sprintf("File:       %s\n", filename))
	sb.WriteString(fmt.Sprintf("Status:     %s\n", status))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))

	if result.Data != nil {
		info := result.Data.PersonalInfo
		sb.WriteString("\n")
		if info.FullName != "" {
			sb.WriteString(fmt.Sprintf("Name:   %s\n", info.FullName))
		}
		if info.Email != "" {
			sb.WriteString(fmt.Sprintf("Email:  %s\n", info.Email))
		}
		if info.Phone != "" {
			sb.WriteString(fmt.Sprintf("Phone:  %s\n", info.Phone))
		}

		if len(result.Data.Sections) > 0 {
			sb.WriteString("\nSections:\n")
			for _, section := range result.Data.Sections {
				sb.WriteString(fmt.Sprintf("  • %s (%s, %d items)\n",
					section.Title, section.Type, len(section.Items)))
			}
		}
	}

	if len(result.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		count := min(len(result.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", result.Errors[i].Field, result.Errors[i].Message))
		}
		if len(result.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Errors)-maxItemsToShow))
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		count := min(len(result.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Warnings[i]))
		}
		if len(result.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Warnings)-maxItemsToShow))
		}
	}

	p.printBox("PARSE RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs summary statistics for one parse result.
func (p *Printer) PrintStats(stats types.ParsingStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Confidence:    %.2f\n", stats.Confidence))
	sb.WriteString(fmt.Sprintf("Sections:      %d\n", stats.SectionsFound))
	sb.WriteString(fmt.Sprintf("Errors:        %d\n", stats.ErrorsCount))
	sb.WriteString(fmt.Sprintf("Warnings:      %d\n", stats.WarningsCount))
	sb.WriteString(fmt.Sprintf("Completeness:  %.2f", stats.Completeness))

	p.printBox("PARSING STATS", sb.String())
}
