package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Formatter formats diagnostics in a Rust-style format with source snippets.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string // source text by filename
}

// NewFormatter creates a formatter writing to stderr.
func NewFormatter() *Formatter {
	return NewFormatterTo(os.Stderr)
}

// NewFormatterTo creates a formatter writing to the given writer.
func NewFormatterTo(out io.Writer) *Formatter {
	return &Formatter{
		out:         out,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers in-memory source text for a filename so snippets can be
// rendered without touching the filesystem.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

func (f *Formatter) loadSource(filename string) (string, bool) {
	if filename == "" {
		return "", false
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, true
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", false
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, true
}

// Format formats and prints a diagnostic with a source snippet when available.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	src, ok := f.loadSource(d.Span.Filename)
	if !ok || !d.Span.IsValid() {
		if d.Span.IsValid() {
			fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		}
		f.printNotes(d)
		return
	}

	f.printSnippet(src, d.Span)
	f.printNotes(d)
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}

	if d.Code != "" {
		fmt.Fprintf(f.out, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.out, "%s: %s\n", severity, d.Message)
	}
}

// printSnippet prints the offending line with a caret underline.
func (f *Formatter) printSnippet(src string, span Span) {
	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", span.String())
		return
	}

	lineContent := lines[span.Line-1]
	lineNumWidth := len(fmt.Sprintf("%d", span.Line))
	pad := strings.Repeat(" ", lineNumWidth)

	fmt.Fprintf(f.out, "  --> %s\n", span.String())
	fmt.Fprintf(f.out, "   %s |\n", pad)
	fmt.Fprintf(f.out, " %*d | %s\n", lineNumWidth, span.Line, lineContent)

	underline := make([]byte, 0, len(lineContent))
	for i := 0; i < span.Column-1 && i < len(lineContent); i++ {
		if lineContent[i] == '\t' {
			underline = append(underline, '\t')
		} else {
			underline = append(underline, ' ')
		}
	}
	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	for i := 0; i < width && span.Column-1+i < len(lineContent)+1; i++ {
		underline = append(underline, '^')
	}
	fmt.Fprintf(f.out, "   %s | %s\n", pad, string(underline))
	fmt.Fprintf(f.out, "   %s |\n", pad)
}

// printNotes prints notes and related locations after the snippet.
func (f *Formatter) printNotes(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	for _, related := range d.Related {
		if related.IsValid() {
			fmt.Fprintf(f.out, "  = note: related location at %s\n", related.String())
		}
	}
}
