// Package payload prepares the text that gets typed: trailing whitespace
// normalization and the bounded dry-run preview.
package payload

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

const (
	// PreviewLimit is the longest text shown verbatim by Preview.
	PreviewLimit = 200
	previewEdge  = PreviewLimit / 2
)

// Normalize strips all trailing whitespace from raw and, unless noNewline is
// set, appends exactly one newline.
func Normalize(raw string, noNewline bool) string {
	text := strings.TrimRightFunc(raw, unicode.IsSpace)
	if !noNewline {
		text += "\n"
	}
	return text
}

// Len reports the length of text in characters.
func Len(text string) int {
	return len([]rune(text))
}

// HasTrailingNewline reports whether text ends in a newline.
func HasTrailingNewline(text string) bool {
	return strings.HasSuffix(text, "\n")
}

// Preview returns text unchanged when it is at most PreviewLimit characters.
// Longer text is cut to its first and last 100 characters around a line
// stating how many characters were left out.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLimit {
		return text
	}
	omitted := len(runes) - PreviewLimit
	return fmt.Sprintf("%s\n... (%d chars omitted) ...\n%s",
		string(runes[:previewEdge]), omitted, string(runes[len(runes)-previewEdge:]))
}

// WriteDryRun prints the framed preview of text to w.
func WriteDryRun(w io.Writer, text string) error {
	rule := strings.Repeat("-", 40)
	_, err := fmt.Fprintf(w, "\nDRY RUN - Would type %d characters:\n%s\n%s\n%s\n",
		Len(text), rule, Preview(text), rule)
	return err
}
