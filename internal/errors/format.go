package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorWhite = "\033[37m"
	colorBold  = "\033[1m"
)

// Format returns the error as a multi-line block for terminal display.
// Colors are applied only when color is true.
func (e *AttrsError) Format(color bool) string {
	paint := func(code, text string) string {
		if !color {
			return text
		}
		return code + text + colorReset
	}

	var b strings.Builder

	b.WriteString(paint(colorRed+colorBold, "ERROR "))
	if e.Code != "" {
		b.WriteString(paint(colorWhite+colorBold, e.Code+": "))
	}
	b.WriteString(paint(colorWhite, e.Message))
	b.WriteString("\n")

	if e.Detail != "" {
		b.WriteString("\n")
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if e.Wrapped != nil {
		b.WriteString("\n  ")
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("\n  ")
		b.WriteString(paint(colorCyan, "Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n")
	}

	return b.String()
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder

	for _, word := range strings.Fields(text) {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// Fprint writes a formatted error to w. Non-AttrsError values get a plain
// one-line header.
func Fprint(w io.Writer, err error, color bool) {
	var ae *AttrsError
	if errors.As(err, &ae) {
		fmt.Fprint(w, ae.Format(color))
		return
	}
	if color {
		fmt.Fprintf(w, "%sERROR:%s %s\n", colorRed+colorBold, colorReset, err.Error())
		return
	}
	fmt.Fprintf(w, "ERROR: %s\n", err.Error())
}
