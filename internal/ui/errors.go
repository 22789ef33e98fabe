package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	minLineWidth   = 10
	errorPrefix    = "Error: "
	truncationMark = "..."
	chainSeparator = ": "
	wrapperPrefix  = "failed to "
)

// formatErrorForDisplay renders err for the notice line: the wrap chain is
// compacted, then word-wrapped to maxWidth over at most maxErrorLines.
// The truncation mark is only added when words were actually dropped.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := compactErrorChain(err.Error())
	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minLineWidth)
	firstWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), minLineWidth)

	lines, truncated := wrapWords(words, firstWidth, width, maxErrorLines)
	if truncated {
		last := len(lines) - 1
		lines[last] = ellipsize(lines[last], width)
	}

	return errorPrefix + strings.Join(lines, "\n")
}

// compactErrorChain drops the intermediate "failed to ..." layers that the
// storage and service wrappers add, keeping the outermost context and the
// root cause. "save failed: failed to save time log: failed to create time
// log: database is locked" becomes "save failed: database is locked".
func compactErrorChain(message string) string {
	parts := strings.Split(message, chainSeparator)
	if len(parts) <= 2 {
		return message
	}

	kept := []string{parts[0]}
	for _, part := range parts[1 : len(parts)-1] {
		if strings.HasPrefix(part, wrapperPrefix) {
			continue
		}
		kept = append(kept, part)
	}
	kept = append(kept, parts[len(parts)-1])
	return strings.Join(kept, chainSeparator)
}

// wrapWords fills lines greedily. truncated reports whether any word did
// not fit in maxLines.
func wrapWords(words []string, firstWidth, width, maxLines int) (lines []string, truncated bool) {
	var line strings.Builder
	lineWidth := firstWidth

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		lineLen := utf8.RuneCountInString(line.String())

		if lineLen > 0 && lineLen+1+wordLen > lineWidth {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxLines {
				return lines, true
			}
			lineWidth = width
		}

		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}

	return append(lines, line.String()), false
}

// ellipsize appends the truncation mark, cutting line so it still fits width
func ellipsize(line string, width int) string {
	room := width - utf8.RuneCountInString(truncationMark)
	if runes := []rune(line); room > 0 && len(runes) > room {
		line = string(runes[:room])
	}
	return line + truncationMark
}
