package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/conversor/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderChoice(label string, focused bool) string {
	if focused {
		return "‹ " + label + " ›"
	}
	return "  " + label
}

func describe(msg conversionDoneMsg) string {
	return domain.Describe(msg.req, msg.res)
}
