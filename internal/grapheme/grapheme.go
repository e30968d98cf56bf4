// Package grapheme splits text into user-perceived characters.
//
// The typewriter types and deletes one grapheme cluster per tick, so a
// combining mark or a ZWJ emoji sequence never appears half-typed.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Join concatenates the first n clusters. n is clamped to [0, len(clusters)].
func Join(clusters []string, n int) string {
	if n > len(clusters) {
		n = len(clusters)
	}
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters[:n] {
		sb.WriteString(c)
	}
	return sb.String()
}

