// Package quantize reduces the colours of an image to a small set of
// representative swatches using volume-driven box cutting.
package quantize

import (
	"slices"

	"github.com/jmylchreest/vibrant/internal/colour"
)

// Entry is a single histogram bucket: a distinct colour and how many
// pixels carried it.
type Entry struct {
	Color colour.Color
	Count int
}

// BuildHistogram counts the distinct colours in pixels.
// Entries are returned in ascending packed-colour order; the input slice is
// not modified.
func BuildHistogram(pixels []colour.Color) []Entry {
	if len(pixels) == 0 {
		return nil
	}

	sorted := slices.Clone(pixels)
	slices.Sort(sorted)

	entries := make([]Entry, 0, min(len(sorted), 1024))
	for _, c := range sorted {
		if n := len(entries); n > 0 && entries[n-1].Color == c {
			entries[n-1].Count++
			continue
		}
		entries = append(entries, Entry{Color: c, Count: 1})
	}

	return entries
}
