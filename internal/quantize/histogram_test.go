package quantize

import (
	"math/rand"
	"testing"

	"github.com/jmylchreest/vibrant/internal/colour"
)

func TestBuildHistogram(t *testing.T) {
	tests := []struct {
		name   string
		pixels []colour.Color
		want   []Entry
	}{
		{
			name:   "empty",
			pixels: nil,
			want:   nil,
		},
		{
			name:   "single pixel",
			pixels: []colour.Color{0xFF112233},
			want:   []Entry{{Color: 0xFF112233, Count: 1}},
		},
		{
			name:   "duplicates collapse in ascending order",
			pixels: []colour.Color{0xFF0000FF, 0xFF00FF00, 0xFF0000FF, 0xFFFF0000, 0xFF00FF00, 0xFF0000FF},
			want: []Entry{
				{Color: 0xFF0000FF, Count: 3},
				{Color: 0xFF00FF00, Count: 2},
				{Color: 0xFFFF0000, Count: 1},
			},
		},
		{
			name:   "alpha distinguishes colours",
			pixels: []colour.Color{0xFF102030, 0x80102030},
			want:   []Entry{{Color: 0x80102030, Count: 1}, {Color: 0xFF102030, Count: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildHistogram(tt.pixels)
			if len(got) != len(tt.want) {
				t.Fatalf("BuildHistogram() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("BuildHistogram()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildHistogramInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		pixels := make([]colour.Color, rng.Intn(500))
		for i := range pixels {
			// Narrow channel range so duplicates are common.
			pixels[i] = colour.Opaque(uint8(rng.Intn(8)*32), uint8(rng.Intn(8)*32), uint8(rng.Intn(4)*64))
		}
		original := append([]colour.Color(nil), pixels...)

		entries := BuildHistogram(pixels)

		sum := 0
		for i, e := range entries {
			if e.Count <= 0 {
				t.Fatalf("entry %d has count %d", i, e.Count)
			}
			if i > 0 && entries[i-1].Color >= e.Color {
				t.Fatalf("entries not strictly ascending at %d: %s >= %s", i, entries[i-1].Color, e.Color)
			}
			sum += e.Count
		}
		if sum != len(pixels) {
			t.Fatalf("sum of counts = %d, want %d", sum, len(pixels))
		}

		for i := range pixels {
			if pixels[i] != original[i] {
				t.Fatalf("BuildHistogram() modified its input at %d", i)
			}
		}

		// Order independence.
		rng.Shuffle(len(pixels), func(i, j int) { pixels[i], pixels[j] = pixels[j], pixels[i] })
		shuffled := BuildHistogram(pixels)
		if len(shuffled) != len(entries) {
			t.Fatalf("shuffled histogram has %d entries, want %d", len(shuffled), len(entries))
		}
		for i := range shuffled {
			if shuffled[i] != entries[i] {
				t.Fatalf("shuffled histogram differs at %d: %+v vs %+v", i, shuffled[i], entries[i])
			}
		}
	}
}
