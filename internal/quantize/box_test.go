package quantize

import (
	"math/rand"
	"testing"

	"github.com/jmylchreest/vibrant/internal/colour"
)

func newTestArena(entries []Entry) *arena {
	a := &arena{population: make(map[colour.Color]int)}
	for _, e := range entries {
		a.colors = append(a.colors, e.Color)
		a.population[e.Color] = e.Count
	}
	return a
}

func TestBoxFit(t *testing.T) {
	a := newTestArena([]Entry{
		{Color: 0xFF102030, Count: 2},
		{Color: 0xFF405060, Count: 3},
		{Color: 0xFF0A7F01, Count: 5},
	})
	b := newBox(a, 0, 2, 0)

	if b.minR != 0x0A || b.maxR != 0x40 || b.minG != 0x20 || b.maxG != 0x7F || b.minB != 0x01 || b.maxB != 0x60 {
		t.Errorf("bounds = r[%d,%d] g[%d,%d] b[%d,%d]", b.minR, b.maxR, b.minG, b.maxG, b.minB, b.maxB)
	}
	if want := (0x40 - 0x0A + 1) * (0x7F - 0x20 + 1) * (0x60 - 0x01 + 1); b.volume() != want {
		t.Errorf("volume() = %d, want %d", b.volume(), want)
	}
	if b.population != 10 {
		t.Errorf("population = %d, want 10", b.population)
	}
	if b.longestChannel() != channelGreen {
		t.Errorf("longestChannel() = %s, want green", b.longestChannel())
	}
}

func TestBoxSingleColour(t *testing.T) {
	a := newTestArena([]Entry{{Color: 0xFF808080, Count: 4}})
	b := newBox(a, 0, 0, 0)

	if b.volume() != 1 {
		t.Errorf("volume() = %d, want 1", b.volume())
	}
	if _, _, ok := b.split(1); ok {
		t.Error("split() succeeded on a single colour box")
	}
}

func TestLongestChannelTies(t *testing.T) {
	tests := []struct {
		name   string
		colors []colour.Color
		want   channel
	}{
		{name: "all equal prefers red", colors: []colour.Color{0xFF000000, 0xFF101010}, want: channelRed},
		{name: "green and blue tie prefers green", colors: []colour.Color{0xFF000000, 0xFF001010}, want: channelGreen},
		{name: "blue widest", colors: []colour.Color{0xFF000000, 0xFF0102FF}, want: channelBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]Entry, len(tt.colors))
			for i, c := range tt.colors {
				entries[i] = Entry{Color: c, Count: 1}
			}
			b := newBox(newTestArena(entries), 0, len(entries)-1, 0)
			if got := b.longestChannel(); got != tt.want {
				t.Errorf("longestChannel() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBoxSplitUsesBoundsMidpoint(t *testing.T) {
	// Red spans 0..200, midpoint 100. Population is heavily skewed to the low
	// end, which must not move the split.
	a := newTestArena([]Entry{
		{Color: 0xFFC80000, Count: 1},
		{Color: 0xFF000000, Count: 1000},
		{Color: 0xFF0A0000, Count: 1000},
		{Color: 0xFF640000, Count: 1},
	})
	b := newBox(a, 0, 3, 0)

	next, ch, ok := b.split(1)
	if !ok {
		t.Fatal("split() failed")
	}
	if ch != channelRed {
		t.Errorf("split channel = %s, want red", ch)
	}
	// Sorted: 0x00, 0x0A, 0x64, 0xC8; first >= 100 is index 2.
	if b.lower != 0 || b.upper != 2 || next.lower != 3 || next.upper != 3 {
		t.Errorf("ranges = [%d,%d] [%d,%d], want [0,2] [3,3]", b.lower, b.upper, next.lower, next.upper)
	}
	if b.maxR != 0x64 || next.minR != 0xC8 {
		t.Errorf("bounds not refitted: left max %d, right min %d", b.maxR, next.minR)
	}
}

func TestBoxSplitDegenerate(t *testing.T) {
	// Red 0, 0, 10 would split at the last index; only the outlier reaches the midpoint.
	a := newTestArena([]Entry{
		{Color: 0xFF000000, Count: 1},
		{Color: 0xFF000001, Count: 1},
		{Color: 0xFF0A0000, Count: 1},
	})
	b := newBox(a, 0, 2, 0)

	if _, _, ok := b.split(1); ok {
		t.Fatal("split() succeeded on a degenerate split point")
	}
	if b.lower != 0 || b.upper != 2 {
		t.Errorf("range changed after failed split: [%d,%d]", b.lower, b.upper)
	}
}

func TestBoxSplitConservesPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for run := 0; run < 100; run++ {
		pixels := make([]colour.Color, 200)
		for i := range pixels {
			pixels[i] = colour.Opaque(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
		}
		a := newTestArena(BuildHistogram(pixels))
		b := newBox(a, 0, len(a.colors)-1, 0)

		before := b.population
		next, _, ok := b.split(1)
		if !ok {
			continue
		}
		if b.population+next.population != before {
			t.Fatalf("populations %d + %d != %d", b.population, next.population, before)
		}
		if b.upper+1 != next.lower {
			t.Fatalf("ranges not contiguous: %d, %d", b.upper, next.lower)
		}
		if b.volume() < 1 || next.volume() < 1 {
			t.Fatalf("volume below 1: %d, %d", b.volume(), next.volume())
		}
	}
}

func TestBoxAverage(t *testing.T) {
	a := newTestArena([]Entry{
		{Color: 0xFF000000, Count: 3},
		{Color: 0xFFFF0000, Count: 1},
	})
	s := newBox(a, 0, 1, 0).average()

	r, g, b := s.Channels()
	if r != 63.75 || g != 0 || b != 0 {
		t.Errorf("average channels = (%f, %f, %f), want (63.75, 0, 0)", r, g, b)
	}
	if s.Population() != 4 {
		t.Errorf("average population = %d, want 4", s.Population())
	}
}

func TestBoxAverageZeroPopulation(t *testing.T) {
	a := &arena{colors: []colour.Color{0xFF123456}, population: map[colour.Color]int{}}
	s := newBox(a, 0, 0, 0).average()

	if s.Population() != 0 || s.Color() != colour.Black {
		t.Errorf("average() = %s, want black sentinel with population 0", s)
	}
}

func TestBoxQueueOrder(t *testing.T) {
	a := newTestArena([]Entry{
		{Color: 0xFF000000, Count: 1},
		{Color: 0xFF0F0F0F, Count: 1},
		{Color: 0xFF101010, Count: 1},
		{Color: 0xFF1F1F1F, Count: 1},
	})
	small := newBox(a, 0, 0, 0)
	large := newBox(a, 1, 3, 1)
	tieA := newBox(a, 0, 0, 2)

	q := &boxQueue{}
	q.push(small)
	q.push(large)
	q.push(tieA)

	if got := q.pop(); got != large {
		t.Errorf("first pop seq %d, want largest volume box", got.seq)
	}
	if got := q.pop(); got != small {
		t.Errorf("second pop seq %d, want oldest of tied boxes", got.seq)
	}
	if got := q.pop(); got != tieA {
		t.Errorf("third pop seq %d, want newest of tied boxes", got.seq)
	}
}
