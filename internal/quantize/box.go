package quantize

import (
	"cmp"
	"slices"

	"github.com/jmylchreest/vibrant/internal/colour"
)

// channel identifies one of the RGB axes of a box.
type channel int

const (
	channelRed channel = iota
	channelGreen
	channelBlue
)

func (ch channel) String() string {
	switch ch {
	case channelRed:
		return "red"
	case channelGreen:
		return "green"
	default:
		return "blue"
	}
}

func (ch channel) value(c colour.Color) uint8 {
	switch ch {
	case channelRed:
		return c.Red()
	case channelGreen:
		return c.Green()
	default:
		return c.Blue()
	}
}

// arena is the colour storage shared by every box of one quantization run.
// Boxes own disjoint index ranges of colors and only ever reorder their own range.
type arena struct {
	colors     []colour.Color
	population map[colour.Color]int
}

// box is the tight RGB bounding box of colors[lower:upper+1].
type box struct {
	arena        *arena
	lower, upper int // inclusive
	seq          int // insertion order, breaks volume ties in the queue

	minR, maxR uint8
	minG, maxG uint8
	minB, maxB uint8
	population int
}

func newBox(a *arena, lower, upper, seq int) *box {
	b := &box{arena: a, lower: lower, upper: upper, seq: seq}
	b.fit()
	return b
}

// fit recomputes the bounds and population from the colours in range.
func (b *box) fit() {
	b.minR, b.minG, b.minB = 0xFF, 0xFF, 0xFF
	b.maxR, b.maxG, b.maxB = 0, 0, 0
	b.population = 0

	for _, c := range b.colors() {
		r, g, bl := c.Red(), c.Green(), c.Blue()
		b.minR, b.maxR = min(b.minR, r), max(b.maxR, r)
		b.minG, b.maxG = min(b.minG, g), max(b.maxG, g)
		b.minB, b.maxB = min(b.minB, bl), max(b.maxB, bl)
		b.population += b.arena.population[c]
	}
}

func (b *box) colors() []colour.Color {
	return b.arena.colors[b.lower : b.upper+1]
}

func (b *box) colorCount() int {
	return b.upper - b.lower + 1
}

// volume is the number of RGB cells the box covers; always >= 1.
func (b *box) volume() int {
	return (int(b.maxR-b.minR) + 1) * (int(b.maxG-b.minG) + 1) * (int(b.maxB-b.minB) + 1)
}

func (b *box) canSplit() bool {
	return b.colorCount() > 1
}

// longestChannel returns the axis with the widest range. Ties prefer red,
// then green, then blue.
func (b *box) longestChannel() channel {
	r := b.maxR - b.minR
	g := b.maxG - b.minG
	bl := b.maxB - b.minB

	switch {
	case r >= g && r >= bl:
		return channelRed
	case g >= r && g >= bl:
		return channelGreen
	default:
		return channelBlue
	}
}

func (b *box) bounds(ch channel) (lo, hi uint8) {
	switch ch {
	case channelRed:
		return b.minR, b.maxR
	case channelGreen:
		return b.minG, b.maxG
	default:
		return b.minB, b.maxB
	}
}

// splitPoint sorts the box's own range along ch and returns the index of the
// first colour at or past the midpoint of the box bounds.
func (b *box) splitPoint(ch channel) int {
	slices.SortFunc(b.colors(), func(x, y colour.Color) int {
		if c := cmp.Compare(ch.value(x), ch.value(y)); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})

	lo, hi := b.bounds(ch)
	mid := (int(lo) + int(hi)) / 2

	for i := b.lower; i <= b.upper; i++ {
		if int(ch.value(b.arena.colors[i])) >= mid {
			return i
		}
	}
	return b.lower
}

// split shrinks b to colors[lower:point+1] and returns a new box holding the
// rest. It reports false, leaving the range untouched apart from ordering,
// when b holds a single colour or the split point is its last index.
func (b *box) split(seq int) (*box, channel, bool) {
	if !b.canSplit() {
		return nil, channelRed, false
	}

	ch := b.longestChannel()
	point := b.splitPoint(ch)
	if point >= b.upper {
		return nil, ch, false
	}

	next := newBox(b.arena, point+1, b.upper, seq)
	b.upper = point
	b.fit()

	return next, ch, true
}

// average returns the population-weighted mean colour of the box.
func (b *box) average() *colour.Swatch {
	var rSum, gSum, bSum float64
	total := 0

	for _, c := range b.colors() {
		n := b.arena.population[c]
		total += n
		rSum += float64(n) * float64(c.Red())
		gSum += float64(n) * float64(c.Green())
		bSum += float64(n) * float64(c.Blue())
	}

	if total == 0 {
		return colour.NewSwatchRGB(0, 0, 0, 0)
	}

	t := float64(total)
	return colour.NewSwatchRGB(rSum/t, gSum/t, bSum/t, total)
}
