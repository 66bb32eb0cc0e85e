package colour

import (
	"strings"
	"testing"
)

func TestSwatchEqual(t *testing.T) {
	base := NewSwatchRGB(10, 20, 30, 5)

	tests := []struct {
		name  string
		other *Swatch
		want  bool
	}{
		{name: "identical", other: NewSwatchRGB(10, 20, 30, 5), want: true},
		{name: "within tolerance", other: NewSwatchRGB(10.0005, 20, 29.9995, 5), want: true},
		{name: "outside tolerance", other: NewSwatchRGB(10.01, 20, 30, 5), want: false},
		{name: "different population", other: NewSwatchRGB(10, 20, 30, 6), want: false},
		{name: "nil", other: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSwatchHSLKeepsHSL(t *testing.T) {
	hsl := HSL{H: 210, S: 0.8, L: 0.5}
	s := NewSwatchHSL(hsl, 0)

	if s.HSL() != hsl {
		t.Errorf("HSL() = %+v, want %+v", s.HSL(), hsl)
	}
	if s.Population() != 0 {
		t.Errorf("Population() = %d, want 0", s.Population())
	}
	if got := s.Color().HSL(); !hslClose(got, hsl, 0.01) {
		t.Errorf("Color().HSL() = %+v, want close to %+v", got, hsl)
	}
}

func TestSwatchRGB(t *testing.T) {
	s := NewSwatchRGB(12.4, 12.6, 254.9, 1)
	want := RGB{R: 12, G: 13, B: 255}
	if got := s.RGB(); got != want {
		t.Errorf("RGB() = %+v, want %+v", got, want)
	}
	if got := s.Hex(); got != "#0c0dff" {
		t.Errorf("Hex() = %s, want #0c0dff", got)
	}
}

func TestSwatchTextColors(t *testing.T) {
	tests := []struct {
		name    string
		swatch  *Swatch
		wantRGB RGB
	}{
		{name: "dark swatch gets white text", swatch: NewSwatch(0xFF101820, 1), wantRGB: RGB{R: 255, G: 255, B: 255}},
		{name: "light swatch gets black text", swatch: NewSwatch(0xFFF5F0E0, 1), wantRGB: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title := tt.swatch.TitleTextColor()
			body := tt.swatch.BodyTextColor()

			if title.RGB() != tt.wantRGB || body.RGB() != tt.wantRGB {
				t.Fatalf("text colours = %s / %s, want rgb %s", title.Hex(), body.Hex(), tt.wantRGB)
			}
			if title.Alpha() > body.Alpha() {
				t.Errorf("title alpha %d > body alpha %d", title.Alpha(), body.Alpha())
			}

			for _, check := range []struct {
				text Color
				min  float64
			}{{title, MinContrastTitleText}, {body, MinContrastBodyText}} {
				ratio, err := ContrastRatio(check.text, tt.swatch.Color())
				if err != nil {
					t.Fatalf("ContrastRatio() error = %v", err)
				}
				if ratio < check.min {
					t.Errorf("text %s contrast %f, want >= %f", check.text.Hex(), ratio, check.min)
				}
			}
		})
	}
}

func TestSwatchPreview(t *testing.T) {
	s := NewSwatch(0xFF204080, 3)
	got := SwatchPreview(s, "vibrant", 10)

	if !strings.HasPrefix(got, "\033[48;2;32;64;128m") {
		t.Errorf("SwatchPreview() = %q, want background escape for swatch", got)
	}
	if !strings.Contains(got, " vibrant  ") {
		t.Errorf("SwatchPreview() = %q, want centred label", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("SwatchPreview() = %q, want trailing reset", got)
	}
}

func TestFormatColourWithLabel(t *testing.T) {
	rgb := RGB{R: 32, G: 64, B: 128}

	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"explicit width", 4, "\033[48;2;32;64;128m    \033[0m  rgb(32, 64, 128)     #204080"},
		{"default width", 0, "\033[48;2;32;64;128m        \033[0m  rgb(32, 64, 128)     #204080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatColourWithLabel(rgb, rgb.String(), tt.width); got != tt.want {
				t.Errorf("FormatColourWithLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
