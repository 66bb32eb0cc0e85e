// Test image generator for creating sample images for testing palette extraction
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	// Create a test image with one block per target
	width := 400
	height := 300
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	colors := []color.RGBA{
		{R: 30, G: 80, B: 220, A: 255},   // Vibrant
		{R: 120, G: 200, B: 250, A: 255}, // Light vibrant
		{R: 10, G: 42, B: 96, A: 255},    // Dark vibrant
		{R: 110, G: 116, B: 128, A: 255}, // Muted
		{R: 200, G: 204, B: 212, A: 255}, // Light muted
		{R: 58, G: 53, B: 64, A: 255},    // Dark muted
	}

	// Fill image with colour blocks (2x3 grid)
	blockWidth := width / 2
	blockHeight := height / 3

	colorIndex := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 2; col++ {
			c := colors[colorIndex]
			colorIndex++

			for y := row * blockHeight; y < (row+1)*blockHeight; y++ {
				for x := col * blockWidth; x < (col+1)*blockWidth; x++ {
					img.Set(x, y, c)
				}
			}
		}
	}

	file, err := os.Create("testdata/sample.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Test image created: testdata/sample.png")
}
