package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// receiptLike builds a grayscale-ish test image with some structure so the
// enhancement chain has edges to work on.
func receiptLike(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{240, 240, 235, 255}
			if y%10 < 2 && x > w/10 && x < w-w/10 {
				c = color.RGBA{30, 30, 30, 255} // text-ish bands
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEnhanceDeterministic(t *testing.T) {
	p := NewPreprocessor(100, nil)
	src := receiptLike(200, 300)

	a := p.Enhance(src)
	b := p.Enhance(src)

	bufA, bufB := new(bytes.Buffer), new(bytes.Buffer)
	if err := png.Encode(bufA, a); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := png.Encode(bufB, b); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(bufA.Bytes(), bufB.Bytes()) {
		t.Error("same input produced different enhanced output")
	}
}

func TestEnhanceDoesNotMutateInput(t *testing.T) {
	p := NewPreprocessor(100, nil)
	src := image.NewRGBA(image.Rect(0, 0, 120, 120))
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}
	before := make([]byte, len(src.Pix))
	copy(before, src.Pix)

	p.Enhance(src)

	if !bytes.Equal(before, src.Pix) {
		t.Error("input image mutated by enhancement")
	}
}

func TestEnhanceGrayscaleOutput(t *testing.T) {
	p := NewPreprocessor(100, nil)
	out := p.Enhance(receiptLike(150, 150))

	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 7 {
		for x := b.Min.X; x < b.Max.X; x += 7 {
			r, g, bl, _ := out.At(x, y).RGBA()
			if r != g || g != bl {
				t.Fatalf("pixel (%d,%d) not gray: r=%d g=%d b=%d", x, y, r, g, bl)
			}
		}
	}
}

func TestUpscaleSmallImages(t *testing.T) {
	p := NewPreprocessor(1000, nil)

	out := p.Enhance(receiptLike(200, 400))
	b := out.Bounds()
	if b.Dx() < 1000 || b.Dy() < 1000 {
		t.Errorf("upscaled to %dx%d, want both axes at least 1000", b.Dx(), b.Dy())
	}
	// Aspect ratio preserved: 200x400 scales by 5 on both axes.
	if b.Dx() != 1000 || b.Dy() != 2000 {
		t.Errorf("upscaled to %dx%d, want 1000x2000", b.Dx(), b.Dy())
	}
}

func TestNoUpscaleForLargeImages(t *testing.T) {
	p := NewPreprocessor(1000, nil)

	out := p.Enhance(receiptLike(1200, 1600))
	b := out.Bounds()
	if b.Dx() != 1200 || b.Dy() != 1600 {
		t.Errorf("large image resized to %dx%d, want unchanged", b.Dx(), b.Dy())
	}
}
