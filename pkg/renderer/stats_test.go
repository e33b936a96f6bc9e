package renderer

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126 + Green 0.7152 + Blue 0.0722 + Black 0 = 1.0, averaged over 4
	img := canvas.New(2, 2)
	img.Set(0, 0, core.NewColor(1, 0, 0))
	img.Set(1, 0, core.NewColor(0, 1, 0))
	img.Set(0, 1, core.NewColor(0, 0, 1))
	img.Set(1, 1, core.NewColor(0, 0, 0))

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_ClampsOverbright(t *testing.T) {
	img := canvas.New(1, 1)
	img.Set(0, 0, core.NewColor(3, 2, 5))

	avgLum := CalculateAverageLuminance(img)
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	if got := CalculateAverageLuminance(canvas.New(0, 0)); got != 0 {
		t.Errorf("Expected 0 for an empty canvas, got %f", got)
	}
}
