package render

import (
	"strings"
	"testing"
)

func TestCurveSVG(t *testing.T) {
	xs := []float64{0, 0.5, 1}
	ys := []float64{0, 1, 0}
	svg := CurveSVG(xs, ys, 640, 480, "#00ffcc")

	for _, want := range []string{"<svg", "<polyline", `stroke="#00ffcc"`, "</svg>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	// Three points on the polyline.
	points := svg[strings.Index(svg, `points="`)+len(`points="`):]
	points = points[:strings.Index(points, `"`)]
	if got := len(strings.Fields(points)); got != 3 {
		t.Errorf("polyline has %d points, want 3", got)
	}
}

func TestCurveSVGDegenerateInput(t *testing.T) {
	if CurveSVG([]float64{0}, []float64{0}, 100, 100, "red") != "" {
		t.Error("single point must render nothing")
	}
	if CurveSVG([]float64{0, 1}, []float64{0}, 100, 100, "red") != "" {
		t.Error("length mismatch must render nothing")
	}
	// A flat curve must not divide by a zero range.
	svg := CurveSVG([]float64{0, 1}, []float64{2, 2}, 100, 100, "red")
	if !strings.Contains(svg, "<polyline") {
		t.Error("flat curve should still render")
	}
	if strings.Contains(svg, "NaN") {
		t.Error("flat curve produced NaN coordinates")
	}
}

func TestProfileLabelsRange(t *testing.T) {
	xs := []float64{0, 0.25, 0.5, 0.75, 1}
	ys := []float64{0, 1, 0, -1, 0}
	out := Profile("u(x)", xs, ys, 40, 8)
	if !strings.Contains(out, "u(x)") {
		t.Error("caption missing")
	}
	if !strings.Contains(out, "5 samples") {
		t.Error("sample count missing")
	}
}
