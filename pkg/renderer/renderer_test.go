package renderer

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"skyray/pkg/core"
)

func TestRayColorGradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizontal is the midpoint", core.NewVec3(0, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
		{"only the y component matters", core.NewVec3(1, 0, 1).Normalize(), core.NewVec3(0.75, 0.85, 1.0)},
		{"non-unit direction is normalized", core.NewVec3(0, 7, 0), core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := RayColor(r)

			const tol = 1e-6
			if got.Subtract(tt.expected).Length() > tol {
				t.Errorf("RayColor = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRayColorSerialized(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  string
	}{
		{"up", core.NewVec3(0, 1, 0), "127 179 255\n"},
		{"down", core.NewVec3(0, -1, 0), "255 255 255\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			color := RayColor(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if err := core.WriteColor(&buf, color); err != nil {
				t.Fatalf("WriteColor returned error: %v", err)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("serialized color = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderHeaderAndPixelCount(t *testing.T) {
	camera := NewCamera(testConfig())
	var img bytes.Buffer

	if err := NewRenderer(camera, &img, io.Discard).Render(); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	out := img.String()
	if !strings.HasPrefix(out, "P3\n400 225\n255\n") {
		t.Fatalf("header = %q, want P3/400 225/255", out[:min(len(out), 20)])
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if got, want := len(lines), 3+400*225; got != want {
		t.Fatalf("output has %d lines, want %d", got, want)
	}

	for _, line := range lines[3:] {
		if len(strings.Fields(line)) != 3 {
			t.Fatalf("pixel line %q is not an RGB triplet", line)
		}
	}
}

func TestRenderRowOrderTopToBottom(t *testing.T) {
	// Small image: the top row points up and must be bluer (lower red
	// channel) than the bottom row.
	camera := NewCamera(CameraConfig{AspectRatio: 1, Width: 3, FocalLength: 1, ViewportHeight: 2})
	var img bytes.Buffer

	if err := NewRenderer(camera, &img, io.Discard).Render(); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(img.String(), "\n"), "\n")
	pixels := lines[3:]
	if len(pixels) != 9 {
		t.Fatalf("got %d pixel lines, want 9", len(pixels))
	}

	topRed, err := strconv.Atoi(strings.Fields(pixels[1])[0]) // top row, middle pixel
	if err != nil {
		t.Fatalf("bad pixel line %q: %v", pixels[1], err)
	}
	bottomRed, err := strconv.Atoi(strings.Fields(pixels[7])[0]) // bottom row, middle pixel
	if err != nil {
		t.Fatalf("bad pixel line %q: %v", pixels[7], err)
	}
	if topRed >= bottomRed {
		t.Errorf("top row red %d should be below bottom row red %d", topRed, bottomRed)
	}
}

func TestRenderIdempotent(t *testing.T) {
	camera := NewCamera(CameraConfig{AspectRatio: 16.0 / 9.0, Width: 64, FocalLength: 1, ViewportHeight: 2})

	var first, second bytes.Buffer
	if err := NewRenderer(camera, &first, io.Discard).Render(); err != nil {
		t.Fatalf("first Render returned error: %v", err)
	}
	if err := NewRenderer(camera, &second, io.Discard).Render(); err != nil {
		t.Fatalf("second Render returned error: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two renders of the same camera differ")
	}
}

func TestRenderProgressLog(t *testing.T) {
	camera := NewCamera(CameraConfig{AspectRatio: 1, Width: 2, FocalLength: 1, ViewportHeight: 2})

	var img, diag bytes.Buffer
	if err := NewRenderer(camera, &img, &diag).Render(); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	log := diag.String()
	for _, want := range []string{"Scanlines remaining: 2\n", "Scanlines remaining: 1\n", "Done.\n"} {
		if !strings.Contains(log, want) {
			t.Errorf("diagnostic log %q missing %q", log, want)
		}
	}

	// Diagnostics never leak into the image stream.
	if strings.Contains(img.String(), "Scanlines") || strings.Contains(img.String(), "Done") {
		t.Error("diagnostic output interleaved into the image stream")
	}
}
