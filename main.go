package main

import (
	"fmt"
	"os"

	"skyray/pkg/renderer"
)

func main() {
	const (
		aspectRatio    = 16.0 / 9.0
		imageWidth     = 400
		focalLength    = 1.0
		viewportHeight = 2.0
	)

	camera := renderer.NewCamera(renderer.CameraConfig{
		AspectRatio:    aspectRatio,
		Width:          imageWidth,
		FocalLength:    focalLength,
		ViewportHeight: viewportHeight,
	})

	// Image goes to stdout, diagnostics to stderr, never mixed.
	fmt.Fprintf(os.Stderr, "image_width=%d, image_height=%d, aspect_ratio=%.2f\n",
		camera.Width(), camera.Height(), aspectRatio)

	r := renderer.NewRenderer(camera, os.Stdout, os.Stderr)
	if err := r.Render(); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
}
