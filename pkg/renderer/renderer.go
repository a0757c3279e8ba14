package renderer

import (
	"bufio"
	"fmt"
	"io"

	"skyray/pkg/core"
)

var (
	white   = core.NewVec3(1, 1, 1)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// RayColor shades a ray with the vertical background gradient: white at
// the bottom of the view blending into sky blue at the top. Only the
// direction's y component matters.
func RayColor(r core.Ray) core.Color {
	unit := r.Direction.Normalize()
	a := 0.5 * (unit.Y + 1.0)
	return core.Lerp(white, skyBlue, a)
}

// Renderer writes a P3 image of the background gradient. The image and
// diagnostic streams are separate and never interleaved.
type Renderer struct {
	camera *Camera
	out    io.Writer
	log    io.Writer
}

// NewRenderer creates a renderer writing the image to out and progress
// diagnostics to log
func NewRenderer(camera *Camera, out, log io.Writer) *Renderer {
	return &Renderer{camera: camera, out: out, log: log}
}

// Render emits the P3 header followed by one color triplet per pixel,
// row-major, top-to-bottom and left-to-right. Output is buffered and
// flushed before returning. Rendering the same camera twice produces
// byte-identical streams.
func (r *Renderer) Render() error {
	w := bufio.NewWriter(r.out)
	width, height := r.camera.Width(), r.camera.Height()

	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for j := 0; j < height; j++ {
		fmt.Fprintf(r.log, "Scanlines remaining: %d\n", height-j)
		for i := 0; i < width; i++ {
			color := RayColor(r.camera.GetRay(i, j))
			if err := core.WriteColor(w, color); err != nil {
				return fmt.Errorf("writing pixel (%d, %d): %w", i, j, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing image: %w", err)
	}

	fmt.Fprintln(r.log, "Done.")
	return nil
}
