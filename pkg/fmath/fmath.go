// Package fmath selects the floating-point width the renderer is built
// with. The default build uses float64 backed by the standard library;
// building with -tags math32 switches every scalar to float32 backed by
// github.com/chewxy/math32.
package fmath
