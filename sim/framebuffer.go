package sim

import (
	"image/color"
	"io"
	"strings"
)

// Framebuffer is a monochrome drivers.Displayer that renders to text.
type Framebuffer struct {
	w, h   int16
	pixels []bool
	out    io.Writer
	frames int
}

// NewFramebuffer returns a w by h buffer. Display writes the picture to out when it is not nil.
func NewFramebuffer(w, h int16, out io.Writer) *Framebuffer {
	return &Framebuffer{
		w:      w,
		h:      h,
		pixels: make([]bool, int(w)*int(h)),
		out:    out,
	}
}

func (f *Framebuffer) Size() (x, y int16) {
	return f.w, f.h
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.pixels[int(y)*int(f.w)+int(x)] = c.R|c.G|c.B != 0
}

func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	return f.pixels[int(y)*int(f.w)+int(x)]
}

func (f *Framebuffer) Display() error {
	f.frames++
	if f.out == nil {
		return nil
	}
	_, err := io.WriteString(f.out, f.String())
	return err
}

// Frames counts Display calls.
func (f *Framebuffer) Frames() int {
	return f.frames
}

func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow(int(f.w+1) * int(f.h))
	for y := int16(0); y < f.h; y++ {
		for x := int16(0); x < f.w; x++ {
			if f.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
