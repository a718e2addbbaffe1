package dev

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	PanelOn  = color.RGBA{255, 255, 255, 255}
	PanelOff = color.RGBA{0, 0, 0, 0}
)

// Panel mirrors the segment display onto a pixel Displayer, with an optional
// text status line underneath the digits.
type Panel struct {
	display drivers.Displayer
	font    tinyfont.Fonter
	status  func() string

	digitW, digitH, thick, gap int16
	statusH                    int16
}

func NewPanel(display drivers.Displayer, font tinyfont.Fonter) *Panel {
	p := &Panel{
		display: display,
		font:    font,
	}
	w, h := display.Size()
	if font != nil {
		p.statusH = 10
	}
	p.gap = max(w/16, 1)
	p.digitH = h - p.statusH - 1
	p.digitW = min(p.digitH/2+1, (w-3*p.gap)/2)
	p.thick = max(p.digitH/10, 1)
	return p
}

// SetStatus sets the text provider drawn under the digits.
func (p *Panel) SetStatus(f func() string) {
	p.status = f
}

// Draw renders f and flushes the display.
func (p *Panel) Draw(f Frame) error {
	w, h := p.display.Size()
	p.fill(0, 0, w, h, PanelOff)

	p.drawDigit(p.gap, 0, f.Tens)
	p.drawDigit(2*p.gap+p.digitW, 0, f.Units)

	if p.font != nil && p.status != nil {
		tinyfont.WriteLine(p.display, p.font, 0, h-2, p.status(), PanelOn)
	}
	return p.display.Display()
}

func (p *Panel) drawDigit(x, y int16, pattern uint8) {
	w, h, t := p.digitW, p.digitH, p.thick
	mid := y + h/2 - t/2
	// A through G, as x0, y0, x1, y1
	segments := [7][4]int16{
		{x + t, y, x + w - t, y + t},
		{x + w - t, y + t, x + w, y + h/2},
		{x + w - t, y + h/2, x + w, y + h - t},
		{x + t, y + h - t, x + w - t, y + h},
		{x, y + h/2, x + t, y + h - t},
		{x, y + t, x + t, y + h/2},
		{x + t, mid, x + w - t, mid + t},
	}
	for i, s := range segments {
		if pattern&(1<<i) == 0 {
			continue
		}
		p.fill(s[0], s[1], s[2], s[3], PanelOn)
	}
}

func (p *Panel) fill(x0, y0, x1, y1 int16, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.display.SetPixel(x, y, c)
		}
	}
}
