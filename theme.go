package charton

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Theme is a read-only configuration bag for one render call: fonts
// per text role, stroke styles, canvas size, margins and the default
// axis padding. It is never mutated during rendering.
type Theme struct {
	// Width and Height of the whole canvas.
	Width, Height vg.Length

	// Margins as fractions of the canvas size.
	MarginLeft, MarginRight, MarginTop, MarginBottom float64

	// Default axis padding fractions, split by scale kind.
	PadContinuous float64
	PadDiscrete   float64

	Title      draw.TextStyle
	AxisLabel  draw.TextStyle
	TickLabel  draw.TextStyle
	Legend     draw.TextStyle
	FacetTitle draw.TextStyle

	AxisLine draw.LineStyle
	TickLine draw.LineStyle
	GridLine draw.LineStyle

	TickLength vg.Length

	Background color.Color
	PanelFill  color.Color
	HeaderFill color.Color
}

// DefaultTheme returns the standard look: a 500x400 canvas, Helvetica
// text in three sizes and light gray panel chrome.
func DefaultTheme() *Theme {
	titleFont, err := vg.MakeFont("Helvetica-Bold", 18)
	if err != nil {
		panic(err.Error())
	}
	labelFont, err := vg.MakeFont("Helvetica", 15)
	if err != nil {
		panic(err.Error())
	}
	smallFont, err := vg.MakeFont("Helvetica", 13)
	if err != nil {
		panic(err.Error())
	}

	lightGray := color.RGBA{0xe5, 0xe5, 0xe5, 0xff}

	return &Theme{
		Width:  500,
		Height: 400,

		MarginLeft:   0.15,
		MarginRight:  0.10,
		MarginTop:    0.10,
		MarginBottom: 0.15,

		PadContinuous: 0.2,
		PadDiscrete:   0.3,

		Title: draw.TextStyle{
			Color:  color.Black,
			Font:   titleFont,
			XAlign: draw.XCenter,
			YAlign: draw.YTop,
		},
		AxisLabel: draw.TextStyle{
			Color:  color.Black,
			Font:   labelFont,
			XAlign: draw.XCenter,
			YAlign: draw.YBottom,
		},
		TickLabel: draw.TextStyle{
			Color:  color.Black,
			Font:   smallFont,
			XAlign: draw.XCenter,
			YAlign: draw.YTop,
		},
		Legend: draw.TextStyle{
			Color:  color.Black,
			Font:   smallFont,
			XAlign: draw.XLeft,
			YAlign: draw.YCenter,
		},
		FacetTitle: draw.TextStyle{
			Color:  color.Black,
			Font:   smallFont,
			XAlign: draw.XCenter,
			YAlign: draw.YCenter,
		},

		AxisLine: draw.LineStyle{Color: color.Black, Width: 1},
		TickLine: draw.LineStyle{Color: color.Black, Width: 1},
		GridLine: draw.LineStyle{Color: lightGray, Width: 1},

		TickLength: 4,

		Background: color.White,
		PanelFill:  color.White,
		HeaderFill: color.RGBA{0xd0, 0xd0, 0xd0, 0xff},
	}
}

// WithSize returns a copy of t with a different canvas size.
func (t *Theme) WithSize(w, h vg.Length) *Theme {
	u := *t
	u.Width, u.Height = w, h
	return &u
}

// WithMargins returns a copy of t with new margin fractions.
func (t *Theme) WithMargins(left, right, top, bottom float64) *Theme {
	u := *t
	u.MarginLeft, u.MarginRight = left, right
	u.MarginTop, u.MarginBottom = top, bottom
	return &u
}

// WithPadding returns a copy of t with new domain padding fractions.
func (t *Theme) WithPadding(continuous, discrete float64) *Theme {
	u := *t
	u.PadContinuous, u.PadDiscrete = continuous, discrete
	return &u
}

// WithBackground returns a copy of t with new background and panel fills.
func (t *Theme) WithBackground(bg, panel color.Color) *Theme {
	u := *t
	u.Background, u.PanelFill = bg, panel
	return &u
}
