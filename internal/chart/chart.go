// Package chart renders dashboard charts as PNG images.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	Width  = 8 * vg.Inch
	Height = 4.5 * vg.Inch
)

// Palette is applied to series in order and wraps around.
var Palette = []color.Color{
	color.RGBA{R: 55, G: 83, B: 109, A: 255},
	color.RGBA{R: 26, G: 118, B: 255, A: 255},
	color.RGBA{R: 214, G: 97, B: 59, A: 255},
}

var ErrNoCategories = errors.New("chart has no categories")

type Series struct {
	Name   string
	Values []float64
}

// RenderGroupedBars draws one bar group per category, one bar per series,
// and writes the PNG to w.
func RenderGroupedBars(w io.Writer, title, yLabel string, categories []string, series []Series) error {
	if len(categories) == 0 {
		return ErrNoCategories
	}
	for _, s := range series {
		if len(s.Values) != len(categories) {
			return fmt.Errorf("series %q has %d values for %d categories", s.Name, len(s.Values), len(categories))
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = yLabel
	p.BackgroundColor = color.White
	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(4)

	barWidth := vg.Points(20)
	n := len(series)
	for i, s := range series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), barWidth)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = Palette[i%len(Palette)]
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * barWidth
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}

	p.Add(plotter.NewGrid())
	p.NominalX(categories...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Y.Min = 0

	wt, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
