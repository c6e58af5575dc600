// Package chart draws an insight's small dataset as a PNG image.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
)

type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

const (
	width  = 800
	height = 480
)

var (
	ErrUnknownKind = errors.New("unknown chart kind")
	ErrNoData      = errors.New("nothing to plot")
)

// Point is one labelled value of a chart dataset.
type Point struct {
	Name  string
	Value float64
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindBar, KindLine, KindPie:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// RenderPNG writes the chart of points in the given kind to w.
func RenderPNG(w io.Writer, kind Kind, title string, points []Point) error {
	if len(points) == 0 {
		return ErrNoData
	}

	switch kind {
	case KindBar:
		return renderBar(w, title, points)
	case KindLine:
		return renderLine(w, title, points)
	case KindPie:
		return renderPie(w, title, points)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func renderBar(w io.Writer, title string, points []Point) error {
	bars := make([]gochart.Value, len(points))
	for i, p := range points {
		bars[i] = gochart.Value{Label: p.Name, Value: p.Value}
	}

	// Bars grow from zero, so the axis always includes it.
	lo, hi := valueRange(points)
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if lo == hi {
		hi = 1
	}

	// Negative bars hang below the zero line.
	graph := gochart.BarChart{
		Title:        title,
		Width:        width,
		Height:       height,
		BarWidth:     40,
		UseBaseValue: true,
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}
	return graph.Render(gochart.PNG, w)
}

func renderLine(w io.Writer, title string, points []Point) error {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	ticks := make([]gochart.Tick, 0, len(points)+2)
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = p.Value
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: p.Name})
	}

	// The x axis spans the ticks; a lone point gets blank neighbours so
	// the span is never zero.
	if len(points) == 1 {
		ticks = []gochart.Tick{{Value: -1}, ticks[0], {Value: 1}}
	}

	lo, hi := valueRange(points)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	graph := gochart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: gochart.XAxis{
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{Name: title, XValues: xs, YValues: ys},
		},
	}
	return graph.Render(gochart.PNG, w)
}

func valueRange(points []Point) (lo, hi float64) {
	lo, hi = points[0].Value, points[0].Value
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	return lo, hi
}

func renderPie(w io.Writer, title string, points []Point) error {
	values := make([]gochart.Value, 0, len(points))
	for _, p := range points {
		// Slices need a positive share of the whole.
		if p.Value > 0 {
			values = append(values, gochart.Value{Label: p.Name, Value: p.Value})
		}
	}
	if len(values) == 0 {
		return ErrNoData
	}

	graph := gochart.PieChart{
		Title:  title,
		Width:  height,
		Height: height,
		Values: values,
	}
	return graph.Render(gochart.PNG, w)
}
