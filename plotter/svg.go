// Package plotter renders SVG comparison figures for finite-difference
// trajectories: a row of line-plot panels sharing a single y-axis range.
package plotter

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/KarolinaS-M/FD-nonlinear-stiff/solver"
)

// Colors used for the three schemes, matching the reference figure.
const (
	ColorBackward = "green"
	ColorCentral  = "orange"
	ColorForward  = "red"
)

// Series is a single polyline within a panel.
type Series struct {
	X     []float64
	Y     []float64
	Label string
	Color string
}

// Panel is one subplot of a figure.
type Panel struct {
	Title  string
	Series []Series
}

// Figure is a horizontal row of panels. With SharedY the y-range is computed
// across all panels so trajectories are directly comparable.
type Figure struct {
	Width   float64
	Height  float64
	XLabel  string
	YLabel  string
	SharedY bool
	Panels  []Panel
}

// NewFigure creates an empty figure with the given pixel dimensions.
func NewFigure(width, height float64) *Figure {
	return &Figure{
		Width:   width,
		Height:  height,
		XLabel:  "t",
		YLabel:  "x(t)",
		SharedY: true,
	}
}

// AddPanel appends a panel and returns the figure for chaining.
func (f *Figure) AddPanel(title string, series ...Series) *Figure {
	f.Panels = append(f.Panels, Panel{Title: title, Series: series})
	return f
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// panel margins in pixels
const (
	marginTop    = 35.0
	marginBottom = 45.0
	marginRight  = 15.0
	marginLeft   = 55.0
)

type axisRange struct {
	min, max float64
}

func (r axisRange) valid() bool {
	return !math.IsInf(r.min, 1) && !math.IsInf(r.max, -1)
}

// extend grows the range to cover the finite values of v.
func (r *axisRange) extend(v []float64) {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < r.min {
			r.min = x
		}
		if x > r.max {
			r.max = x
		}
	}
}

// pad widens the range by the given fraction, substituting [0,1] when no
// finite data contributed and a unit span when the range is degenerate.
func (r axisRange) pad(frac float64) axisRange {
	if !r.valid() {
		return axisRange{min: 0, max: 1}
	}
	span := r.max - r.min
	if span == 0 {
		span = 1
	}
	return axisRange{min: r.min - span*frac, max: r.max + span*frac}
}

func newAxisRange() axisRange {
	return axisRange{min: math.Inf(1), max: math.Inf(-1)}
}

// Render generates the SVG document.
func (f *Figure) Render() string {
	if len(f.Panels) == 0 {
		return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"></svg>`,
			int(f.Width), int(f.Height))
	}

	// Shared y-range across panels, padded like the reference figure.
	shared := newAxisRange()
	if f.SharedY {
		for _, p := range f.Panels {
			for _, s := range p.Series {
				shared.extend(s.Y)
			}
		}
		shared = shared.pad(0.1)
	}

	figID := "fig_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	panelWidth := f.Width / float64(len(f.Panels))

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" id="%s">`,
		int(f.Width), int(f.Height), figID))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#ffffff"/>`,
		int(f.Width), int(f.Height)))

	for i, panel := range f.Panels {
		f.renderPanel(&sb, panel, float64(i)*panelWidth, panelWidth, shared, i == 0)
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func (f *Figure) renderPanel(sb *strings.Builder, panel Panel, x0, width float64, shared axisRange, first bool) {
	xr := newAxisRange()
	for _, s := range panel.Series {
		xr.extend(s.X)
	}
	xr = xr.pad(0.05)

	yr := shared
	if !f.SharedY {
		yr = newAxisRange()
		for _, s := range panel.Series {
			yr.extend(s.Y)
		}
		yr = yr.pad(0.1)
	}

	plotW := width - marginLeft - marginRight
	plotH := f.Height - marginTop - marginBottom
	left := x0 + marginLeft

	sx := func(v float64) float64 {
		return left + (v-xr.min)/(xr.max-xr.min)*plotW
	}
	sy := func(v float64) float64 {
		return marginTop + plotH - (v-yr.min)/(yr.max-yr.min)*plotH
	}

	// Panel title
	if panel.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="22" text-anchor="middle" font-family="Arial, sans-serif" font-size="14" font-weight="bold">%s</text>`,
			left+plotW/2, xmlEscaper.Replace(panel.Title)))
	}

	// Axes
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="1.5"/>`,
		left, marginTop, left, marginTop+plotH))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="1.5"/>`,
		left, marginTop+plotH, left+plotW, marginTop+plotH))

	// Ticks and grid lines
	const nticks = 5
	for i := 0; i <= nticks; i++ {
		xv := xr.min + (xr.max-xr.min)*float64(i)/nticks
		px := sx(xv)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ddd" stroke-width="0.5"/>`,
			px, marginTop, px, marginTop+plotH))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial, sans-serif" font-size="10">%.2g</text>`,
			px, marginTop+plotH+16, xv))
	}
	for i := 0; i <= nticks; i++ {
		yv := yr.min + (yr.max-yr.min)*float64(i)/nticks
		py := sy(yv)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ddd" stroke-width="0.5"/>`,
			left, py, left+plotW, py))
		if first || !f.SharedY {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end" font-family="Arial, sans-serif" font-size="10">%.2g</text>`,
				left-6, py+3, yv))
		}
	}

	// Axis labels; the y-label appears once when the range is shared.
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial, sans-serif" font-size="12">%s</text>`,
		left+plotW/2, f.Height-10, xmlEscaper.Replace(f.XLabel)))
	if first || !f.SharedY {
		ly := marginTop + plotH/2
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial, sans-serif" font-size="12" transform="rotate(-90, %.1f, %.1f)">%s</text>`,
			x0+14, ly, x0+14, ly, xmlEscaper.Replace(f.YLabel)))
	}

	// Polylines. Non-finite points break the path so a blown-up trajectory
	// still yields a valid document.
	for _, s := range panel.Series {
		path := strings.Builder{}
		pen := false
		for i := range s.X {
			if i >= len(s.Y) {
				break
			}
			xv, yv := s.X[i], s.Y[i]
			if math.IsNaN(xv) || math.IsInf(xv, 0) || math.IsNaN(yv) || math.IsInf(yv, 0) {
				pen = false
				continue
			}
			if pen {
				path.WriteString(fmt.Sprintf(" L%.2f,%.2f", sx(xv), sy(yv)))
			} else {
				path.WriteString(fmt.Sprintf("M%.2f,%.2f", sx(xv), sy(yv)))
				pen = true
			}
		}
		if path.Len() > 0 {
			sb.WriteString(fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="2" fill="none"/>`,
				path.String(), s.Color))
		}
	}
}

// Comparison renders the standard three-panel figure for a solution: one
// panel per scheme, shared y-range, axes labeled t and x(t).
func Comparison(sol *solver.Solution, width, height float64) string {
	fig := NewFigure(width, height)
	fig.AddPanel("Backward difference", Series{X: sol.T, Y: sol.Backward, Label: solver.SchemeBackward, Color: ColorBackward})
	fig.AddPanel("Central difference", Series{X: sol.T, Y: sol.Central, Label: solver.SchemeCentral, Color: ColorCentral})
	fig.AddPanel("Forward difference", Series{X: sol.T, Y: sol.Forward, Label: solver.SchemeForward, Color: ColorForward})
	return fig.Render()
}
