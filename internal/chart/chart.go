// Package chart renders aggregated spending as PNG charts.
//
// Charts use the plotting library's own defaults for fonts, lines and
// colors. Only the title, axis labels, marker shape and tick label
// orientation are set here.
package chart

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"tracker/internal/core"
	applog "tracker/internal/log"
)

const (
	DailyFile    = "spending_by_date.png"
	CategoryFile = "spending_by_category.png"

	DailyTitle    = "Spending by Date"
	CategoryTitle = "Spending by Category"
	AmountLabel   = "Amount"

	DefaultDPI = 160

	// Width and Height give a 1024x768 image at 160 DPI.
	Width  = 6.4 * vg.Inch
	Height = 4.8 * vg.Inch

	categoryTickRotation = 20 * math.Pi / 180

	// maxDateLabels bounds the labelled ticks on the date axis.
	maxDateLabels = 8
)

// Renderer writes one chart per call into Dir, replacing any file of the
// same name.
type Renderer struct {
	Dir    string
	DPI    int
	logger *applog.Logger
}

func NewRenderer(dir string, dpi int, logger *applog.Logger) *Renderer {
	if dir == "" {
		dir = "."
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &Renderer{Dir: dir, DPI: dpi, logger: logger.WithComponent(applog.ComponentChart)}
}

// FileName returns the output file name used for mode.
func FileName(mode core.Mode) (string, error) {
	switch mode {
	case core.ModeDaily:
		return DailyFile, nil
	case core.ModeCategory:
		return CategoryFile, nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrInvalidMode, mode)
	}
}

// Render draws the ordered buckets for mode and returns the written path.
// With no buckets nothing is written and core.ErrNoData is returned.
func (r *Renderer) Render(ctx context.Context, mode core.Mode, buckets []core.Bucket) (string, error) {
	name, err := FileName(mode)
	if err != nil {
		return "", err
	}
	if len(buckets) == 0 {
		return "", core.ErrNoData
	}

	var p *plot.Plot
	switch mode {
	case core.ModeDaily:
		p, err = dailyPlot(buckets)
	default:
		p, err = categoryPlot(buckets)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.Dir, name)
	if err := r.save(p, path); err != nil {
		return "", err
	}

	r.logger.DebugContext(ctx, "Chart rendered",
		applog.FieldOperation, applog.OpRender,
		applog.FieldMode, mode.String(),
		applog.FieldBuckets, len(buckets),
		applog.FieldPath, path)
	return path, nil
}

// dailyPlot draws a line through one circular point per date.
func dailyPlot(buckets []core.Bucket) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = DailyTitle
	p.X.Label.Text = "Date"
	p.Y.Label.Text = AmountLabel

	xys := make(plotter.XYs, len(buckets))
	for i, b := range buckets {
		d := b.Date
		if d.IsZero() {
			parsed, err := core.ParseDate(b.Label)
			if err != nil {
				return nil, err
			}
			d = parsed
		}
		xys[i].X = float64(d.Unix())
		xys[i].Y = b.Total
	}
	p.X.Tick.Marker = plot.TimeTicks{
		Ticker: dayTicks(xys),
		Format: core.DateLayout,
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("build date series: %w", err)
	}
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	return p, nil
}

// dayTicks puts a tick on every plotted date. When there are more dates
// than maxDateLabels, only every n-th tick is labelled so labels do not
// overlap.
func dayTicks(xys plotter.XYs) plot.Ticker {
	step := (len(xys) + maxDateLabels - 1) / maxDateLabels
	if step < 1 {
		step = 1
	}
	return plot.TickerFunc(func(lo, hi float64) []plot.Tick {
		ticks := make([]plot.Tick, 0, len(xys))
		for i, xy := range xys {
			if xy.X < lo || xy.X > hi {
				continue
			}
			tick := plot.Tick{Value: xy.X}
			if i%step == 0 {
				tick.Label = plot.UTCUnixTime(xy.X).Format(core.DateLayout)
			}
			ticks = append(ticks, tick)
		}
		return ticks
	})
}

// categoryPlot draws one vertical bar per category with slanted,
// right-aligned tick labels.
func categoryPlot(buckets []core.Bucket) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = CategoryTitle
	p.X.Label.Text = "Category"
	p.Y.Label.Text = AmountLabel

	values := make(plotter.Values, len(buckets))
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		values[i] = b.Total
		labels[i] = b.Label
	}

	bars, err := plotter.NewBarChart(values, barWidth(len(buckets)))
	if err != nil {
		return nil, fmt.Errorf("build category bars: %w", err)
	}
	// First color of the library palette; bars are unfilled otherwise.
	bars.Color = plotutil.Color(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = categoryTickRotation
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p, nil
}

// barWidth spreads the bars over roughly half of the canvas width.
func barWidth(n int) vg.Length {
	return Width / 2 / vg.Length(n)
}

func (r *Renderer) save(p *plot.Plot, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(r.DPI))
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
