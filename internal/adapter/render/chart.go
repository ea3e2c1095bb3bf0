package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/domain"
)

// renderChart saves a descending bar chart of the top n groups' totals as a
// PNG at path, one bar per event type.
func renderChart(rep domain.ImpactReport, n int, path string) error {
	groups := domain.TopN(rep.Groups, n)

	values := make(plotter.Values, len(groups))
	for i, g := range groups {
		values[i] = g.Total
	}

	p := plot.New()
	p.Title.Text = rep.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Event Type"
	p.Y.Label.Text = rep.AxisLabel

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	// Event type labels are long and overlap badly at ten bars, so the x
	// ticks stay unlabelled; the table alongside carries the names.
	p.X.Tick.Marker = plot.ConstantTicks(nil)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}
