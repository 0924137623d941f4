// Package pvrecreport renders promoted tracklets for human review: a
// per-object trajectory plot (gonum/plot) drawn from a promoted
// pvrec.Object, and a per-run HTML dashboard (go-echarts) built from
// pvrecdb's camera summaries. Neither of these touches the core engine;
// they read finished results.
package pvrecreport

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

// PlotTrajectory renders one promoted object's (x, y) path across frames
// to a PNG at outPath, mirroring the teacher's GridPlotter time-series
// rendering in internal/lidar/monitor/gridplotter.go.
func PlotTrajectory(obj pvrec.Object, outPath string) error {
	if len(obj.Points) == 0 {
		return fmt.Errorf("pvrecreport: cannot plot an object with zero points")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Tracklet %s (camera %d)", obj.ID, obj.CamID)
	p.X.Label.Text = "x (px)"
	p.Y.Label.Text = "y (px)"

	pts := make(plotter.XYs, len(obj.Points))
	for i, d := range obj.Points {
		pts[i] = plotter.XY{X: d.X, Y: d.Y}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("pvrecreport: build trajectory line: %w", err)
	}
	line.Width = vg.Points(1.5)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("pvrecreport: build trajectory points: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(2)

	p.Add(line, scatter)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, outPath); err != nil {
		return fmt.Errorf("pvrecreport: save %s: %w", outPath, err)
	}
	return nil
}
