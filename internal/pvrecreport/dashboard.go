package pvrecreport

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/pvrec/internal/pvrecdb"
)

// RenderDashboard writes an HTML bar chart of tracklets-per-camera and
// total promoted points, built from pvrecdb's camera summaries. Mirrors
// the teacher's internal/lidar/monitor/echarts_handlers.go bar-chart
// construction, written to a file instead of an HTTP response.
func RenderDashboard(summaries []pvrecdb.CameraSummary, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("pvrecreport: create %s: %w", outPath, err)
	}
	defer f.Close()
	return renderDashboard(summaries, f)
}

func renderDashboard(summaries []pvrecdb.CameraSummary, w io.Writer) error {
	cameras := make([]string, len(summaries))
	trackletCounts := make([]opts.BarData, len(summaries))
	pointCounts := make([]opts.BarData, len(summaries))
	for i, s := range summaries {
		cameras[i] = fmt.Sprintf("cam %d", s.CameraID)
		trackletCounts[i] = opts.BarData{Value: s.TrackletCount}
		pointCounts[i] = opts.BarData{Value: s.TotalPoints}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "960px", Height: "540px"}),
		charts.WithTitleOpts(opts.Title{Title: "pvrec: tracklets per camera"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "camera"}),
	)
	bar.SetXAxis(cameras).
		AddSeries("tracklets", trackletCounts).
		AddSeries("points", pointCounts)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("pvrecreport: render dashboard: %w", err)
	}
	return nil
}
