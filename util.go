package panelcheck

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-panelcheck/panel"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineInstances generates an echart line chart with one series per instance
// of a univariate dense collection indexed by timepoint. NaN values are
// skipped.
func LineInstances(title string, x *panel.Dense) (*charts.Line, error) {
	xNext, err := CheckX(x, &FeatureOptions{
		EnforceUnivariate:   true,
		EnforceMinInstances: 1,
		EnforceMinColumns:   1,
	})
	if err != nil {
		return nil, err
	}
	dense := xNext.(*panel.Dense)
	shape := dense.Shape()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	timepoints := make([]int, shape[2])
	for i := range timepoints {
		timepoints[i] = i
	}
	line = line.SetXAxis(timepoints)

	for i := 0; i < shape[0]; i++ {
		lineData := make([]opts.LineData, 0, shape[2])
		for j := 0; j < shape[2]; j++ {
			val, err := dense.At(i, 0, j)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(val) {
				continue
			}
			lineData = append(lineData, opts.LineData{Value: val})
		}
		line = line.AddSeries(fmt.Sprintf("instance_%d", i), lineData)
	}
	return line, nil
}
