package stats

import (
	"os"
	"slices"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderRankChart writes an SVG scatter of a rank histogram, rank on the x
// axis and occurrences on the y axis.
func RenderRankChart(path string, histogram map[int]int) error {
	return scatterIntMap(path, histogram)
}

// RenderRunChart writes an SVG scatter of a run length histogram.
func RenderRunChart(path string, runLengths map[int]int) error {
	return scatterIntMap(path, runLengths)
}

func scatterIntMap(path string, results map[int]int) error {
	keys := make([]int, 0)
	for key := range results {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	xvals := make([]float64, 0)
	yvals := make([]float64, 0)
	for _, key := range keys {
		xvals = append(xvals, float64(key))
		yvals = append(yvals, float64(results[key]))
	}

	graph := chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}

	err = graph.Render(chart.SVG, fh)
	if err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
