package charts

import (
	"fmt"
	"os"
	"strconv"

	charts "github.com/vicanso/go-charts/v2"
)

// RenderEquity renders an equity series as a PNG line chart, x axis in day
// indices.
func RenderEquity(equity []float64, title string) ([]byte, error) {
	if len(equity) < 2 {
		return nil, fmt.Errorf("charts: need at least 2 equity points, got %d", len(equity))
	}

	labels := make([]string, len(equity))
	yMin, yMax := equity[0], equity[0]
	for i, v := range equity {
		labels[i] = strconv.Itoa(i)
		if v < yMin {
			yMin = v
		}
		if v > yMax {
			yMax = v
		}
	}

	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	split := 10
	if len(equity) < split {
		split = len(equity)
	}

	p, err := charts.LineRender([][]float64{equity},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: split,
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return p.Bytes()
}

// WriteEquityPNG renders the chart and writes it to path.
func WriteEquityPNG(path string, equity []float64, title string) error {
	img, err := RenderEquity(equity, title)
	if err != nil {
		return err
	}
	return os.WriteFile(path, img, 0644)
}
