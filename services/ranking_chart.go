package services

import (
	"bytes"
	"errors"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderRankingChart menggambar top restaurants sebagai bar chart PNG
// untuk dashboard staff.
func RenderRankingChart(view RankingView) ([]byte, error) {
	if len(view.TopRestaurants) == 0 {
		return nil, &RenderError{Err: errors.New("no reservations to chart")}
	}

	bars := make([]chart.Value, 0, len(view.TopRestaurants))
	for _, r := range view.TopRestaurants {
		bars = append(bars, chart.Value{Label: r.Restaurant, Value: float64(r.Count)})
	}

	graph := chart.BarChart{
		Title:    "Reservations by restaurant",
		Width:    640,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}
