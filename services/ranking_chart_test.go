package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderRankingChart_EmptyView(t *testing.T) {
	_, err := RenderRankingChart(RankingView{})

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderRankingChart_ProducesPNG(t *testing.T) {
	view := RankingView{
		TopRestaurants: []RestaurantRank{
			{Restaurant: "A", Count: 3, Percentage: 100},
			{Restaurant: "B", Count: 1, Percentage: 33},
		},
	}

	png, err := RenderRankingChart(view)
	assert.NoError(t, err)
	// PNG magic number
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
