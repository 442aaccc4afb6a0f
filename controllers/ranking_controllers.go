package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielaMVG19/sloteats/services"
	"github.com/DanielaMVG19/sloteats/utils"
)

type RankingController struct {
	Lifecycle *services.Lifecycle
}

func NewRankingController(ls *services.Lifecycle) *RankingController {
	return &RankingController{Lifecycle: ls}
}

// GetRankings menghitung ulang ranking popularitas dari seluruh reservasi.
// Sengaja tanpa cache: reservasi berubah terus.
func (rc *RankingController) GetRankings(c *gin.Context) {
	view, err := rc.Lifecycle.ComputeRanking(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant rankings", view)
}

// GetRankingChart -> bar chart PNG dari top restaurants untuk dashboard.
func (rc *RankingController) GetRankingChart(c *gin.Context) {
	view, err := rc.Lifecycle.ComputeRanking(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	png, err := services.RenderRankingChart(view)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
