package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielaMVG19/sloteats/services"
	"github.com/DanielaMVG19/sloteats/utils"
)

// respondServiceError memetakan taksonomi error service ke status HTTP.
// Penolakan policy membawa angka bantu (wait_hours / hours_until) di data
// supaya frontend bisa menampilkan pesan yang berguna.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		notFoundErr   *services.NotFoundError
		policyErr     *services.PolicyDeniedError
		conflictErr   *services.ConflictError
		storeErr      *services.StoreUnavailableError
		renderErr     *services.RenderError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &notFoundErr):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &policyErr):
		if policyErr.WaitHours > 0 {
			utils.RespondErrorData(c, http.StatusTooManyRequests, err, gin.H{
				"wait_hours": policyErr.WaitHours,
			})
			return
		}
		if policyErr.HoursUntil != 0 {
			utils.RespondErrorData(c, http.StatusUnprocessableEntity, err, gin.H{
				"hours_until": policyErr.HoursUntil,
			})
			return
		}
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.As(err, &conflictErr):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.As(err, &storeErr):
		utils.RespondError(c, http.StatusServiceUnavailable, err)
	case errors.As(err, &renderErr):
		utils.RespondError(c, http.StatusBadGateway, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
