package handlers

import (
	"errors"
	"math"
	"net/http"

	"binomial-pricer/internal/api/models"
	"binomial-pricer/internal/model"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code string, err error, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: details,
		},
	})
}

// writePricingError maps the pricing error taxonomy onto HTTP responses.
func writePricingError(c *gin.Context, err error) {
	var ipe *model.InvalidParameterError
	if errors.As(err, &ipe) {
		details := map[string]interface{}{"parameter": ipe.Param}
		if !math.IsNaN(ipe.Value) && !math.IsInf(ipe.Value, 0) {
			details["value"] = ipe.Value
		}
		abortWithError(c, http.StatusBadRequest, "INVALID_PARAMETER", err, details)
		return
	}

	var wbe *model.WorkBudgetError
	if errors.As(err, &wbe) {
		abortWithError(c, http.StatusUnprocessableEntity, "RESOURCE_EXHAUSTED", err, map[string]interface{}{
			"nodes":     wbe.Nodes,
			"max_nodes": wbe.MaxNodes,
		})
		return
	}

	var noe *model.NumericOverflowError
	if errors.As(err, &noe) {
		abortWithError(c, http.StatusUnprocessableEntity, "NUMERIC_OVERFLOW", err, map[string]interface{}{
			"steps": noe.Steps,
		})
		return
	}

	var ree *model.ResourceExhaustionError
	if errors.As(err, &ree) {
		abortWithError(c, http.StatusUnprocessableEntity, "RESOURCE_EXHAUSTED", err, map[string]interface{}{
			"representation": ree.Representation,
			"steps":          ree.Steps,
			"max_steps":      ree.MaxSteps,
		})
		return
	}

	abortWithError(c, http.StatusInternalServerError, "PRICING_ERROR", err, nil)
}
