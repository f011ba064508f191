package handlers

import (
	"log"
	"net/http"

	"binomial-pricer/internal/api/models"
	"binomial-pricer/internal/model"

	"github.com/gin-gonic/gin"
)

// RepresentationHandler lists the lattice representations
type RepresentationHandler struct {
	configured model.Representation
}

// NewRepresentationHandler creates a new representation handler
func NewRepresentationHandler(configured model.Representation) *RepresentationHandler {
	if configured == "" {
		configured = model.RepresentationFlat
	}
	return &RepresentationHandler{configured: configured}
}

// ListRepresentations handles GET /api/v1/representations
func (h *RepresentationHandler) ListRepresentations(c *gin.Context) {
	log.Printf("RepresentationHandler: ListRepresentations called")
	reps := []models.RepresentationInfo{
		{
			Name:            string(model.RepresentationFlat),
			Description:     "Non-recombining lattice. Every path is stored explicitly and siblings are adjacent in each level.",
			NodesPerLevel:   "2^i",
			DefaultMaxSteps: model.RepresentationFlat.DefaultMaxSteps(),
			StepCeiling:     model.RepresentationFlat.StepCeiling(),
		},
		{
			Name:            string(model.RepresentationRecombining),
			Description:     "Recombining lattice indexed by up-move count. Same prices, linear memory.",
			NodesPerLevel:   "i+1",
			DefaultMaxSteps: model.RepresentationRecombining.DefaultMaxSteps(),
			StepCeiling:     model.RepresentationRecombining.StepCeiling(),
		},
	}
	for i := range reps {
		reps[i].Configured = reps[i].Name == string(h.configured)
	}

	c.JSON(http.StatusOK, gin.H{"representations": reps})
}
