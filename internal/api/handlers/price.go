package handlers

import (
	"log"
	"net/http"
	"time"

	"binomial-pricer/internal/analysis"
	"binomial-pricer/internal/api/models"
	"binomial-pricer/internal/batch"
	"binomial-pricer/internal/data"
	"binomial-pricer/internal/lattice"
	"binomial-pricer/internal/model"

	"github.com/gin-gonic/gin"
)

// PriceHandler handles pricing requests
type PriceHandler struct {
	pricer   *lattice.LatticePricer
	cache    *data.QuoteCache
	maxNodes int64
}

// NewPriceHandler creates a new price handler. cache may be nil.
// maxNodes bounds batch and convergence requests; 0 selects
// model.DefaultRequestNodes.
func NewPriceHandler(pricer *lattice.LatticePricer, cache *data.QuoteCache, maxNodes int64) *PriceHandler {
	if pricer == nil {
		pricer = &lattice.LatticePricer{}
	}
	if maxNodes <= 0 {
		maxNodes = model.DefaultRequestNodes
	}
	return &PriceHandler{pricer: pricer, cache: cache, maxNodes: maxNodes}
}

// Price handles POST /api/v1/price
func (h *PriceHandler) Price(c *gin.Context) {
	var req models.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err, nil)
		return
	}

	pricer, err := h.pricerFor(req.Representation)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REPRESENTATION", err, nil)
		return
	}

	contract := req.Contract.ToModel()
	if req.IncludeTree && contract.Steps > model.MaxTreeSteps {
		writePricingError(c, &model.ResourceExhaustionError{
			Representation: model.RepresentationFlat,
			Steps:          contract.Steps,
			MaxSteps:       model.MaxTreeSteps,
		})
		return
	}
	key := data.GenerateQuoteKey(pricer.Representation, contract)

	if q, ok := h.cache.Get(key); ok && !req.IncludeTree {
		log.Printf("PriceHandler: cache hit for %s", key[:12])
		c.JSON(http.StatusOK, models.QuoteResponse{Quote: *q, Cached: true})
		return
	}

	price, err := pricer.Price(contract)
	if err != nil {
		writePricingError(c, err)
		return
	}

	resp := models.QuoteResponse{
		Quote: model.Quote{
			ID:             key,
			Representation: pricer.Representation,
			Contract:       contract,
			Factors:        contract.Factors(),
			Price:          price,
			BlackScholes:   analysis.BlackScholesCall(contract),
			CreatedAt:      time.Now().UTC(),
		},
	}
	if req.IncludeTree {
		tree, err := pricer.Build(contract)
		if err != nil {
			writePricingError(c, err)
			return
		}
		resp.Tree = &models.Tree{Prices: tree.Prices, Values: tree.Values}
	}

	quote := resp.Quote
	h.cache.Set(key, &quote)
	c.JSON(http.StatusOK, resp)
}

// GetQuote handles GET /api/v1/price/:id
func (h *PriceHandler) GetQuote(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusNotImplemented, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CACHE_DISABLED",
				Message: "Quote retrieval requires the quote cache. Set cache.enabled or ENABLE_QUOTE_CACHE=true.",
			},
		})
		return
	}

	id := c.Param("id")
	q, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "QUOTE_NOT_FOUND",
				Message: "no cached quote with id " + id,
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.QuoteResponse{Quote: *q, Cached: true})
}

// Batch handles POST /api/v1/price/batch
func (h *PriceHandler) Batch(c *gin.Context) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err, nil)
		return
	}

	pricer, err := h.pricerFor(req.Representation)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REPRESENTATION", err, nil)
		return
	}

	scenarios := make([]model.Scenario, 0, len(req.Scenarios))
	steps := make([]int, 0, len(req.Scenarios))
	for _, s := range req.Scenarios {
		scenarios = append(scenarios, model.Scenario{Name: s.Name, Contract: s.Contract.ToModel()})
		steps = append(steps, s.Contract.Steps)
	}
	if err := pricer.CheckBudget(steps, h.maxNodes); err != nil {
		writePricingError(c, err)
		return
	}

	result, err := batch.New().Run(scenarios, pricer)
	if err != nil {
		writePricingError(c, err)
		return
	}

	resp := models.BatchResponse{
		Representation: pricer.Representation,
		Quotes:         make([]models.BatchQuote, 0, len(result.Ledger)),
		MaxAbsDiff:     result.MaxAbsDiff,
	}
	for _, r := range result.Ledger {
		resp.Quotes = append(resp.Quotes, models.BatchQuote{
			Index:        r.Index,
			Name:         r.Name,
			Contract:     r.Contract,
			Factors:      r.Factors,
			Price:        r.Price,
			BlackScholes: r.BlackScholes,
			Diff:         r.Diff,
		})
	}
	log.Printf("PriceHandler: priced batch of %d on %s", len(resp.Quotes), resp.Representation)
	c.JSON(http.StatusOK, resp)
}

// Convergence handles POST /api/v1/convergence
func (h *PriceHandler) Convergence(c *gin.Context) {
	var req models.ConvergenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err, nil)
		return
	}

	pricer, err := h.pricerFor(req.Representation)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REPRESENTATION", err, nil)
		return
	}

	steps := req.Steps
	if len(steps) == 0 {
		upTo := req.MaxSteps
		if upTo <= 0 || upTo > pricer.Limit() {
			upTo = pricer.Limit()
		}
		steps = analysis.DoublingSteps(upTo)
	}
	if err := pricer.CheckBudget(steps, h.maxNodes); err != nil {
		writePricingError(c, err)
		return
	}

	report, err := analysis.Convergence(req.Contract.ToModel(), steps, pricer)
	if err != nil {
		writePricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ConvergenceResponse{ConvergenceReport: report})
}

// pricerFor returns the configured pricer, or one with default caps when
// the request names a different representation.
func (h *PriceHandler) pricerFor(rep string) (*lattice.LatticePricer, error) {
	if rep == "" {
		return h.normalized(), nil
	}
	r, err := model.ParseRepresentation(rep)
	if err != nil {
		return nil, err
	}
	if p := h.normalized(); r == p.Representation {
		return p, nil
	}
	return lattice.New(r, 0)
}

func (h *PriceHandler) normalized() *lattice.LatticePricer {
	if h.pricer.Representation == "" {
		return &lattice.LatticePricer{Representation: model.RepresentationFlat, MaxSteps: h.pricer.MaxSteps}
	}
	return h.pricer
}
