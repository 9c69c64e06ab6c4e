package match

import (
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/matching"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/models"
)

var validate = validator.New()

// Register registers match routes
func Register(g *echo.Group) {
	g.POST("/rank", Rank)
	g.POST("/score", Score)
}

// RankRequest asks for the best matches for a query report within a
// candidate pool. Omitted tuning fields fall back to the engine defaults.
type RankRequest struct {
	Query      models.Report   `json:"query" validate:"required"`
	Candidates []models.Report `json:"candidates"`
	Weights    *models.Weights `json:"weights,omitempty"`
	MinScore   *float64        `json:"min_score,omitempty"`
	TopK       *int            `json:"top_k,omitempty"`
}

// RankResponse carries the ranked matches with per-signal breakdowns
type RankResponse struct {
	QueryID string               `json:"query_id"`
	Matches []models.RankedMatch `json:"matches"`
}

// ScoreRequest asks for the score breakdown of a single report pair
type ScoreRequest struct {
	Query     models.Report   `json:"query" validate:"required"`
	Candidate models.Report   `json:"candidate" validate:"required"`
	Weights   *models.Weights `json:"weights,omitempty"`
}

// Rank scores a candidate pool against a query report and returns the
// matches that clear the threshold, best first
func Rank(c echo.Context) error {
	ctx := c.Request().Context()

	var req RankRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, engine, err := ectoinject.GetContext[*matching.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	cfg := engine.RankConfig()
	if req.Weights != nil {
		cfg.Weights = *req.Weights
	}
	if req.MinScore != nil {
		cfg.MinScore = *req.MinScore
	}
	if req.TopK != nil {
		cfg.TopK = *req.TopK
	}

	start := time.Now()
	matches, err := engine.Rank(ctx, &req.Query, req.Candidates, cfg)
	metrics.MatchDuration.WithLabelValues("http").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("http", "rejected").Inc()
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	metrics.MatchRequestsTotal.WithLabelValues("http", "ok").Inc()
	metrics.CandidatesScoredTotal.Add(float64(len(req.Candidates)))
	metrics.MatchesReturned.Observe(float64(len(matches)))

	return c.JSON(http.StatusOK, RankResponse{
		QueryID: req.Query.ID,
		Matches: matches,
	})
}

// Score returns the per-signal breakdown for a single query/candidate pair
func Score(c echo.Context) error {
	ctx := c.Request().Context()

	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, engine, err := ectoinject.GetContext[*matching.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	weights := engine.Config().Weights
	if req.Weights != nil {
		weights = *req.Weights
	}

	ix := engine.BuildIndex([]string{req.Query.Description, req.Candidate.Description})
	result, err := engine.Score(ctx, &req.Query, &req.Candidate, ix, weights)
	if err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
