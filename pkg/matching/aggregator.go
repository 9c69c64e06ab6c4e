package matching

import (
	"context"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/normalizers"
	"github.com/Ramsey-B/fern/pkg/tfidf"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Score computes the full per-signal breakdown for one (query, candidate)
// pair against a corpus index built for the candidate's pool. Pure: no
// failure modes besides invalid weights.
func (e *Engine) Score(ctx context.Context, query, candidate *models.Report, ix *tfidf.Index, weights models.Weights) (models.ScoringResult, error) {
	_, span := tracing.StartSpan(ctx, "matching.Engine.Score")
	defer span.End()

	if err := validateWeights(weights); err != nil {
		return models.ScoringResult{}, err
	}

	return e.scorePair(query, candidate, ix, weights.Normalized()), nil
}

// scorePair computes one ScoringResult. Weights must already be normalized.
// Every signal is bounded to [0, 1], so the weighted total is too.
func (e *Engine) scorePair(query, candidate *models.Report, ix *tfidf.Index, w models.Weights) models.ScoringResult {
	r := models.ScoringResult{
		CategoryScore:  e.categoryScore(query.Category, candidate.Category),
		LocationScore:  e.locationScore(query.Location, candidate.Location),
		DateScore:      e.dateScore(query, candidate),
		TFIDFScore:     ix.Similarity(query.Description, candidate.Description),
		FuzzyScore:     e.fuzzyScore(query.Title, candidate.Title),
		AttributeScore: e.attributeScore(query.Description, candidate.Description),
	}

	r.TotalScore = w.Category*r.CategoryScore +
		w.Location*r.LocationScore +
		w.TFIDF*r.TFIDFScore +
		w.Fuzzy*r.FuzzyScore +
		w.Attribute*r.AttributeScore +
		w.Date*r.DateScore

	return r
}

// categoryScore is a deterministic table lookup: identical categories score
// 1.0, categories under the same parent group score the configured partial
// value, anything else scores 0. Two empty categories score 0, not 1:
// category is a required field upstream, so an empty pair means malformed
// input and must not read as a perfect category match.
func (e *Engine) categoryScore(a, b string) float64 {
	na := normalizers.NormalizeText(a)
	nb := normalizers.NormalizeText(b)
	if na == "" && nb == "" {
		return 0.0
	}
	if na == nb {
		return 1.0
	}
	if e.taxonomy.SameGroup(na, nb) {
		return e.cfg.SameGroupScore
	}
	return 0.0
}

// locationScore decays with great-circle distance. A missing location on
// either side yields the configured neutral score rather than failing.
func (e *Engine) locationScore(a, b *models.Location) float64 {
	if a == nil || b == nil {
		return e.cfg.NeutralScore
	}
	distKm := e.scorer.HaversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	return e.scorer.LocationDecay(distKm, e.cfg.DecayRadiusKm)
}

// dateScore decays linearly with the day difference between the two event
// dates, with the same neutral-default policy as locationScore.
func (e *Engine) dateScore(query, candidate *models.Report) float64 {
	if query.EventDate == nil || candidate.EventDate == nil {
		return e.cfg.NeutralScore
	}
	return e.scorer.DateDecay(*query.EventDate, *candidate.EventDate, e.cfg.MaxWindowDays)
}

// fuzzyScore compares the normalized item titles with the configured
// edit-distance algorithm.
func (e *Engine) fuzzyScore(a, b string) float64 {
	na := normalizers.NormalizeText(a)
	nb := normalizers.NormalizeText(b)
	if e.cfg.FuzzyAlgorithm == FuzzyJaroWinkler {
		return e.scorer.JaroWinkler(na, nb)
	}
	return e.scorer.Levenshtein(na, nb)
}

// attributeScore is the Jaccard similarity of the two reports' combined
// brand ∪ color ∪ model sets.
func (e *Engine) attributeScore(descA, descB string) float64 {
	attrsA := e.extractor.Extract(descA)
	attrsB := e.extractor.Extract(descB)
	return e.scorer.Jaccard(attrsA.Union(), attrsB.Union())
}

// ExtractAttributes exposes the cached attribute extraction for a report
// description, letting callers show the detected brand/color/model values.
func (e *Engine) ExtractAttributes(description string) models.ExtractedAttributes {
	return e.extractor.Extract(description)
}
