package models

// Weights controls how much each signal contributes to the total score.
// All weights must be ≥ 0 and at least one must be positive; they are
// normalized to sum to 1 before scoring, so scaling every weight by the
// same constant does not change the total.
type Weights struct {
	Category  float64 `json:"w_category"`
	Location  float64 `json:"w_location"`
	TFIDF     float64 `json:"w_tfidf"`
	Fuzzy     float64 `json:"w_fuzzy"`
	Attribute float64 `json:"w_attribute"`
	Date      float64 `json:"w_date"`
}

// Sum returns the raw weight total
func (w Weights) Sum() float64 {
	return w.Category + w.Location + w.TFIDF + w.Fuzzy + w.Attribute + w.Date
}

// Normalized returns a copy of the weights scaled to sum to 1.
// The caller is responsible for validating the weights first; a zero sum
// returns the weights unchanged.
func (w Weights) Normalized() Weights {
	sum := w.Sum()
	if sum == 0 {
		return w
	}
	return Weights{
		Category:  w.Category / sum,
		Location:  w.Location / sum,
		TFIDF:     w.TFIDF / sum,
		Fuzzy:     w.Fuzzy / sum,
		Attribute: w.Attribute / sum,
		Date:      w.Date / sum,
	}
}

// ScoringResult is the per-signal breakdown for one (query, candidate) pair.
// Every signal score lies in [0, 1]; the total is the weighted sum over the
// normalized weights, so it is also bounded by [0, 1].
type ScoringResult struct {
	CategoryScore  float64 `json:"category_score"`
	LocationScore  float64 `json:"location_score"`
	TFIDFScore     float64 `json:"tfidf_score"`
	FuzzyScore     float64 `json:"fuzzy_score"`
	AttributeScore float64 `json:"attribute_score"`
	DateScore      float64 `json:"date_score"`
	TotalScore     float64 `json:"total_score"`
}

// RankedMatch pairs a candidate report with its full scoring breakdown so
// callers can explain why the pair matched.
type RankedMatch struct {
	Report Report        `json:"report"`
	Result ScoringResult `json:"result"`
}
