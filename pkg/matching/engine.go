// Package matching implements the multi-signal scoring engine that ranks
// candidate found-item reports against a lost-item report (or vice versa).
// Scoring is a pure function of the two reports, the corpus index and the
// active configuration; the engine holds no mutable state of its own beyond
// the attribute extraction cache.
package matching

import (
	"errors"
	"fmt"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/attributes"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/taxonomy"
	"github.com/Ramsey-B/fern/pkg/tfidf"
)

// ErrInvalidConfig is returned when a scoring or ranking configuration fails
// validation. Invalid configuration fails fast before any scoring runs, it
// is never silently clamped.
var ErrInvalidConfig = errors.New("invalid match configuration")

// Fuzzy signal algorithms
const (
	FuzzyLevenshtein = "levenshtein"
	FuzzyJaroWinkler = "jaro_winkler"
)

// Config contains the engine-level scoring knobs
type Config struct {
	Weights        models.Weights // default signal weights
	MinScore       float64        // default minimum total score (default: 0.5)
	TopK           int            // default maximum results per ranking (default: 20)
	DecayRadiusKm  float64        // location decay radius in km (default: 5)
	MaxWindowDays  int            // date decay window in days (default: 30)
	NeutralScore   float64        // score when location or date is missing (default: 0.5)
	SameGroupScore float64        // category score for same parent group (default: 0.5)
	FuzzyAlgorithm string         // levenshtein (default) or jaro_winkler
	Workers        int            // concurrent scoring workers per ranking (default: 4)
}

// DefaultConfig returns the shipped defaults. The default weights sum to 1.
func DefaultConfig() Config {
	return Config{
		Weights: models.Weights{
			Category:  0.15,
			Location:  0.15,
			TFIDF:     0.25,
			Fuzzy:     0.15,
			Attribute: 0.20,
			Date:      0.10,
		},
		MinScore:       0.5,
		TopK:           20,
		DecayRadiusKm:  5,
		MaxWindowDays:  30,
		NeutralScore:   0.5,
		SameGroupScore: 0.5,
		FuzzyAlgorithm: FuzzyLevenshtein,
		Workers:        4,
	}
}

// RankConfig is the per-request configuration for one ranking call
type RankConfig struct {
	Weights  models.Weights // signal weights, re-normalized to sum to 1
	MinScore float64        // threshold τ: candidates scoring below are dropped
	TopK     int            // maximum number of results returned
}

// Validate checks the configuration before any scoring runs
func (c RankConfig) Validate() error {
	if err := validateWeights(c.Weights); err != nil {
		return err
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("%w: min score %v outside [0, 1]", ErrInvalidConfig, c.MinScore)
	}
	if c.TopK < 1 {
		return fmt.Errorf("%w: top k %d must be at least 1", ErrInvalidConfig, c.TopK)
	}
	return nil
}

func validateWeights(w models.Weights) error {
	for name, v := range map[string]float64{
		"w_category":  w.Category,
		"w_location":  w.Location,
		"w_tfidf":     w.TFIDF,
		"w_fuzzy":     w.Fuzzy,
		"w_attribute": w.Attribute,
		"w_date":      w.Date,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidConfig, name, v)
		}
	}
	if w.Sum() == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidConfig)
	}
	return nil
}

// Engine scores and ranks candidate reports
type Engine struct {
	logger    ectologger.Logger
	scorer    *Scorer
	extractor *attributes.Extractor
	taxonomy  *taxonomy.Taxonomy
	cfg       Config
}

// NewEngine creates a match engine over the shipped dictionaries and
// taxonomy.
func NewEngine(logger ectologger.Logger, cfg Config) *Engine {
	return NewEngineWith(logger, attributes.NewExtractor(), taxonomy.Default(), cfg)
}

// NewEngineWith creates a match engine with explicit collaborators
func NewEngineWith(logger ectologger.Logger, extractor *attributes.Extractor, tax *taxonomy.Taxonomy, cfg Config) *Engine {
	return &Engine{
		logger:    logger,
		scorer:    NewScorer(),
		extractor: extractor,
		taxonomy:  tax,
		cfg:       cfg,
	}
}

// Config returns the engine defaults
func (e *Engine) Config() Config {
	return e.cfg
}

// RankConfig builds a per-request configuration from the engine defaults
func (e *Engine) RankConfig() RankConfig {
	return RankConfig{
		Weights:  e.cfg.Weights,
		MinScore: e.cfg.MinScore,
		TopK:     e.cfg.TopK,
	}
}

// BuildIndex builds the tf-idf corpus index for a candidate pool. It must be
// called before scoring against that pool and rebuilt whenever the pool
// changes; scoring against an index built from a different pool yields
// meaningless similarity values.
func (e *Engine) BuildIndex(descriptions []string) *tfidf.Index {
	return tfidf.Build(descriptions)
}
