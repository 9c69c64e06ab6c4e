package matching

import (
	"context"
	"sort"
	"sync"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Rank scores every candidate against the query, drops candidates below the
// configured threshold, and returns at most TopK matches ordered by total
// score descending with candidate-identifier-ascending tie-breaks.
//
// The tf-idf index is built once from the candidate descriptions plus the
// query description before any scoring starts, then treated as read-only by
// the scoring workers, so the output ordering is fully deterministic
// regardless of the degree of parallelism. An empty candidate pool, or a
// pool where nothing clears the threshold, returns an empty list.
func (e *Engine) Rank(ctx context.Context, query *models.Report, candidates []models.Report, cfg RankConfig) ([]models.RankedMatch, error) {
	ctx, span := tracing.StartSpan(ctx, "matching.Engine.Rank")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := e.logger.WithContext(ctx).WithFields(map[string]any{
		"query_id":        query.ID,
		"query_kind":      query.Kind,
		"candidate_count": len(candidates),
	})

	if len(candidates) == 0 {
		log.Debug("No candidates to rank")
		return []models.RankedMatch{}, nil
	}

	// Corpus = candidate descriptions + query description, so idf accounts
	// for the query's vocabulary too.
	docs := make([]string, 0, len(candidates)+1)
	for i := range candidates {
		docs = append(docs, candidates[i].Description)
	}
	docs = append(docs, query.Description)
	ix := e.BuildIndex(docs)

	weights := cfg.Weights.Normalized()
	results := make([]models.ScoringResult, len(candidates))

	workers := e.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.scorePair(query, &candidates[i], ix, weights)
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	matches := make([]models.RankedMatch, 0, len(candidates))
	for i := range candidates {
		if results[i].TotalScore < cfg.MinScore {
			continue
		}
		matches = append(matches, models.RankedMatch{
			Report: candidates[i],
			Result: results[i],
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Result.TotalScore != matches[j].Result.TotalScore {
			return matches[i].Result.TotalScore > matches[j].Result.TotalScore
		}
		return matches[i].Report.ID < matches[j].Report.ID
	})

	if len(matches) > cfg.TopK {
		matches = matches[:cfg.TopK]
	}

	log.WithFields(map[string]any{"match_count": len(matches)}).Debug("Ranked candidates")

	return matches, nil
}
