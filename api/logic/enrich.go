/* enrich.go
 * Contains the logic used to look up every player of a roster on Overbuff. Lookups run concurrently, capped by a
 * worker limit and a rate limiter so the scrape host is not flooded
 * Authors: Zachary Bower
 */

package logic

import (
	"context"
	"time"

	"wahoo-bot/api/external"
	"wahoo-bot/api/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency is the number of profile lookups in flight when none is configured
const DefaultConcurrency = 4

// PlayerFinder looks up a single player's rating
type PlayerFinder interface {
	FindPlayer(ctx context.Context, battletag string) (external.RatedPlayer, error)
}

var _ PlayerFinder = (*external.OverbuffClient)(nil)

type Enricher struct {
	finder      PlayerFinder
	concurrency int
	limiter     *rate.Limiter
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewEnricher creates an Enricher. concurrency below 1 uses DefaultConcurrency, and rps of 0 or less disables rate
// limiting
func NewEnricher(finder PlayerFinder, concurrency int, rps float64, logger zerolog.Logger) *Enricher {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	return &Enricher{
		finder:      finder,
		concurrency: concurrency,
		limiter:     limiter,
		logger:      logger,
	}
}

// SetMetrics records every lookup the Enricher makes on m
func (e *Enricher) SetMetrics(m *metrics.Metrics) {
	e.metrics = m
}

// Battletags returns the battletags of the players that have one, in roster order
func Battletags(players []external.Player) []string {
	var tags []string
	for _, p := range players {
		if tag, ok := p.Battletag(); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Enrich looks up every player with a battletag. A player whose lookup fails is logged and left out
// Preconditions: Receives context and a team's roster
// Postconditions: Returns the players that were found, in roster order, or the context's error if it was cancelled
// before every lookup finished. No partial result is returned in that case
func (e *Enricher) Enrich(ctx context.Context, players []external.Player) ([]external.RatedPlayer, error) {
	tags := Battletags(players)
	results := make([]*external.RatedPlayer, len(tags))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, tag := range tags {
		g.Go(func() error {
			if e.limiter != nil {
				if err := e.limiter.Wait(gCtx); err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					e.logger.Warn().Err(err).Str("battletag", tag).Msg("skipping player, rate limit wait failed")
					return nil
				}
			}

			start := time.Now()
			player, err := e.finder.FindPlayer(gCtx, tag)
			e.metrics.ObservePlayerLookup(err == nil, time.Since(start))
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				e.logger.Warn().Err(err).Str("battletag", tag).Msg("error grabbing player")
				return nil
			}
			results[i] = &player
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rated := make([]external.RatedPlayer, 0, len(results))
	for _, r := range results {
		if r != nil {
			rated = append(rated, *r)
		}
	}
	return rated, nil
}
