// Package maplist generates the maps of a tournament set from both teams'
// map pool submissions.
//
// Generation is a deterministic backtracking search: candidates are shuffled
// with a generator seeded from the request, every candidate is checked
// against a fixed list of fairness and variety rules, and complete lists are
// scored. The lowest scoring list wins; a perfect score ends the search early.
package maplist

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"
)

// Generate returns the map list for req.
func Generate(req Request, opts ...Option) (Maplist, error) {
	ml, _, err := GenerateWithStats(req, opts...)
	return ml, err
}

// GenerateWithStats is Generate that also reports search counters.
func GenerateWithStats(req Request, opts ...Option) (Maplist, Stats, error) {
	return generate(req, newOptions(opts))
}

// GenerateAll generates one map list per request, in parallel. Results keep the
// order of reqs. The first failure cancels the remaining work.
func GenerateAll(ctx context.Context, reqs []Request, opts ...Option) ([]Maplist, error) {
	o := newOptions(opts)
	out := make([]Maplist, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return eris.Wrap(err, "generation cancelled")
			}
			ml, _, err := generate(reqs[i], o)
			if err != nil {
				return eris.Wrapf(err, "request %d (seed %q)", i, reqs[i].Seed)
			}
			out[i] = ml
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func generate(req Request, o Options) (Maplist, Stats, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, Stats{}, err
	}

	s := newSolver(req, o)
	best := s.solve()
	s.stats.Duration = time.Since(start)

	s.log.Debug().
		Int("iterations", s.stats.Iterations).
		Int("considered", s.stats.CandidatesConsidered).
		Int("complete", s.stats.CompleteLists).
		Int("score", best.score).
		Dur("elapsed", s.stats.Duration).
		Msg("search done")

	if !best.found {
		if s.stats.Exhausted {
			return nil, s.stats, eris.Wrapf(ErrNoMaplist, "search budget of %d iterations exhausted", s.maxIter)
		}
		return nil, s.stats, eris.Wrap(ErrNoMaplist, "constraints cannot be satisfied")
	}

	ml := make(Maplist, len(best.picks))
	for i, c := range best.picks {
		ml[i] = Pick{Pair: c.Pair, Source: c.Source}
	}
	return ml, s.stats, nil
}
