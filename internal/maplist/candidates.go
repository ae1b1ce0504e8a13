package maplist

import (
	"slices"

	"maplist-generator/internal/mappool"
)

// ── Candidate pool ──────────────────────────────────────────────────

// orderTeams sorts the teams by id so the result is independent of the
// order the caller passed them in.
func orderTeams(teams [2]Team) [2]Team {
	if teams[1].ID < teams[0].ID {
		teams[0], teams[1] = teams[1], teams[0]
	}
	return teams
}

// buildCandidates merges both submissions into scored candidates. teams must
// already be ordered.
func buildCandidates(teams [2]Team, modes []mappool.Mode, defaultPool mappool.Pool) []Candidate {
	first, second := teams[0], teams[1]

	result := make([]Candidate, 0, first.Pool.Len()+second.Pool.Len())
	for _, p := range first.Pool.Pairs() {
		if second.Pool.Contains(p) {
			result = append(result, Candidate{Pair: p, Score: 0, Source: SourceBoth})
			continue
		}
		result = append(result, Candidate{Pair: p, Score: 1, Source: SourceTeam(first.ID)})
	}
	for _, p := range second.Pool.Pairs() {
		if first.Pool.Contains(p) {
			continue
		}
		result = append(result, Candidate{Pair: p, Score: -1, Source: SourceTeam(second.ID)})
	}

	switch {
	case first.Pool.IsEmpty() && second.Pool.IsEmpty():
		included := defaultPool.Filter(func(p mappool.Pair) bool { return slices.Contains(modes, p.Mode) })
		for _, p := range included.Pairs() {
			result = append(result, Candidate{Pair: p, Score: 0, Source: SourceDefault})
		}
	case first.Pool.IsEmpty() || second.Pool.IsEmpty():
		// one side had no preference: nothing to balance against
		for i := range result {
			result[i].Score = 0
		}
	}

	sortCandidates(result)
	return result
}

// buildTiebreakers returns the candidates for the final map. Without an
// explicit pool, a one-mode tournament falls back to the stages neither team
// picked.
func buildTiebreakers(req Request, teams [2]Team, catalog []mappool.StageID) []Candidate {
	var result []Candidate
	switch {
	case !req.TiebreakerPool.IsEmpty():
		for _, p := range req.TiebreakerPool.Pairs() {
			result = append(result, Candidate{Pair: p, Score: 0, Source: SourceTiebreaker})
		}
	case len(req.ModesIncluded) == 1:
		mode := req.ModesIncluded[0]
		for _, id := range catalog {
			p := mappool.Pair{Mode: mode, StageID: id}
			if teams[0].Pool.Contains(p) || teams[1].Pool.Contains(p) {
				continue
			}
			result = append(result, Candidate{Pair: p, Score: 0, Source: SourceTiebreaker})
		}
	}

	sortCandidates(result)
	return result
}

func sortCandidates(cs []Candidate) {
	slices.SortStableFunc(cs, func(a, b Candidate) int {
		return a.Pair.Compare(b.Pair)
	})
}

func countKind(cs []Candidate, kind SourceKind) int {
	n := 0
	for _, c := range cs {
		if c.Source.Kind == kind {
			n++
		}
	}
	return n
}
