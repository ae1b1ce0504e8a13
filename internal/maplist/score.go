package maplist

import "maplist-generator/internal/mappool"

const (
	optimalScore = 0
	// unfairPenalty outweighs any number of repeats.
	unfairPenalty = 100
)

// rate scores a complete list; lower is better.
func (s *solver) rate(picks []Candidate) int {
	score := optimalScore

	appeared := make(map[mappool.StageID]int, len(picks))
	sum := 0
	for _, p := range picks {
		appeared[p.StageID]++
		sum += p.Score
	}
	for _, n := range appeared {
		score += n - 1
	}

	if len(s.modes) == 1 && !s.isGoodTiebreaker(picks[len(picks)-1]) {
		score++
	}

	if sum != 0 {
		score += unfairPenalty
	}
	return score
}

// isGoodTiebreaker judges the final map of a one-mode set.
func (s *solver) isGoodTiebreaker(c Candidate) bool {
	if c.Source.Kind == KindTiebreaker {
		return true
	}
	if len(s.tiebreakers.items) == 0 && (s.teams[0].Pool.IsEmpty() || s.teams[1].Pool.IsEmpty()) {
		return true
	}
	return s.teams[0].Pool.Contains(c.Pair) && s.teams[1].Pool.Contains(c.Pair)
}
