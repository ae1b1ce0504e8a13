package maplist

// ── Rules ───────────────────────────────────────────────────────────

// rule rejects a candidate that may not extend the current partial list.
type rule struct {
	name     string
	violated func(s *solver, list *candidateList, idx int) bool
}

// rules are checked in order; the first violation rejects the candidate.
var rules = []rule{
	{"already used", func(_ *solver, list *candidateList, idx int) bool { return list.used[idx] }},
	{"list full", func(s *solver, _ *candidateList, _ int) bool { return s.picks.len() >= s.count }},
	{"early mode repeat", candidateRule((*solver).isEarlyModeRepeat)},
	{"mode pattern", candidateRule((*solver).breaksModePattern)},
	{"unfair", candidateRule((*solver).isMakingThingsUnfair)},
	{"stage repeat", candidateRule((*solver).isStageRepeatWithoutBreak)},
	{"same team twice", candidateRule((*solver).isSecondPickBySameTeamInRow)},
	{"tiebreaker starvation", candidateRule((*solver).wouldPreventTiebreaker)},
}

func candidateRule(f func(*solver, Candidate) bool) func(*solver, *candidateList, int) bool {
	return func(s *solver, list *candidateList, idx int) bool {
		return f(s, list.items[idx])
	}
}

// allowed reports whether list.items[idx] may be picked next.
func (s *solver) allowed(list *candidateList, idx int) bool {
	return s.violatedRule(list, idx) == ""
}

// violatedRule returns the name of the first rule the candidate breaks, or "".
func (s *solver) violatedRule(list *candidateList, idx int) string {
	for _, r := range rules {
		if r.violated(s, list, idx) {
			return r.name
		}
	}
	return ""
}

// isEarlyModeRepeat: every mode must be played once before any mode repeats.
func (s *solver) isEarlyModeRepeat(c Candidate) bool {
	if len(s.modes) == 1 || s.allModesAppeared() {
		return false
	}
	return s.picks.hasMode(c.Mode)
}

// breaksModePattern: once a mode order is established it keeps rotating.
func (s *solver) breaksModePattern(c Candidate) bool {
	if len(s.modes) == 1 {
		return false
	}
	mode, ok := s.requiredMode()
	return ok && c.Mode != mode
}

// isMakingThingsUnfair: an advantage must be answered by the next pick, and
// the set must end balanced unless the final map is a tiebreaker.
func (s *solver) isMakingThingsUnfair(c Candidate) bool {
	if c.Source.Kind == KindTiebreaker {
		return false
	}
	sum := s.picks.sum
	if sum != 0 && sum+c.Score != 0 {
		return true
	}
	return sum+c.Score != 0 && s.picks.len() == s.count-1
}

func (s *solver) isStageRepeatWithoutBreak(c Candidate) bool {
	prev, ok := s.picks.last()
	return ok && prev.StageID == c.StageID
}

// isSecondPickBySameTeamInRow: neutral picks (score 0) never count.
func (s *solver) isSecondPickBySameTeamInRow(c Candidate) bool {
	prev, ok := s.picks.last()
	return ok && c.Score != 0 && prev.Score == c.Score
}

// wouldPreventTiebreaker keeps a map both teams picked available for the final
// slot when there is no tiebreaker pool.
func (s *solver) wouldPreventTiebreaker(c Candidate) bool {
	if len(s.tiebreakers.items) > 0 || c.Source.Kind != KindBoth {
		return false
	}
	// nothing to protect, or both submitted the same pool
	if s.commonTotal == 0 || s.commonTotal == s.teams[0].Pool.Len() || s.commonTotal == s.teams[1].Pool.Len() {
		return false
	}
	if s.picks.len() >= s.count-1 {
		return false
	}

	left := 0
	for i, other := range s.pool.items {
		if other.Source.Kind == KindBoth && !s.pool.used[i] && other.Pair != c.Pair {
			left++
		}
	}
	return left == 0
}
