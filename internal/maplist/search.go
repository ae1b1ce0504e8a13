package maplist

import (
	"slices"

	"github.com/rs/zerolog"

	"maplist-generator/internal/mappool"
	"maplist-generator/internal/rng"
)

// ── Pick stack ──────────────────────────────────────────────────────

// pickStack is the in-progress list of the current search branch.
type pickStack struct {
	picks []Candidate
	sum   int
}

func (s *pickStack) push(c Candidate) {
	s.picks = append(s.picks, c)
	s.sum += c.Score
}

func (s *pickStack) pop() {
	last := s.picks[len(s.picks)-1]
	s.picks = s.picks[:len(s.picks)-1]
	s.sum -= last.Score
}

func (s *pickStack) len() int { return len(s.picks) }

func (s *pickStack) last() (Candidate, bool) {
	if len(s.picks) == 0 {
		return Candidate{}, false
	}
	return s.picks[len(s.picks)-1], true
}

func (s *pickStack) hasMode(m mappool.Mode) bool {
	return slices.ContainsFunc(s.picks, func(c Candidate) bool { return c.Mode == m })
}

func (s *pickStack) distinctModes() int {
	seen := make(map[mappool.Mode]struct{}, len(s.picks))
	for _, c := range s.picks {
		seen[c.Mode] = struct{}{}
	}
	return len(seen)
}

// ── Candidate lists ─────────────────────────────────────────────────

// candidateList is a shuffled candidate source with per-branch usage marks.
type candidateList struct {
	items []Candidate
	used  []bool
	all   []int
}

func newCandidateList(items []Candidate) *candidateList {
	all := make([]int, len(items))
	for i := range all {
		all[i] = i
	}
	return &candidateList{items: items, used: make([]bool, len(items)), all: all}
}

// indicesWithMode returns the indices of candidates in mode m.
func (l *candidateList) indicesWithMode(m mappool.Mode) []int {
	var out []int
	for i, c := range l.items {
		if c.Mode == m {
			out = append(out, i)
		}
	}
	return out
}

// ── Solver ──────────────────────────────────────────────────────────

// bestList is the best complete list found so far in the whole search tree.
type bestList struct {
	picks []Candidate
	score int
	found bool
}

func (b *bestList) offer(picks []Candidate, score int) bool {
	if b.found && score >= b.score {
		return false
	}
	b.picks = slices.Clone(picks)
	b.score = score
	b.found = true
	return true
}

// solver runs the depth-first search for one request.
type solver struct {
	count           int
	modes           []mappool.Mode
	followModeOrder bool
	teams           [2]Team

	pool        *candidateList
	tiebreakers *candidateList
	commonTotal int

	picks   pickStack
	maxIter int
	stats   Stats
	log     zerolog.Logger
}

// newSolver builds and shuffles the candidate lists. req must be valid.
func newSolver(req Request, o Options) *solver {
	teams := orderTeams(req.Teams)

	r := rng.New(req.Seed)
	pool := rng.Shuffle(r, buildCandidates(teams, req.ModesIncluded, o.DefaultPool))
	tiebreakers := rng.Shuffle(r, buildTiebreakers(req, teams, o.StageCatalog))

	return &solver{
		count:           req.Count,
		modes:           req.ModesIncluded,
		followModeOrder: req.FollowModeOrder,
		teams:           teams,
		pool:            newCandidateList(pool),
		tiebreakers:     newCandidateList(tiebreakers),
		commonTotal:     countKind(pool, KindBoth),
		picks:           pickStack{picks: make([]Candidate, 0, req.Count)},
		maxIter:         o.MaxIterations,
		log:             o.Logger,
	}
}

// solve searches the whole tree unless the optimum is found or the budget runs out.
func (s *solver) solve() bestList {
	s.log.Debug().
		Int("candidates", len(s.pool.items)).
		Int("tiebreakers", len(s.tiebreakers.items)).
		Int("common", s.commonTotal).
		Bool("overlap", s.teams[0].Pool.Overlaps(s.teams[1].Pool)).
		Int("count", s.count).
		Msg("candidate pool built")

	var best bestList
	s.backtrack(&best)

	s.stats.BestScore = best.score
	if s.stats.Exhausted {
		s.log.Warn().
			Int("iterations", s.stats.Iterations).
			Bool("found", best.found).
			Msg("search budget exhausted")
	}
	return best
}

// backtrack reports whether the whole search must stop.
func (s *solver) backtrack(best *bestList) bool {
	s.stats.Iterations++
	if s.maxIter > 0 && s.stats.Iterations > s.maxIter {
		s.stats.Exhausted = true
		return true
	}

	if s.picks.len() == s.count {
		s.stats.CompleteLists++
		score := s.rate(s.picks.picks)
		if best.offer(s.picks.picks, score) {
			s.log.Debug().Int("score", score).Int("iteration", s.stats.Iterations).Msg("new best map list")
		}
		return best.score == optimalScore
	}

	list, indices := s.candidatesForDepth()
	for _, i := range indices {
		s.stats.CandidatesConsidered++
		if !s.allowed(list, i) {
			continue
		}
		list.used[i] = true
		s.picks.push(list.items[i])

		stop := s.backtrack(best)

		s.picks.pop()
		list.used[i] = false
		if stop {
			return true
		}
	}
	return false
}

// candidatesForDepth picks the list the next map is drawn from. The final map
// comes from the tiebreakers when there are any.
func (s *solver) candidatesForDepth() (*candidateList, []int) {
	if s.picks.len() == s.count-1 && len(s.tiebreakers.items) > 0 {
		if mode, ok := s.requiredMode(); ok {
			return s.tiebreakers, s.tiebreakers.indicesWithMode(mode)
		}
		return s.tiebreakers, s.tiebreakers.all
	}
	return s.pool, s.pool.all
}

// requiredMode returns the only mode the next pick may have, if it is already decided.
func (s *solver) requiredMode() (mappool.Mode, bool) {
	n := s.picks.len()
	switch {
	case len(s.modes) == 1:
		return s.modes[0], true
	case s.followModeOrder:
		return s.modes[n%len(s.modes)], true
	case s.allModesAppeared():
		return s.picks.picks[n-len(s.modes)].Mode, true
	}
	return "", false
}

func (s *solver) allModesAppeared() bool {
	return s.picks.distinctModes() == len(s.modes)
}
