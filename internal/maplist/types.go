package maplist

import (
	"strconv"
	"time"

	"github.com/rotisserie/eris"

	"maplist-generator/internal/mappool"
)

// ── Source ──────────────────────────────────────────────────────────

// SourceKind tells where a pick came from.
type SourceKind uint8

const (
	sourceNone SourceKind = iota
	KindTeam
	KindBoth
	KindDefault
	KindTiebreaker
)

// Source is the provenance of a pick: one team, both teams, the organizer's
// default pool, or the tiebreaker pool. TeamID is only set for KindTeam.
type Source struct {
	Kind   SourceKind
	TeamID int
}

var (
	SourceBoth       = Source{Kind: KindBoth}
	SourceDefault    = Source{Kind: KindDefault}
	SourceTiebreaker = Source{Kind: KindTiebreaker}
)

// SourceTeam returns the source of a pick only the given team submitted.
func SourceTeam(id int) Source {
	return Source{Kind: KindTeam, TeamID: id}
}

// ParseSource is the inverse of Source.String.
func ParseSource(s string) (Source, error) {
	switch s {
	case "BOTH":
		return SourceBoth, nil
	case "DEFAULT":
		return SourceDefault, nil
	case "TIEBREAKER":
		return SourceTiebreaker, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return Source{}, eris.Errorf("invalid source %q", s)
	}
	return SourceTeam(id), nil
}

func (s Source) String() string {
	switch s.Kind {
	case KindTeam:
		return strconv.Itoa(s.TeamID)
	case KindBoth:
		return "BOTH"
	case KindDefault:
		return "DEFAULT"
	case KindTiebreaker:
		return "TIEBREAKER"
	case sourceNone:
	}
	return "NONE"
}

func (s Source) MarshalText() ([]byte, error) {
	if s.Kind == sourceNone {
		return nil, eris.New("cannot marshal empty source")
	}
	return []byte(s.String()), nil
}

func (s *Source) UnmarshalText(b []byte) error {
	parsed, err := ParseSource(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ── Request ─────────────────────────────────────────────────────────

// Team is one side's map pool submission.
type Team struct {
	ID   int
	Pool mappool.Pool
}

// Request describes one set to generate maps for.
type Request struct {
	// Count is the best-of count of the set.
	Count int `validate:"oneof=3 5 7"`
	// Teams may be given in either order; the result does not depend on it.
	Teams [2]Team `validate:"-"`
	// TiebreakerPool, when not empty, supplies the final map of the set.
	TiebreakerPool mappool.Pool `validate:"-"`
	// ModesIncluded is the organizer's mode rotation.
	ModesIncluded []mappool.Mode `validate:"min=1,unique,dive,mode"`
	// FollowModeOrder forces picks to cycle through ModesIncluded in order.
	FollowModeOrder bool
	Seed            string
}

// ── Candidates and results ──────────────────────────────────────────

// Candidate is a pair the solver may pick. Score is +1 when only the first
// team (lower id) submitted it, -1 when only the second did, 0 otherwise.
type Candidate struct {
	mappool.Pair
	Score  int
	Source Source
}

// Pick is one map of the generated list.
type Pick struct {
	mappool.Pair
	Source Source `json:"source"`
}

// Maplist is the ordered list of maps of a set.
type Maplist []Pick

// Pairs strips the sources.
func (m Maplist) Pairs() []mappool.Pair {
	out := make([]mappool.Pair, len(m))
	for i, p := range m {
		out[i] = p.Pair
	}
	return out
}

// Stats holds counters of one generation run.
type Stats struct {
	// Iterations is the number of search nodes visited.
	Iterations int
	// CandidatesConsidered is the number of candidates checked against the rules.
	CandidatesConsidered int
	// CompleteLists is the number of full-length lists that were scored.
	CompleteLists int
	// BestScore is the score of the returned list (0 is optimal).
	BestScore int
	// Exhausted is set when the iteration budget ran out before the search finished.
	Exhausted bool
	Duration  time.Duration
}
