package main

import (
	"slices"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"maplist-generator/internal/maplist"
	"maplist-generator/internal/mappool"
)

var errUnknownMatch = eris.New("match not found")

// MatchResult holds the generated maps of one match.
type MatchResult struct {
	MatchID int             `json:"matchId"`
	Round   string          `json:"round,omitempty"`
	Seed    string          `json:"seed"`
	Maps    maplist.Maplist `json:"maps"`
	TimeMs  int64           `json:"timeMs"`
}

// TeamEntry is a registered team and its map pool submission.
type TeamEntry struct {
	ID      int
	Name    string
	MapPool []mappool.Pair
}

// Tournament is the organizer's settings plus the registered teams.
type Tournament struct {
	ID              int
	Name            string
	ModesIncluded   []mappool.Mode
	FollowModeOrder bool
	TiebreakerMaps  []mappool.Pair
	Teams           []TeamEntry
}

// Match is one set between two registered teams.
type Match struct {
	ID          int
	Round       string
	BestOf      int
	OpponentOne int
	OpponentTwo int
}

// InputData is the root structure of a tournament export.
type InputData struct {
	Tournament Tournament
	Matches    []Match
}

// FindMatch returns the match with the given id, or nil if not found.
func FindMatch(data *InputData, id int) *Match {
	for i := range data.Matches {
		if data.Matches[i].ID == id {
			return &data.Matches[i]
		}
	}
	return nil
}

// FindTeam returns the team with the given id, or nil if not registered.
func (d *InputData) FindTeam(id int) *TeamEntry {
	for i := range d.Tournament.Teams {
		if d.Tournament.Teams[i].ID == id {
			return &d.Tournament.Teams[i]
		}
	}
	return nil
}

// SeedFor returns the seed of a match: "<tournamentId>-<matchId>" unless
// overridden.
func (d *InputData) SeedFor(m *Match, override string) string {
	if override != "" {
		return override
	}
	return strconv.Itoa(d.Tournament.ID) + "-" + strconv.Itoa(m.ID)
}

// ToRequest builds the generation request of a match.
func (d *InputData) ToRequest(m *Match, seed string) (maplist.Request, error) {
	var teams [2]maplist.Team
	for i, id := range [2]int{m.OpponentOne, m.OpponentTwo} {
		team := d.FindTeam(id)
		if team == nil {
			return maplist.Request{}, eris.Wrapf(maplist.ErrInvalidRequest, "match %d: team %d is not registered", m.ID, id)
		}
		teams[i] = maplist.Team{ID: team.ID, Pool: mappool.New(team.MapPool...)}
	}

	return maplist.Request{
		Count:           m.BestOf,
		Teams:           teams,
		TiebreakerPool:  mappool.New(d.Tournament.TiebreakerMaps...),
		ModesIncluded:   slices.Clone(d.Tournament.ModesIncluded),
		FollowModeOrder: d.Tournament.FollowModeOrder,
		Seed:            seed,
	}, nil
}

// runMatch generates the maps of a single match.
func runMatch(data *InputData, matchID int, seed string, opts ...maplist.Option) (MatchResult, error) {
	m := FindMatch(data, matchID)
	if m == nil {
		return MatchResult{}, eris.Wrapf(errUnknownMatch, "match %d", matchID)
	}
	seed = data.SeedFor(m, seed)
	req, err := data.ToRequest(m, seed)
	if err != nil {
		return MatchResult{}, err
	}

	start := time.Now()
	ml, err := maplist.Generate(req, opts...)
	if err != nil {
		return MatchResult{}, eris.Wrapf(err, "match %d", m.ID)
	}
	return MatchResult{
		MatchID: m.ID,
		Round:   m.Round,
		Seed:    seed,
		Maps:    ml,
		TimeMs:  time.Since(start).Milliseconds(),
	}, nil
}

// requestsFor builds one request per match. A seed override is suffixed with
// the match id so every match still gets its own list.
func requestsFor(data *InputData, override string) ([]maplist.Request, error) {
	reqs := make([]maplist.Request, 0, len(data.Matches))
	for i := range data.Matches {
		m := &data.Matches[i]
		seed := data.SeedFor(m, "")
		if override != "" {
			seed = override + "-" + strconv.Itoa(m.ID)
		}
		req, err := data.ToRequest(m, seed)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func logLoaded(log zerolog.Logger, data *InputData) {
	log.Info().
		Int("tournament", data.Tournament.ID).
		Int("teams", len(data.Tournament.Teams)).
		Int("matches", len(data.Matches)).
		Msg("tournament loaded")
}
