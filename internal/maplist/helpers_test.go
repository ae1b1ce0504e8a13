package maplist

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"maplist-generator/internal/mappool"
)

// pool parses "SZ1,TC3" into a pool.
func pool(t *testing.T, s string) mappool.Pool {
	t.Helper()
	return mappool.New(pairs(t, s)...)
}

func pairs(t *testing.T, s string) []mappool.Pair {
	t.Helper()
	var out []mappool.Pair
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			continue
		}
		mode, err := mappool.ParseMode(part[:2])
		require.NoError(t, err)
		id, err := strconv.Atoi(part[2:])
		require.NoError(t, err)
		out = append(out, mappool.Pair{Mode: mode, StageID: mappool.StageID(id)})
	}
	return out
}

const (
	firstPool      = "SZ1,SZ2,TC3,TC4,RM5,RM6,CB7,CB8"
	secondPool     = "SZ11,SZ12,TC13,TC14,RM15,RM16,CB18,CB19"
	tiebreakerPool = "SZ20,TC21,RM22,CB23"
)

// rankedRequest is two teams with disjoint pools of two maps per ranked mode.
func rankedRequest(t *testing.T, count int, tiebreakers string) Request {
	t.Helper()
	return Request{
		Count: count,
		Teams: [2]Team{
			{ID: 1, Pool: pool(t, firstPool)},
			{ID: 2, Pool: pool(t, secondPool)},
		},
		TiebreakerPool: pool(t, tiebreakers),
		ModesIncluded:  mappool.RankedModes,
		Seed:           "abc",
	}
}

// render formats a list compactly for golden comparisons, e.g. "TC3:1".
func render(ml Maplist) string {
	parts := make([]string, len(ml))
	for i, p := range ml {
		parts[i] = fmt.Sprintf("%s%d:%s", p.Mode, p.StageID, p.Source)
	}
	return strings.Join(parts, " ")
}

// verifyMaplist runs the invariant checklist against a generated list.
func verifyMaplist(t *testing.T, req Request, ml Maplist) {
	t.Helper()

	teams := orderTeams(req.Teams)
	first, second := teams[0], teams[1]

	// 1. cardinality
	require.Len(t, ml, req.Count)

	modes := req.ModesIncluded
	seenModes := map[mappool.Mode]bool{}
	fairness := 0
	for i, p := range ml {
		prefix := fmt.Sprintf("pick %d (%s)", i, p.Pair)

		// 2. only included modes
		require.Contains(t, modes, p.Mode, prefix)

		// 3. no immediate stage repeat
		if i > 0 {
			require.NotEqual(t, ml[i-1].StageID, p.StageID, "%s: same stage as previous", prefix)
		}

		// 4. every mode once before any repeat, then a fixed rotation
		if len(modes) > 1 {
			switch {
			case req.FollowModeOrder:
				require.Equal(t, modes[i%len(modes)], p.Mode, "%s: mode order", prefix)
			case i < len(modes):
				require.False(t, seenModes[p.Mode], "%s: early mode repeat", prefix)
			default:
				require.Equal(t, ml[i-len(modes)].Mode, p.Mode, "%s: mode rotation", prefix)
			}
		}
		seenModes[p.Mode] = true

		// 5. source matches the submissions
		switch p.Source.Kind {
		case KindTeam:
			own, other := first, second
			if p.Source.TeamID == second.ID {
				own, other = second, first
			}
			require.Contains(t, []int{first.ID, second.ID}, p.Source.TeamID, prefix)
			require.True(t, own.Pool.Contains(p.Pair), "%s: not in team %d pool", prefix, own.ID)
			require.False(t, other.Pool.Contains(p.Pair), "%s: also in team %d pool", prefix, other.ID)
			if !first.Pool.IsEmpty() && !second.Pool.IsEmpty() {
				if own.ID == first.ID {
					fairness++
				} else {
					fairness--
				}
			}
		case KindBoth:
			require.True(t, first.Pool.Contains(p.Pair) && second.Pool.Contains(p.Pair), "%s: not in both pools", prefix)
		case KindDefault:
			require.True(t, first.Pool.IsEmpty() && second.Pool.IsEmpty(), "%s: default map with submissions", prefix)
		case KindTiebreaker:
			require.Equal(t, req.Count-1, i, "%s: tiebreaker before the final map", prefix)
			if !req.TiebreakerPool.IsEmpty() {
				require.True(t, req.TiebreakerPool.Contains(p.Pair), "%s: not in tiebreaker pool", prefix)
			} else {
				require.False(t, first.Pool.Contains(p.Pair) || second.Pool.Contains(p.Pair), "%s: fallback tiebreaker was picked by a team", prefix)
			}
		default:
			t.Fatalf("%s: unexpected source %v", prefix, p.Source)
		}

		// 6. a team never supplies two maps in a row
		if i > 0 && p.Source.Kind == KindTeam && ml[i-1].Source == p.Source && !first.Pool.IsEmpty() && !second.Pool.IsEmpty() {
			t.Fatalf("%s: second pick in a row by team %d", prefix, p.Source.TeamID)
		}
	}

	// 7. balanced
	require.Zero(t, fairness, "picks per team differ")

	// 8. tiebreaker decides the set
	if !req.TiebreakerPool.IsEmpty() {
		require.Equal(t, KindTiebreaker, ml[len(ml)-1].Source.Kind, "final map is not a tiebreaker")
	}
}
