package maplist

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maplist-generator/internal/mappool"
)

var seeds = []string{"abc", "1-2", "tournament-42-match-7"}

func TestGenerateScenarios(t *testing.T) {
	sz := []mappool.Mode{mappool.ModeSplatZones}

	tests := []struct {
		name string
		req  func(t *testing.T) Request
	}{
		{"disjoint pools with tiebreakers", func(t *testing.T) Request { return rankedRequest(t, 5, tiebreakerPool) }},
		{"best of 3", func(t *testing.T) Request { return rankedRequest(t, 3, tiebreakerPool) }},
		{"best of 7", func(t *testing.T) Request { return rankedRequest(t, 7, tiebreakerPool) }},
		{"follow mode order", func(t *testing.T) Request {
			req := rankedRequest(t, 7, tiebreakerPool)
			req.FollowModeOrder = true
			return req
		}},
		{"no submissions", func(t *testing.T) Request {
			req := rankedRequest(t, 7, "")
			req.Teams[0].Pool = mappool.Pool{}
			req.Teams[1].Pool = mappool.Pool{}
			return req
		}},
		{"identical pools", func(t *testing.T) Request {
			req := rankedRequest(t, 7, tiebreakerPool)
			req.Teams[1].Pool = pool(t, firstPool)
			return req
		}},
		{"one mode fallback tiebreaker", func(t *testing.T) Request {
			return Request{
				Count:         5,
				Teams:         [2]Team{{ID: 1, Pool: pool(t, "SZ1,SZ2")}, {ID: 2, Pool: pool(t, "SZ3,SZ4")}},
				ModesIncluded: sz,
			}
		}},
		{"one mode defaults", func(t *testing.T) Request {
			return Request{Count: 3, Teams: [2]Team{{ID: 1}, {ID: 2}}, ModesIncluded: sz}
		}},
		{"overlapping pools without tiebreakers", func(t *testing.T) Request {
			req := rankedRequest(t, 5, "")
			req.Teams[0].Pool = pool(t, "SZ1,TC3,RM5,CB7,SZ2")
			req.Teams[1].Pool = pool(t, "SZ1,TC3,RM15,CB18,SZ11")
			return req
		}},
		{"one team empty", func(t *testing.T) Request {
			req := rankedRequest(t, 5, tiebreakerPool)
			req.Teams[1].Pool = mappool.Pool{}
			return req
		}},
		{"one team empty without tiebreakers", func(t *testing.T) Request {
			req := rankedRequest(t, 5, "")
			req.Teams[1].Pool = mappool.Pool{}
			return req
		}},
	}

	for _, tt := range tests {
		for _, seed := range seeds {
			t.Run(fmt.Sprintf("%s/%s", tt.name, seed), func(t *testing.T) {
				t.Parallel()
				req := tt.req(t)
				req.Seed = seed

				ml, stats, err := GenerateWithStats(req)
				require.NoError(t, err)
				verifyMaplist(t, req, ml)
				assert.Equal(t, optimalScore, stats.BestScore)
				assert.False(t, stats.Exhausted)
				assert.Positive(t, stats.CompleteLists)
			})
		}
	}
}

func TestGenerateGolden(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) Request
		want string
	}{
		{
			name: "disjoint pools",
			req:  func(t *testing.T) Request { return rankedRequest(t, 5, tiebreakerPool) },
			want: "TC3:1 RM16:2 SZ1:1 CB19:2 TC21:TIEBREAKER",
		},
		{
			name: "identical pools",
			req: func(t *testing.T) Request {
				req := rankedRequest(t, 7, tiebreakerPool)
				req.Teams[1].Pool = pool(t, firstPool)
				return req
			},
			want: "SZ1:BOTH RM5:BOTH TC3:BOTH CB8:BOTH SZ2:BOTH RM6:BOTH TC21:TIEBREAKER",
		},
		{
			name: "no submissions",
			req: func(t *testing.T) Request {
				req := rankedRequest(t, 7, "")
				req.Teams[0].Pool = mappool.Pool{}
				req.Teams[1].Pool = mappool.Pool{}
				return req
			},
			want: "RM0:DEFAULT SZ6:DEFAULT TC10:DEFAULT CB14:DEFAULT RM9:DEFAULT SZ17:DEFAULT TC1:DEFAULT",
		},
		{
			name: "one mode fallback tiebreaker",
			req: func(t *testing.T) Request {
				return Request{
					Count:         3,
					Teams:         [2]Team{{ID: 1, Pool: pool(t, "SZ1,SZ2")}, {ID: 2, Pool: pool(t, "SZ3,SZ4")}},
					ModesIncluded: []mappool.Mode{mappool.ModeSplatZones},
					Seed:          "abc",
				}
			},
			want: "SZ4:2 SZ1:1 SZ23:TIEBREAKER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ml, err := Generate(tt.req(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(ml))
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	req := rankedRequest(t, 7, tiebreakerPool)
	first, err := Generate(req)
	require.NoError(t, err)

	for range 5 {
		again, err := Generate(req)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestGenerateTeamOrderIndependent(t *testing.T) {
	for _, seed := range seeds {
		t.Run(seed, func(t *testing.T) {
			t.Parallel()
			req := rankedRequest(t, 5, tiebreakerPool)
			req.Seed = seed
			swapped := req
			swapped.Teams[0], swapped.Teams[1] = req.Teams[1], req.Teams[0]

			a, err := Generate(req)
			require.NoError(t, err)
			b, err := Generate(swapped)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestGenerateSeedChangesList(t *testing.T) {
	distinct := map[string]bool{}
	for _, seed := range seeds {
		req := rankedRequest(t, 5, tiebreakerPool)
		req.Seed = seed
		ml, err := Generate(req)
		require.NoError(t, err)
		distinct[render(ml)] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestGenerateFairAcrossSeeds(t *testing.T) {
	for i := range 50 {
		req := rankedRequest(t, 7, tiebreakerPool)
		req.Seed = fmt.Sprintf("seed-%d", i)
		ml, err := Generate(req)
		require.NoError(t, err, req.Seed)
		verifyMaplist(t, req, ml)
	}
}

func TestGenerateUnsatisfiable(t *testing.T) {
	// disjoint pools, no common map and no tiebreaker: a best of 3 cannot end balanced
	req := rankedRequest(t, 3, "")

	ml, stats, err := GenerateWithStats(req)
	require.ErrorIs(t, err, ErrNoMaplist)
	assert.Nil(t, ml)
	assert.False(t, stats.Exhausted)
	assert.Zero(t, stats.CompleteLists)
	assert.Positive(t, stats.Iterations)
}

func TestGenerateBudgetExhausted(t *testing.T) {
	req := rankedRequest(t, 3, "")

	_, stats, err := GenerateWithStats(req, WithMaxIterations(10))
	require.ErrorIs(t, err, ErrNoMaplist)
	assert.True(t, stats.Exhausted)
	assert.Equal(t, 11, stats.Iterations)
	assert.Contains(t, err.Error(), "budget")
}

func TestGenerateBudgetKeepsBestList(t *testing.T) {
	// three SZ and two TC maps for five games: two stage repeats are unavoidable,
	// so no list reaches the optimum and the whole tree is searched
	shared := "SZ1,SZ2,SZ3,TC1,TC2"
	req := Request{
		Count:         5,
		Teams:         [2]Team{{ID: 1, Pool: pool(t, shared)}, {ID: 2, Pool: pool(t, shared)}},
		ModesIncluded: []mappool.Mode{mappool.ModeSplatZones, mappool.ModeTowerCtrl},
		Seed:          "abc",
	}

	full, stats, err := GenerateWithStats(req)
	require.NoError(t, err)
	assert.False(t, stats.Exhausted)
	assert.Equal(t, 2, stats.BestScore)
	assert.Equal(t, 26, stats.Iterations)

	cut, stats, err := GenerateWithStats(req, WithMaxIterations(24))
	require.NoError(t, err)
	assert.True(t, stats.Exhausted)
	assert.Equal(t, 2, stats.BestScore)
	assert.Equal(t, full, cut)
	assert.Equal(t, "SZ1:BOTH TC2:BOTH SZ3:BOTH TC1:BOTH SZ2:BOTH", render(cut))
}

func TestGenerateInvalidRequest(t *testing.T) {
	req := rankedRequest(t, 4, tiebreakerPool)
	_, err := Generate(req)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGenerateCustomDefaultPool(t *testing.T) {
	req := Request{
		Count:         3,
		Teams:         [2]Team{{ID: 1}, {ID: 2}},
		ModesIncluded: []mappool.Mode{mappool.ModeSplatZones, mappool.ModeTowerCtrl, mappool.ModeRainmaker},
		Seed:          "abc",
	}
	custom := pool(t, "SZ3,TC4,RM5,CB6")

	ml, err := Generate(req, WithDefaultPool(custom))
	require.NoError(t, err)
	require.Len(t, ml, 3)
	for _, p := range ml {
		assert.True(t, custom.Contains(p.Pair), p.Pair.String())
		assert.Equal(t, SourceDefault, p.Source)
	}
}

func TestGenerateAll(t *testing.T) {
	var reqs []Request
	for _, seed := range seeds {
		req := rankedRequest(t, 5, tiebreakerPool)
		req.Seed = seed
		reqs = append(reqs, req)
	}

	got, err := GenerateAll(context.Background(), reqs, WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, got, len(reqs))
	for i, req := range reqs {
		want, err := Generate(req)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "request %d", i)
	}
}

func TestGenerateAllFailure(t *testing.T) {
	reqs := []Request{
		rankedRequest(t, 5, tiebreakerPool),
		rankedRequest(t, 3, ""),
	}

	got, err := GenerateAll(context.Background(), reqs)
	require.ErrorIs(t, err, ErrNoMaplist)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "request 1")
}

func TestGenerateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateAll(ctx, []Request{rankedRequest(t, 5, tiebreakerPool)})
	require.ErrorIs(t, err, context.Canceled)
}
