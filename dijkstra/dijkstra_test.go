// Package dijkstra_test contains unit tests for the minimum-cost search.
// These tests validate input checks, the reference scenarios, metric
// selection, multigraph handling, lazy deletion, budgets, and optimality
// against brute-force enumeration on small random networks.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/dijkstra"
	"github.com/katalvlaran/airnet/records"
)

const eps = 1e-9

type leg struct {
	airline, from, to string
	dist, time        float64
}

func build(t testing.TB, codes []string, legs []leg) *core.Graph {
	t.Helper()
	aps := make([]records.Airport, len(codes))
	for i, c := range codes {
		aps[i] = records.Airport{Code: c}
	}
	rs := make([]records.Route, len(legs))
	for i, l := range legs {
		rs[i] = records.Route{Airline: l.airline, Source: l.from, Destination: l.to, Distance: l.dist, Time: l.time}
	}
	g, err := core.Build(aps, rs, nil)
	require.NoError(t, err)

	return g
}

func scenario(t testing.TB) *core.Graph {
	return build(t,
		[]string{"CPH", "LGW", "JFK", "ORD"},
		[]leg{
			{"U2", "CPH", "LGW", 1000, 120},
			{"U2", "LGW", "JFK", 5000, 420},
		},
	)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B", dijkstra.Distance)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_UnknownMetric(t *testing.T) {
	_, err := dijkstra.ShortestPath(scenario(t), "CPH", "JFK", dijkstra.Metric(7))
	assert.ErrorIs(t, err, dijkstra.ErrUnknownMetric)
}

func TestShortestPath_UnknownCodes(t *testing.T) {
	g := scenario(t)
	for _, pair := range [][2]string{{"XXX", "JFK"}, {"CPH", "XXX"}} {
		_, err := dijkstra.ShortestPath(g, pair[0], pair[1], dijkstra.Distance)
		assert.ErrorIs(t, err, dijkstra.ErrNoPath)
		assert.ErrorIs(t, err, core.ErrAirportNotFound)
	}
}

func TestShortestPath_BadMaxIterations(t *testing.T) {
	_, err := dijkstra.ShortestPath(scenario(t), "CPH", "JFK", dijkstra.Distance, dijkstra.WithMaxIterations(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxIterations)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestShortestPath_Scenario(t *testing.T) {
	g := scenario(t)

	res, err := dijkstra.ShortestPath(g, "CPH", "JFK", dijkstra.Distance)
	require.NoError(t, err)
	assert.Equal(t, []string{"CPH", "LGW", "JFK"}, res.Path)
	assert.Equal(t, 6000.0, res.Cost)
	assert.Equal(t, dijkstra.Distance, res.Metric)
	require.Len(t, res.Legs, 2)
	assert.Equal(t, "U2", res.Legs[0].Airline)

	res, err = dijkstra.ShortestPath(g, "CPH", "JFK", dijkstra.Time)
	require.NoError(t, err)
	assert.Equal(t, []string{"CPH", "LGW", "JFK"}, res.Path)
	assert.Equal(t, 540.0, res.Cost)
}

func TestShortestPath_Disconnected(t *testing.T) {
	g := scenario(t)
	_, err := dijkstra.ShortestPath(g, "CPH", "ORD", dijkstra.Distance)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.NotErrorIs(t, err, core.ErrAirportNotFound)

	// directed: no way back
	_, err = dijkstra.ShortestPath(g, "JFK", "CPH", dijkstra.Time)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_SameAirport(t *testing.T) {
	res, err := dijkstra.ShortestPath(scenario(t), "ORD", "ORD", dijkstra.Distance)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD"}, res.Path)
	assert.Empty(t, res.Legs)
	assert.Zero(t, res.Cost)
}

// ------------------------------------------------------------------------
// 3. Metric selection, all airlines, multigraph
// ------------------------------------------------------------------------

func TestShortestPath_MetricsDiverge(t *testing.T) {
	// Direct A→C is short but slow; A→B→C is long but fast.
	g := build(t, []string{"A", "B", "C"}, []leg{
		{"SK", "A", "C", 100, 600},
		{"U2", "A", "B", 80, 60},
		{"DX", "B", "C", 80, 60},
	})

	byDist, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.Distance)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, byDist.Path)
	assert.Equal(t, 100.0, byDist.Cost)

	byTime, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.Time)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, byTime.Path, "mixes airlines")
	assert.Equal(t, 120.0, byTime.Cost)
	assert.Equal(t, []string{"U2", "DX"}, []string{byTime.Legs[0].Airline, byTime.Legs[1].Airline})
}

func TestShortestPath_ParallelRoutes(t *testing.T) {
	g := build(t, []string{"A", "B"}, []leg{
		{"SK", "A", "B", 500, 70},
		{"U2", "A", "B", 500, 55},
		{"DX", "A", "B", 450, 90},
	})

	res, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.Time)
	require.NoError(t, err)
	assert.Equal(t, 55.0, res.Cost)
	assert.Equal(t, "U2", res.Legs[0].Airline)

	res, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.Distance)
	require.NoError(t, err)
	assert.Equal(t, 450.0, res.Cost)
	assert.Equal(t, "DX", res.Legs[0].Airline)
}

func TestShortestPath_ZeroWeightsAndCycles(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"}, []leg{
		{"U2", "A", "B", 0, 0},
		{"U2", "B", "A", 0, 0},
		{"U2", "B", "C", 0, 0},
		{"U2", "C", "B", 0, 0},
		{"U2", "C", "D", 3, 3},
	})
	res, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.Distance)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
}

// ------------------------------------------------------------------------
// 4. Lazy deletion and finalisation order
// ------------------------------------------------------------------------

func TestShortestPath_StaleEntriesSkipped(t *testing.T) {
	// C is first pushed at cost 10 via A→C, then improved to 3 via B.
	g := build(t, []string{"A", "B", "C", "D"}, []leg{
		{"U2", "A", "C", 10, 10},
		{"U2", "A", "B", 1, 1},
		{"U2", "B", "C", 2, 2},
		{"U2", "C", "D", 1, 1},
	})

	finalized := map[string]int{}
	var costs []float64
	res, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.Distance,
		dijkstra.WithOnFinalize(func(code string, cost float64) {
			finalized[code]++
			costs = append(costs, cost)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 4.0, res.Cost)
	for code, n := range finalized {
		assert.Equal(t, 1, n, "%s finalised more than once", code)
	}
	for i := 1; i < len(costs); i++ {
		assert.LessOrEqual(t, costs[i-1], costs[i], "finalisation order must be non-decreasing")
	}
}

func TestShortestPath_StopsAtTarget(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, []leg{
		{"U2", "A", "B", 1, 1},
		{"U2", "A", "C", 5, 5},
	})
	var seen []string
	_, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.Distance,
		dijkstra.WithOnFinalize(func(code string, _ float64) { seen = append(seen, code) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, seen, "C is never finalised")
}

func TestShortestPath_TieBreakIsStable(t *testing.T) {
	// Two equal-cost paths A→B→D and A→C→D.
	g := build(t, []string{"A", "B", "C", "D"}, []leg{
		{"U2", "A", "B", 1, 1},
		{"U2", "A", "C", 1, 1},
		{"U2", "B", "D", 1, 1},
		{"U2", "C", "D", 1, 1},
	})
	first, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.Distance)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.Distance)
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
	}
	assert.Equal(t, 2.0, first.Cost)
}

// ------------------------------------------------------------------------
// 5. Hardening
// ------------------------------------------------------------------------

func chain(t testing.TB, n int) *core.Graph {
	codes := make([]string, n)
	var legs []leg
	for i := range codes {
		codes[i] = "N" + strconv.Itoa(i)
		if i > 0 {
			legs = append(legs, leg{"U2", codes[i-1], codes[i], 1, 1})
		}
	}

	return build(t, codes, legs)
}

func TestShortestPath_SearchExhausted(t *testing.T) {
	g := chain(t, 50)
	_, err := dijkstra.ShortestPath(g, "N0", "N49", dijkstra.Distance, dijkstra.WithMaxIterations(10))
	assert.ErrorIs(t, err, dijkstra.ErrSearchExhausted)

	res, err := dijkstra.ShortestPath(g, "N0", "N49", dijkstra.Distance, dijkstra.WithMaxIterations(50))
	require.NoError(t, err)
	assert.Equal(t, 49.0, res.Cost)
	assert.Len(t, res.Path, 50)
}

func TestShortestPath_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.ShortestPath(chain(t, 5), "N0", "N4", dijkstra.Time, dijkstra.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestShortestPath_LongPathReconstruction(t *testing.T) {
	const n = 20000
	res, err := dijkstra.ShortestPath(chain(t, n), "N0", "N"+strconv.Itoa(n-1), dijkstra.Distance)
	require.NoError(t, err)
	assert.Len(t, res.Path, n)
	assert.Equal(t, "N0", res.Path[0])
	assert.Equal(t, float64(n-1), res.Cost)
}

// ------------------------------------------------------------------------
// 6. Single-source tree
// ------------------------------------------------------------------------

func TestDistances(t *testing.T) {
	g := scenario(t)
	tree, err := dijkstra.Distances(g, "CPH", dijkstra.Time)
	require.NoError(t, err)

	assert.Equal(t, 0.0, tree.Dist["CPH"])
	assert.Equal(t, 120.0, tree.Dist["LGW"])
	assert.Equal(t, 540.0, tree.Dist["JFK"])
	assert.True(t, math.IsInf(tree.Dist["ORD"], 1))
	_, hasPrev := tree.Prev["CPH"]
	assert.False(t, hasPrev)

	res, err := tree.PathTo("JFK")
	require.NoError(t, err)
	assert.Equal(t, []string{"CPH", "LGW", "JFK"}, res.Path)

	_, err = tree.PathTo("ORD")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, err = tree.PathTo("XXX")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestParseMetric(t *testing.T) {
	for in, want := range map[string]dijkstra.Metric{
		"distance": dijkstra.Distance, "Dist": dijkstra.Distance, " TIME ": dijkstra.Time,
	} {
		got, err := dijkstra.ParseMetric(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := dijkstra.ParseMetric("fuel")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownMetric)

	assert.Equal(t, "distance", dijkstra.Distance.String())
	assert.Equal(t, "time", dijkstra.Time.String())
	assert.Equal(t, "Metric(9)", dijkstra.Metric(9).String())
}

// ------------------------------------------------------------------------
// 7. Properties on random small networks
// ------------------------------------------------------------------------

// bruteForce returns the minimum cost over all simple paths from s to d,
// or +Inf if none exists.
func bruteForce(g *core.Graph, s, d string, m dijkstra.Metric) float64 {
	best := math.Inf(1)
	onPath := map[string]bool{s: true}
	var walk func(u string, acc float64)
	walk = func(u string, acc float64) {
		if u == d {
			best = math.Min(best, acc)
			return
		}
		for _, e := range g.Outgoing(u) {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			walk(e.To, acc+m.Weight(e))
			onPath[e.To] = false
		}
	}
	walk(s, 0)

	return best
}

func randomNetwork(t testing.TB, rng *rand.Rand) *core.Graph {
	n := 2 + rng.Intn(9) // ≤ 10 airports
	codes := make([]string, n)
	for i := range codes {
		codes[i] = "P" + strconv.Itoa(i)
	}
	airlines := []string{"U2", "SK", "DX"}
	var legs []leg
	for k := rng.Intn(3 * n); k > 0; k-- {
		legs = append(legs, leg{
			airline: airlines[rng.Intn(len(airlines))],
			from:    codes[rng.Intn(n)],
			to:      codes[rng.Intn(n)],
			dist:    float64(rng.Intn(1000)),
			time:    float64(rng.Intn(300)) + rng.Float64(),
		})
	}

	return build(t, codes, legs)
}

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		g := randomNetwork(t, rng)
		codes := g.Codes()
		for _, m := range []dijkstra.Metric{dijkstra.Distance, dijkstra.Time} {
			for _, s := range codes {
				for _, d := range codes {
					want := bruteForce(g, s, d, m)
					res, err := dijkstra.ShortestPath(g, s, d, m)
					if math.IsInf(want, 1) {
						require.ErrorIs(t, err, dijkstra.ErrNoPath, "%s→%s", s, d)
						continue
					}
					require.NoError(t, err, "%s→%s", s, d)
					assert.InDelta(t, want, res.Cost, eps, "%s→%s by %s", s, d, m)
					assert.GreaterOrEqual(t, res.Cost, 0.0)

					// round trip: endpoints and leg sum
					assert.Equal(t, s, res.Path[0])
					assert.Equal(t, d, res.Path[len(res.Path)-1])
					sum := 0.0
					for i, e := range res.Legs {
						assert.Equal(t, res.Path[i], e.From)
						assert.Equal(t, res.Path[i+1], e.To)
						sum += m.Weight(e)
					}
					assert.InDelta(t, res.Cost, sum, eps)
				}
			}
		}
	}
}
