// Package dijkstra_test provides runnable examples for the minimum-cost search.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/dijkstra"
	"github.com/katalvlaran/airnet/records"
)

// ExampleShortestPath prices CPH → JFK by distance and by time.
func ExampleShortestPath() {
	// 1) Three airports, two easyJet hops.
	g, _ := core.Build(
		[]records.Airport{{Code: "CPH"}, {Code: "LGW"}, {Code: "JFK"}},
		[]records.Route{
			{Airline: "U2", Source: "CPH", Destination: "LGW", Distance: 1000, Time: 120},
			{Airline: "U2", Source: "LGW", Destination: "JFK", Distance: 5000, Time: 420},
		},
		nil,
	)

	// 2) One query per metric.
	for _, m := range []dijkstra.Metric{dijkstra.Distance, dijkstra.Time} {
		res, err := dijkstra.ShortestPath(g, "CPH", "JFK", m)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %v cost=%.0f\n", m, res.Path, res.Cost)
	}
	// Output:
	// distance: [CPH LGW JFK] cost=6000
	// time: [CPH LGW JFK] cost=540
}

// ExampleDistances builds the single-source tree and reads one path from it.
func ExampleDistances() {
	g, _ := core.Build(
		[]records.Airport{{Code: "A"}, {Code: "B"}, {Code: "C"}, {Code: "Z"}},
		[]records.Route{
			{Airline: "SK", Source: "A", Destination: "C", Distance: 9},
			{Airline: "U2", Source: "A", Destination: "B", Distance: 2},
			{Airline: "DX", Source: "B", Destination: "C", Distance: 3},
		},
		nil,
	)

	tree, err := dijkstra.Distances(g, "A", dijkstra.Distance)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("B:", tree.Dist["B"], "C:", tree.Dist["C"], "Z:", tree.Dist["Z"])

	res, _ := tree.PathTo("C")
	for _, leg := range res.Legs {
		fmt.Printf("%s %s→%s\n", leg.Airline, leg.From, leg.To)
	}
	// Output:
	// B: 2 C: 5 Z: +Inf
	// U2 A→B
	// DX B→C
}
