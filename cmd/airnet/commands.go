package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/airnet"
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/dijkstra"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print network size and load/build timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := a.network(cmd.Context())
			if err != nil {
				return err
			}
			s := net.Graph.Stats()
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, a.st.Title.Render("Network"))
			rows := []struct {
				label string
				value string
			}{
				{"airports", fmt.Sprint(s.Airports)},
				{"routes", fmt.Sprint(s.Routes)},
				{"airlines", fmt.Sprintf("%d (%d in use)", s.Airlines, s.AirlinesInUse)},
				{"aircraft", fmt.Sprint(len(net.Data.Aircraft))},
				{"terminal", fmt.Sprint(s.TerminalAirports)},
				{"duplicates", fmt.Sprint(s.Duplicates)},
				{"load", a.loadTime.Round(time.Microsecond).String()},
				{"build", a.buildTime.Round(time.Microsecond).String()},
			}
			for _, r := range rows {
				fmt.Fprintf(w, "  %s %s\n", a.st.Label.Render(fmt.Sprintf("%-11s", r.label)), a.st.Value.Render(r.value))
			}
			if dups := net.Graph.Duplicates(); len(dups) > 0 {
				fmt.Fprintf(w, "  %s %s\n", a.st.Warning.Render("duplicate codes:"), strings.Join(dups, ", "))
			}

			return nil
		},
	}
}

func (a *app) connectedCmd() *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "connected START END AIRLINE",
		Short: "Report whether END is reachable from START on one airline's routes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := parseOrders(order)
			if err != nil {
				return err
			}
			net, err := a.network(cmd.Context())
			if err != nil {
				return err
			}
			start, end, airline := args[0], args[1], args[2]
			g := net.Graph

			a.checkAirports(g, start, end)
			if _, ok := g.Airline(airline); !ok {
				log.Warnf("airline %q is not in the loaded airline list", airline)
			}

			w := cmd.OutOrStdout()
			for _, o := range orders {
				var visited int
				began := time.Now()
				ok, err := airnet.IsConnected(g, start, end, airline, o,
					airnet.WithContext(cmd.Context()),
					airnet.WithOnVisit(func(r core.Route) error {
						visited++
						log.Debugf("%s: visit route %d %s→%s", o, r.ID, r.From, r.To)
						return nil
					}),
				)
				if err != nil {
					return err
				}
				answer := a.st.No.Render("not connected")
				if ok {
					answer = a.st.Yes.Render("connected")
				}
				fmt.Fprintf(w, "%s  %s → %s on %s: %s %s\n",
					a.st.Label.Render(o.String()), start, end, airline, answer,
					a.st.Muted.Render(fmt.Sprintf("(%d routes, %s)", visited, time.Since(began).Round(time.Microsecond))))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&order, "order", "both", "dfs, bfs or both")

	return cmd
}

func parseOrders(s string) ([]airnet.Order, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []airnet.Order{airnet.DepthFirst, airnet.BreadthFirst}, nil
	}
	o, err := airnet.ParseOrder(s)
	if err != nil {
		return nil, err
	}

	return []airnet.Order{o}, nil
}

func (a *app) shortestCmd() *cobra.Command {
	var metric string
	cmd := &cobra.Command{
		Use:   "shortest START END",
		Short: "Find the minimum distance or time itinerary over all airlines",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := parseMetrics(metric)
			if err != nil {
				return err
			}
			net, err := a.network(cmd.Context())
			if err != nil {
				return err
			}
			start, end := args[0], args[1]
			a.checkAirports(net.Graph, start, end)

			w := cmd.OutOrStdout()
			for _, m := range metrics {
				opts := append(a.cfg.SearchOptions(), dijkstra.WithContext(cmd.Context()))
				began := time.Now()
				res, err := airnet.ShortestPath(net.Graph, start, end, m, opts...)
				took := a.st.Muted.Render(fmt.Sprintf("(%s)", time.Since(began).Round(time.Microsecond)))
				if errors.Is(err, dijkstra.ErrNoPath) {
					fmt.Fprintf(w, "%s  %s → %s: %s %s\n",
						a.st.Label.Render(fmt.Sprintf("%-8s", m)), start, end, a.st.No.Render("no path"), took)
					continue
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(w, "%s  %s  %s %s\n",
					a.st.Label.Render(fmt.Sprintf("%-8s", m)),
					strings.Join(res.Path, " → "),
					a.st.Value.Render(fmt.Sprintf("%g", res.Cost)), took)
				for _, leg := range res.Legs {
					fmt.Fprintf(w, "          %s %s→%s %g\n",
						a.st.Muted.Render(leg.Airline), leg.From, leg.To, m.Weight(leg))
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&metric, "metric", "both", "distance, time or both")

	return cmd
}

func parseMetrics(s string) ([]dijkstra.Metric, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []dijkstra.Metric{dijkstra.Distance, dijkstra.Time}, nil
	}
	m, err := dijkstra.ParseMetric(s)
	if err != nil {
		return nil, err
	}

	return []dijkstra.Metric{m}, nil
}

func (a *app) airportsCmd() *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "airports",
		Short: "List loaded airports, optionally filtered by country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := a.network(cmd.Context())
			if err != nil {
				return err
			}
			g := net.Graph
			w := cmd.OutOrStdout()

			var n int
			for _, code := range g.Codes() {
				ap, err := g.Airport(code)
				if err != nil {
					return err
				}
				if country != "" && !strings.EqualFold(ap.Country, country) {
					continue
				}
				n++
				fmt.Fprintf(w, "%s  %-40s %s, %s %s\n",
					a.st.Value.Render(fmt.Sprintf("%-4s", ap.Code)), ap.Name, ap.City, ap.Country,
					a.st.Muted.Render(fmt.Sprintf("(%d routes)", ap.RouteCount())))
			}
			fmt.Fprintln(w, a.st.Muted.Render(fmt.Sprintf("%d airports", n)))

			return nil
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "only list airports in this country")

	return cmd
}
