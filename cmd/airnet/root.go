package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/airnet"
	"github.com/katalvlaran/airnet/config"
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/records"
)

// app carries flag values, the merged configuration and the loaded network
// across one command invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	dataDir    string
	logLevel   string

	cfg config.Config
	st  styles

	net       *airnet.Network
	loadTime  time.Duration
	buildTime time.Duration
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "airnet",
		Short: "Query a flight network loaded from airline, airport and route files",
		Long: `airnet builds a directed multigraph of airports and airline routes from
semicolon-delimited data files, then answers airline-restricted reachability
and minimum distance or time queries against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.dataDir, "data-dir", "", "directory holding the data files (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn, error or off (overrides config)")

	root.AddCommand(
		a.statsCmd(),
		a.connectedCmd(),
		a.shortestCmd(),
		a.airportsCmd(),
	)

	return root
}

// setup merges .env, the config file, the environment and the flags, then
// configures the logger and the output styles.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(a.logLevel))
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log.SetOutput(a.errOut)
	log.SetHeader("${time_rfc3339} ${level}")
	log.SetLevel(cfg.Level())
	a.st = newStyles(isTerminal(a.out))

	return nil
}

// network loads and builds the graph once per invocation.
func (a *app) network(ctx context.Context) (*airnet.Network, error) {
	if a.net != nil {
		return a.net, nil
	}

	// 1) Load
	start := time.Now()
	ds, err := records.Load(ctx, a.cfg.Paths())
	if err != nil {
		return nil, err
	}
	a.loadTime = time.Since(start)
	log.Infof("loaded %d airports, %d routes, %d airlines, %d aircraft from %s in %s",
		len(ds.Airports), len(ds.Routes), len(ds.Airlines), len(ds.Aircraft), a.cfg.DataDir, a.loadTime)

	// 2) Build
	opts := append(a.cfg.BuildOptions(), core.WithOnDuplicate(func(code string, index int) {
		log.Warnf("duplicate airport %q at record %d overwrites the earlier entry", code, index)
	}))
	start = time.Now()
	g, err := airnet.BuildNetwork(ds.Airports, ds.Routes, ds.Airlines, opts...)
	if err != nil {
		return nil, fmt.Errorf("build network: %w", err)
	}
	a.buildTime = time.Since(start)
	log.Infof("built network with %d airports and %d routes in %s",
		airnet.VertexCount(g), airnet.EdgeCount(g), a.buildTime)

	a.net = &airnet.Network{Graph: g, Data: ds}

	return a.net, nil
}

// checkAirports warns about codes the network does not hold. Queries still
// run; they answer "not connected" or "no path".
func (a *app) checkAirports(g *core.Graph, codes ...string) {
	for _, code := range codes {
		if !g.HasAirport(code) {
			log.Warnf("airport %q is not in the network", code)
		}
	}
}
