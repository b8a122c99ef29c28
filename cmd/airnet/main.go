// Command airnet loads a flight network from semicolon-delimited files and
// answers reachability and shortest-path queries against it.
//
// Usage:
//
//	airnet [--config FILE] [--data-dir DIR] [--log-level LEVEL] <command>
//
// Commands:
//
//	stats                                  network size, load and build timings
//	connected START END AIRLINE [--order]  airline-restricted reachability
//	shortest START END [--metric]          minimum distance or time itinerary
//	airports [--country NAME]              list loaded airports
package main

import (
	"os"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
