package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

// Default file names inside a data directory.
const (
	AircraftFile = "aircrafts.txt"
	AirlinesFile = "airlines.txt"
	AirportsFile = "airports.txt"
	RoutesFile   = "routes.txt"
)

// Paths names the four input files. An empty Aircraft or Airlines path skips
// that kind; Airports and Routes are required.
type Paths struct {
	Aircraft string
	Airlines string
	Airports string
	Routes   string
}

// DefaultPaths returns the conventional file layout under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Aircraft: filepath.Join(dir, AircraftFile),
		Airlines: filepath.Join(dir, AirlinesFile),
		Airports: filepath.Join(dir, AirportsFile),
		Routes:   filepath.Join(dir, RoutesFile),
	}
}

// Load reads the four files concurrently and returns the decoded Dataset.
// The first failure cancels the remaining reads and is returned as is.
func Load(ctx context.Context, p Paths) (*Dataset, error) {
	if p.Airports == "" || p.Routes == "" {
		return nil, fmt.Errorf("%w: airports and routes paths are required", ErrMissingFile)
	}

	ds := &Dataset{}
	grp, gctx := errgroup.WithContext(ctx)

	if p.Aircraft != "" {
		grp.Go(func() error {
			return readFile(gctx, p.Aircraft, func(r io.Reader) (n int, err error) {
				ds.Aircraft, err = DecodeAircraft(r)
				return len(ds.Aircraft), err
			})
		})
	}
	if p.Airlines != "" {
		grp.Go(func() error {
			return readFile(gctx, p.Airlines, func(r io.Reader) (n int, err error) {
				ds.Airlines, err = DecodeAirlines(r)
				return len(ds.Airlines), err
			})
		})
	}
	grp.Go(func() error {
		return readFile(gctx, p.Airports, func(r io.Reader) (n int, err error) {
			ds.Airports, err = DecodeAirports(r)
			return len(ds.Airports), err
		})
	})
	grp.Go(func() error {
		return readFile(gctx, p.Routes, func(r io.Reader) (n int, err error) {
			ds.Routes, err = DecodeRoutes(r)
			return len(ds.Routes), err
		})
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return ds, nil
}

// LoadDir is Load over DefaultPaths(dir).
func LoadDir(ctx context.Context, dir string) (*Dataset, error) {
	return Load(ctx, DefaultPaths(dir))
}

// readFile opens path and hands it to fn, logging the record count and
// elapsed time on success.
func readFile(ctx context.Context, path string, fn func(io.Reader) (int, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingFile, path)
		}

		return fmt.Errorf("records: open %s: %w", path, err)
	}
	defer f.Close()

	start := time.Now()
	n, err := fn(f)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	log.Debugf("records: decoded %d records from %s in %s", n, path, time.Since(start))

	return nil
}
