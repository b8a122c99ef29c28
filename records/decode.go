package records

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
)

// Delimiter separates the fields of every input file.
const Delimiter = ';'

// airlineCodeWidth is the fixed width of the code column in airlines files.
// One separator character follows it before the delimited remainder.
const airlineCodeWidth = 3

// DecodeAircraft reads aircraft records from r.
func DecodeAircraft(r io.Reader) ([]Aircraft, error) {
	return decode[Aircraft](newDelimitedReader(r), "aircraft", aircraftHeader)
}

// DecodeAirlines reads airline records from r.
//
// Airline lines are fixed-width in their first column: the code occupies the
// first three characters (space padded for two-letter codes), the fourth is a
// separator, and name and country follow delimited by ';'.
func DecodeAirlines(r io.Reader) ([]Airline, error) {
	return decode[Airline](&airlineReader{sc: bufio.NewScanner(r)}, "airline", airlineHeader)
}

// DecodeAirports reads airport records from r.
func DecodeAirports(r io.Reader) ([]Airport, error) {
	return decode[Airport](newDelimitedReader(r), "airport", airportHeader)
}

// DecodeRoutes reads route records from r.
func DecodeRoutes(r io.Reader) ([]Route, error) {
	return decode[Route](newDelimitedReader(r), "route", routeHeader)
}

// decode skips the header line of src, then decodes and validates one record
// of type T per remaining line. Record numbers in errors are 1-based and do
// not count the header.
func decode[T any](src csvutil.Reader, kind string, header []string) ([]T, error) {
	// 1) Discard the header line; an empty input yields no records.
	if _, err := src.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %s header: %v", ErrMalformedRecord, kind, err)
	}

	// 2) Map columns positionally through the fixed header.
	dec, err := csvutil.NewDecoder(trimReader{src: src}, header...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s decoder: %v", ErrMalformedRecord, kind, err)
	}

	// 3) Decode record by record so failures carry their position.
	var out []T
	for n := 1; ; n++ {
		var rec T
		if err = dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}

			return nil, fmt.Errorf("%w: %s record %d: %v", ErrMalformedRecord, kind, n, err)
		}
		if err = validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: %s record %d: %v", ErrInvalidRecord, kind, n, err)
		}
		out = append(out, rec)
	}
}

// newDelimitedReader configures encoding/csv for the ';'-separated files.
// Field counts are checked by the decoder against the fixed header instead.
func newDelimitedReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return cr
}

// trimReader strips surrounding whitespace from every field.
type trimReader struct {
	src csvutil.Reader
}

func (t trimReader) Read() ([]string, error) {
	rec, err := t.src.Read()
	if err != nil {
		return nil, err
	}
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}

	return rec, nil
}

// airlineReader splits fixed-width airline lines into fields.
type airlineReader struct {
	sc   *bufio.Scanner
	line int
}

func (a *airlineReader) Read() ([]string, error) {
	for a.sc.Scan() {
		a.line++
		text := strings.TrimRight(a.sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if len(text) <= airlineCodeWidth {
			return nil, fmt.Errorf("%w: line %d shorter than the code column", ErrMalformedRecord, a.line)
		}
		rest := strings.Split(text[airlineCodeWidth+1:], string(Delimiter))

		return append([]string{text[:airlineCodeWidth]}, rest...), nil
	}
	if err := a.sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}
