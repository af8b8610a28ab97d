// Package tle downloads the NuSTAR two-line element archive, reads it into
// epoch-tagged records, and selects the record closest to a requested
// epoch.
package tle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/large-farva/nustar-aux/internal/astrotime"
	"github.com/large-farva/nustar-aux/internal/auxerr"
)

// Record is one two-line element set from an archive. Epoch carries day
// resolution only: midnight UTC of the epoch day.
type Record struct {
	Epoch time.Time `json:"epoch"`
	Line1 string    `json:"line1"`
	Line2 string    `json:"line2"`
}

// ReadFile reads every record of the TLE archive at path, in file order.
func ReadFile(path string) ([]Record, error) {
	f, err := auxerr.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read TLE file: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read TLE file %s: %w", path, err)
	}
	return records, nil
}

// Parse reads line pairs from r. The first line of each pair supplies the
// epoch from columns 19-23 (YYDDD); the fractional day is ignored. Blank
// lines are skipped. Checksums and the remaining fields are not checked.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	var (
		records []Record
		pending *Record
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		if pending == nil {
			epoch, err := lineEpoch(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			pending = &Record{Epoch: epoch, Line1: strings.TrimSpace(raw)}
			continue
		}

		pending.Line2 = strings.TrimSpace(raw)
		records = append(records, *pending)
		pending = nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading TLE data: %w", err)
	}

	if pending != nil {
		return nil, auxerr.Parsef("line %d: line 1 without a following line 2", lineNo)
	}
	return records, nil
}

// lineEpoch extracts the epoch day from a TLE line 1. Columns are 1-indexed
// in the TLE format: 19-20 hold the year, 21-23 the day of year.
func lineEpoch(line string) (time.Time, error) {
	if len(line) < 23 {
		return time.Time{}, auxerr.Parsef("line 1 too short for epoch (%d columns)", len(line))
	}

	yy, err := strconv.Atoi(strings.TrimSpace(line[18:20]))
	if err != nil {
		return time.Time{}, auxerr.Parsef("epoch year %q is not a number", line[18:20])
	}
	doy, err := strconv.Atoi(strings.TrimSpace(line[20:23]))
	if err != nil {
		return time.Time{}, auxerr.Parsef("epoch day %q is not a number", line[20:23])
	}

	return astrotime.DayOfYear(astrotime.ExpandYear(yy), doy)
}

// Columns splits records into parallel epoch, line 1 and line 2 slices.
func Columns(records []Record) (epochs []time.Time, line1, line2 []string) {
	epochs = make([]time.Time, len(records))
	line1 = make([]string, len(records))
	line2 = make([]string, len(records))
	for i, rec := range records {
		epochs[i] = rec.Epoch
		line1[i] = rec.Line1
		line2[i] = rec.Line2
	}
	return epochs, line1, line2
}
