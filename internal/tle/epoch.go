package tle

import (
	"fmt"
	"time"

	"github.com/large-farva/nustar-aux/internal/auxerr"
)

// ErrNoRecords is returned when an archive holds no TLE records to match.
var ErrNoRecords = fmt.Errorf("%w: no TLE records", auxerr.ErrParse)

const day = 24 * time.Hour

// Match is the record nearest a requested epoch.
type Match struct {
	Days   int    `json:"days"`  // whole days between the epoch and Record.Epoch
	Index  int    `json:"index"` // position of Record in the archive
	Record Record `json:"record"`
}

// Closest scans records in order and returns the one whose epoch is the
// fewest whole days from epoch. Ties go to the earliest record. There is
// no staleness limit; callers that care should check Match.Days.
func Closest(epoch time.Time, records []Record) (Match, error) {
	var (
		best  Match
		found bool
	)
	for i, rec := range records {
		d := dayDistance(epoch, rec.Epoch)
		if !found || d < best.Days {
			best = Match{Days: d, Index: i, Record: rec}
			found = true
		}
	}
	if !found {
		return Match{}, ErrNoRecords
	}
	return best, nil
}

// dayDistance is the absolute whole-day part of a-b, with the day count
// floored toward negative infinity before the sign is dropped.
func dayDistance(a, b time.Time) int {
	diff := a.Sub(b)
	days := int(diff / day)
	if diff%day < 0 {
		days--
	}
	if days < 0 {
		return -days
	}
	return days
}

// GetEpochTLE loads the archive at path and returns the day distance and
// both raw lines of the record nearest epoch.
func GetEpochTLE(epoch time.Time, path string) (int, string, string, error) {
	m, err := MatchFile(epoch, path)
	if err != nil {
		return 0, "", "", err
	}
	return m.Days, m.Record.Line1, m.Record.Line2, nil
}

// MatchFile is GetEpochTLE returning the full Match.
func MatchFile(epoch time.Time, path string) (Match, error) {
	records, err := ReadFile(path)
	if err != nil {
		return Match{}, err
	}
	m, err := Closest(epoch, records)
	if err != nil {
		return Match{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
