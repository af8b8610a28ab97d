package ctl

import (
	"errors"
	"fmt"
	"time"

	"github.com/large-farva/nustar-aux/internal/astrotime"
)

// EpochFlags holds the mutually exclusive ways to name an epoch on the
// command line.
type EpochFlags struct {
	Epoch string  // calendar time, see ResolveEpoch
	JD    float64 // Julian date
	MJD   float64 // modified Julian date
}

var calendarLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ResolveEpoch converts whichever flag was set into a UTC time. Calendar
// strings may be RFC 3339, a bare date, or YYYY:DDD:HH:MM:SS.
func (f EpochFlags) ResolveEpoch() (time.Time, error) {
	set := 0
	for _, ok := range []bool{f.Epoch != "", f.JD != 0, f.MJD != 0} {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return time.Time{}, errors.New("one of --epoch, --jd or --mjd is required")
	case set > 1:
		return time.Time{}, errors.New("--epoch, --jd and --mjd are mutually exclusive")
	case f.JD != 0:
		return astrotime.JulianDate(f.JD).Time(), nil
	case f.MJD != 0:
		return astrotime.MJD(f.MJD).Time(), nil
	}

	for _, layout := range calendarLayouts {
		if t, err := time.Parse(layout, f.Epoch); err == nil {
			return t.UTC(), nil
		}
	}
	if t, err := astrotime.ParseDOY(f.Epoch); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognised epoch %q", f.Epoch)
}
