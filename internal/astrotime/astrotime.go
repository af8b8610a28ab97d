// Package astrotime converts the time representations found in orbit
// products into time.Time, which is the only time type the rest of the
// module accepts. Julian and Modified Julian dates convert explicitly via
// their Time methods.
package astrotime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/large-farva/nustar-aux/internal/auxerr"
)

// PivotYear is the first two-digit year interpreted as 19xx. TLE epochs
// 57-99 belong to the 1900s (Sputnik launched in 1957) and 00-56 to the
// 2000s.
const PivotYear = 57

// j2000 is Julian date 2451545.0.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// JulianDate is a UTC Julian date in days.
type JulianDate float64

// Time converts the Julian date to UTC, rounded to the microsecond.
func (jd JulianDate) Time() time.Time {
	us := math.Round((float64(jd) - 2451545.0) * 86400e6)
	return j2000.Add(time.Duration(us) * time.Microsecond)
}

// FromTime returns the Julian date of t.
func FromTime(t time.Time) JulianDate {
	t = t.UTC()
	jd := satellite.JDay(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	return JulianDate(jd + float64(t.Nanosecond())/86400e9)
}

// MJD is a Modified Julian Date, JD - 2400000.5.
type MJD float64

// Time converts the modified Julian date to UTC.
func (m MJD) Time() time.Time {
	return JulianDate(float64(m) + 2400000.5).Time()
}

// ExpandYear maps a two-digit year onto a four-digit one using PivotYear.
func ExpandYear(yy int) int {
	if yy >= PivotYear {
		return 1900 + yy
	}
	return 2000 + yy
}

// DayOfYear returns midnight UTC of the given 1-based day of year.
func DayOfYear(year, doy int) (time.Time, error) {
	if doy < 1 || doy > daysIn(year) {
		return time.Time{}, auxerr.Parsef("day of year %d out of range for %d", doy, year)
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1), nil
}

func daysIn(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// ParseDOY parses a "YYYY:DDD:HH:MM:SS" timestamp as UTC.
func ParseDOY(s string) (time.Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 {
		return time.Time{}, auxerr.Parsef("timestamp %q: want YYYY:DDD:HH:MM:SS", s)
	}

	var v [5]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return time.Time{}, auxerr.Parsef("timestamp %q: bad field %q", s, p)
		}
		v[i] = n
	}
	year, doy, hh, mm, ss := v[0], v[1], v[2], v[3], v[4]

	if len(parts[0]) != 4 {
		return time.Time{}, auxerr.Parsef("timestamp %q: year must have 4 digits", s)
	}
	if hh > 23 || mm > 59 || ss > 59 {
		return time.Time{}, auxerr.Parsef("timestamp %q: time of day out of range", s)
	}

	day, err := DayOfYear(year, doy)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return day.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute + time.Duration(ss)*time.Second), nil
}
