package astrotime

import (
	"errors"
	"testing"
	"time"

	"github.com/large-farva/nustar-aux/internal/auxerr"
)

func TestJulianDateJ2000(t *testing.T) {
	want := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := JulianDate(2451545.0).Time(); !got.Equal(want) {
		t.Errorf("JD 2451545.0 = %v, want %v", got, want)
	}
	if got := FromTime(want); got != 2451545.0 {
		t.Errorf("FromTime(%v) = %v, want 2451545.0", want, got)
	}
}

func TestJulianDateRoundTrip(t *testing.T) {
	in := time.Date(2024, 3, 15, 6, 30, 45, 0, time.UTC)
	out := FromTime(in).Time()
	if d := out.Sub(in); d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("round trip drifted by %v: %v -> %v", d, in, out)
	}
}

func TestMJD(t *testing.T) {
	cases := []struct {
		mjd  MJD
		want time.Time
	}{
		{51544, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		{60000, time.Date(2023, 2, 25, 0, 0, 0, 0, time.UTC)},
		{60000.5, time.Date(2023, 2, 25, 12, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		if got := c.mjd.Time(); !got.Equal(c.want) {
			t.Errorf("MJD %v = %v, want %v", c.mjd, got, c.want)
		}
	}
}

func TestExpandYear(t *testing.T) {
	cases := map[int]int{0: 2000, 12: 2012, 56: 2056, 57: 1957, 99: 1999}
	for yy, want := range cases {
		if got := ExpandYear(yy); got != want {
			t.Errorf("ExpandYear(%d) = %d, want %d", yy, got, want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	got, err := DayOfYear(2024, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := DayOfYear(2024, 366); err != nil {
		t.Errorf("day 366 of a leap year: %v", err)
	}
	for _, doy := range []int{0, 366} {
		if _, err := DayOfYear(2023, doy); !errors.Is(err, auxerr.ErrParse) {
			t.Errorf("DayOfYear(2023, %d) error = %v, want ErrParse", doy, err)
		}
	}
}

func TestParseDOY(t *testing.T) {
	got, err := ParseDOY("2016:075:13:04:59")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2016, 3, 15, 13, 4, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDOYRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"2016:075:13:04",
		"2016-075-13-04-59",
		"16:075:13:04:59",
		"2016:000:13:04:59",
		"2015:366:00:00:00",
		"2016:075:24:00:00",
		"2016:075:12:60:00",
		"2016:075:12:00:xx",
	} {
		if _, err := ParseDOY(s); !errors.Is(err, auxerr.ErrParse) {
			t.Errorf("ParseDOY(%q) error = %v, want ErrParse", s, err)
		}
	}
}
