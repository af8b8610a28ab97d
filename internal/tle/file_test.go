package tle

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/large-farva/nustar-aux/internal/auxerr"
)

// line1 builds a line 1 carrying the given YYDDD epoch. Checksums are not
// valid; Parse does not look at them.
func line1(yyddd string) string {
	return fmt.Sprintf("1 38358U 12031A   %s.50000000  .00000863  00000-0  63335-4 0  9999", yyddd)
}

func line2(rev int) string {
	return fmt.Sprintf("2 38358   6.0269 207.0483 0010925 115.2349 244.9109 14.88484416%5d0", rev)
}

func archive(epochs ...string) string {
	var b strings.Builder
	for i, e := range epochs {
		b.WriteString(line1(e) + "\n")
		b.WriteString(line2(60000+i) + "\n")
	}
	return b.String()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReadFile(t *testing.T) {
	records, err := ReadFile(filepath.Join("testdata", "nustar.tle"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	wantEpochs := []time.Time{date(2024, 1, 1), date(2024, 1, 10), date(2024, 2, 9)}
	for i, rec := range records {
		if !rec.Epoch.Equal(wantEpochs[i]) {
			t.Errorf("record %d epoch = %v, want %v", i, rec.Epoch, wantEpochs[i])
		}
		if !strings.HasPrefix(rec.Line1, "1 38358U") || !strings.HasPrefix(rec.Line2, "2 38358") {
			t.Errorf("record %d lines out of order: %q / %q", i, rec.Line1, rec.Line2)
		}
	}
	if !strings.HasSuffix(records[1].Line1, "9997") {
		t.Errorf("record 1 line1 = %q, want the second pair", records[1].Line1)
	}
}

func TestParseCountsAndOrder(t *testing.T) {
	stamps := []string{"24100", "23001", "24050", "24366"}
	records, err := Parse(strings.NewReader(archive(stamps...)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	epochs, l1, l2 := Columns(records)
	if len(epochs) != 4 || len(l1) != 4 || len(l2) != 4 {
		t.Fatalf("got %d/%d/%d entries, want 4 each", len(epochs), len(l1), len(l2))
	}

	want := []time.Time{date(2024, 4, 9), date(2023, 1, 1), date(2024, 2, 19), date(2024, 12, 31)}
	for i := range want {
		if !epochs[i].Equal(want[i]) {
			t.Errorf("epoch %d = %v, want %v", i, epochs[i], want[i])
		}
		if l1[i] != line1(stamps[i]) {
			t.Errorf("line1 %d = %q", i, l1[i])
		}
		if l2[i] != line2(60000+i) {
			t.Errorf("line2 %d = %q", i, l2[i])
		}
	}
}

func TestParseYearPivot(t *testing.T) {
	records, err := Parse(strings.NewReader(archive("56001", "57001", "99365", "00001")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2056, 1957, 1999, 2000}
	for i, rec := range records {
		if rec.Epoch.Year() != want[i] {
			t.Errorf("record %d year = %d, want %d", i, rec.Epoch.Year(), want[i])
		}
	}
}

func TestParseStripsWhitespaceAndBlankLines(t *testing.T) {
	in := line1("24001") + "   \r\n\n" + "  " + line2(1) + "\t\n\n"
	records, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Line1 != line1("24001") || records[0].Line2 != line2(1) {
		t.Errorf("lines not trimmed: %q / %q", records[0].Line1, records[0].Line2)
	}
}

func TestParseEmpty(t *testing.T) {
	records, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"dangling line 1": archive("24001") + line1("24002") + "\n",
		"short line 1":    "1 38358U 12031A   24\n" + line2(0) + "\n",
		"bad year":        strings.Replace(line1("24001"), "24001", "xx001", 1) + "\n" + line2(0) + "\n",
		"bad day":         strings.Replace(line1("24001"), "24001", "24abc", 1) + "\n" + line2(0) + "\n",
		"day zero":        archive("24000"),
		"day 366 in 2023": archive("23366"),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in))
			if !errors.Is(err, auxerr.ErrParse) {
				t.Errorf("error = %v, want ErrParse", err)
			}
		})
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.tle"))
	if !errors.Is(err, auxerr.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
