// Package report parses the text products of the orbit model scripts: the
// occultation table and the position angle line.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/large-farva/nustar-aux/internal/astrotime"
	"github.com/large-farva/nustar-aux/internal/auxerr"
)

const (
	// OccHeaderLines is the number of preamble lines before the table.
	OccHeaderLines = 6

	// occColumns is the fixed row schema: ingress, ingress angle, midpoint,
	// midpoint angle, egress, egress angle.
	occColumns = 6
)

// OccultationRow is one row of an occultation table. Only the ingress and
// egress times are interpreted; the other columns are kept verbatim.
type OccultationRow struct {
	Ingress       time.Time `json:"ingress"`
	IngressAngle  string    `json:"ingress_angle"`
	Midpoint      string    `json:"midpoint"`
	MidpointAngle string    `json:"midpoint_angle"`
	Egress        time.Time `json:"egress"`
	EgressAngle   string    `json:"egress_angle"`
}

// OrbitWindow is the visible part of one orbit: from the target's egress
// from occultation until the next ingress.
type OrbitWindow struct {
	Visible  time.Time `json:"visible"`
	Occulted time.Time `json:"occulted"`
}

// Duration is the length of the visible window.
func (w OrbitWindow) Duration() time.Duration {
	return w.Occulted.Sub(w.Visible)
}

// ParseOcc reads the occultation table at path and returns one window per
// consecutive pair of rows.
func ParseOcc(path string) ([]OrbitWindow, error) {
	f, err := auxerr.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read occultation file: %w", err)
	}
	defer f.Close()

	rows, err := ReadOccultations(f)
	if err != nil {
		return nil, fmt.Errorf("read occultation file %s: %w", path, err)
	}
	return Windows(rows), nil
}

// ReadOccultations skips the header and parses every non-blank row.
// A row with the wrong number of fields, or an ingress or egress that is
// not YYYY:DDD:HH:MM:SS, fails the whole read.
func ReadOccultations(r io.Reader) ([]OccultationRow, error) {
	scanner := bufio.NewScanner(r)

	var (
		rows   []OccultationRow
		lineNo int
	)
	for scanner.Scan() {
		lineNo++
		if lineNo <= OccHeaderLines {
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != occColumns {
			return nil, auxerr.Parsef("line %d: got %d columns, want %d", lineNo, len(fields), occColumns)
		}

		ingress, err := astrotime.ParseDOY(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d ingress: %w", lineNo, err)
		}
		egress, err := astrotime.ParseDOY(fields[4])
		if err != nil {
			return nil, fmt.Errorf("line %d egress: %w", lineNo, err)
		}

		rows = append(rows, OccultationRow{
			Ingress:       ingress,
			IngressAngle:  fields[1],
			Midpoint:      fields[2],
			MidpointAngle: fields[3],
			Egress:        egress,
			EgressAngle:   fields[5],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading occultation data: %w", err)
	}
	return rows, nil
}

// Windows pairs each row's egress with the next row's ingress. The last
// row has no successor and produces no window.
func Windows(rows []OccultationRow) []OrbitWindow {
	if len(rows) < 2 {
		return []OrbitWindow{}
	}
	out := make([]OrbitWindow, 0, len(rows)-1)
	for i := 0; i+1 < len(rows); i++ {
		out = append(out, OrbitWindow{
			Visible:  rows[i].Egress,
			Occulted: rows[i+1].Ingress,
		})
	}
	return out
}
