package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/large-farva/nustar-aux/internal/auxerr"
)

// paField is the zero-based token holding the angle in
// "Position angle: 43.608806 [deg]".
const paField = 2

// ParsePA reads a position angle report and returns the sky position angle
// in degrees.
func ParsePA(path string) (float64, error) {
	f, err := auxerr.Open(path)
	if err != nil {
		return 0, fmt.Errorf("read position angle file: %w", err)
	}
	defer f.Close()

	mps, err := ReadMissionPA(f)
	if err != nil {
		return 0, fmt.Errorf("read position angle file %s: %w", path, err)
	}
	return SkyPA(mps), nil
}

// ReadMissionPA returns the mission planning angle from the last non-blank
// line of r. Earlier lines are read and discarded.
func ReadMissionPA(r io.Reader) (float64, error) {
	scanner := bufio.NewScanner(r)

	var last []string
	for scanner.Scan() {
		if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
			last = fields
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading position angle: %w", err)
	}

	if last == nil {
		return 0, auxerr.Parsef("no position angle line")
	}
	if len(last) <= paField {
		return 0, auxerr.Parsef("position angle line %q has %d fields", strings.Join(last, " "), len(last))
	}

	v, err := strconv.ParseFloat(last[paField], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: position angle %q: %w", auxerr.ErrParse, last[paField], err)
	}
	return v, nil
}

// SkyPA converts a mission planning position angle to the sky frame, which
// is rotated by 180 degrees. The result is not wrapped into [0, 360).
func SkyPA(missionPA float64) float64 {
	return 180 - missionPA
}
