package ctl

import (
	"fmt"

	"github.com/large-farva/nustar-aux/internal/report"
)

// Occ prints the visibility windows of an occultation report.
func Occ(path string, jsonOutput bool) error {
	windows, err := report.ParseOcc(path)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(map[string]any{"windows": windows})
	}

	outln()
	outln(header(fmt.Sprintf("  ORBIT WINDOWS  %d orbits", len(windows))))
	outln(rule())
	outf("  %s %s %s\n", padRight("#", 4), padRight("VISIBLE", 21), padRight("OCCULTED", 21))
	for i, w := range windows {
		outf("  %s %s %s %s\n",
			padRight(fmt.Sprintf("%d", i+1), 4),
			padRight(formatTime(w.Visible), 21),
			padRight(formatTime(w.Occulted), 21),
			colorize(dim, formatDuration(w.Duration())))
	}
	outln()
	return nil
}

// PA prints the sky position angle from a position angle report.
func PA(path string, jsonOutput bool) error {
	sky, err := report.ParsePA(path)
	if err != nil {
		return err
	}

	// The 180 degree flip is its own inverse.
	if jsonOutput {
		return printJSON(map[string]any{"sky_pa_deg": sky, "mission_pa_deg": report.SkyPA(sky)})
	}

	outln()
	outf("  Sky position angle:  %s\n", colorize(green, fmt.Sprintf("%.6f deg", sky)))
	outf("  Mission planning:    %.6f deg\n", report.SkyPA(sky))
	outln()
	return nil
}
