// Package predict computes NuSTAR passes over a ground station from a
// matched TLE using SGP4 propagation, filtered by minimum elevation.
package predict

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/large-farva/nustar-aux/internal/tle"
)

// Station is a ground station position.
type Station struct {
	Name         string
	Lat          float64 // degrees North
	Lon          float64 // degrees East
	Alt          float64 // meters above sea level
	MinElevation float64 // degrees
}

// Pass describes a single predicted overhead pass, from acquisition of
// signal (AOS) through loss of signal (LOS).
type Pass struct {
	AOS         time.Time     `json:"aos"`
	LOS         time.Time     `json:"los"`
	MaxElev     float64       `json:"max_elev"`
	MaxElevTime time.Time     `json:"max_elev_time"`
	AOSAzimuth  float64       `json:"aos_azimuth"`
	LOSAzimuth  float64       `json:"los_azimuth"`
	Duration    time.Duration `json:"duration"`
}

// Passes propagates the line pair across [start, end) in step increments
// and returns the passes whose peak elevation reaches the station's
// minimum, sorted by AOS.
func Passes(line1, line2 string, st Station, start, end time.Time, step time.Duration) ([]Pass, error) {
	if !end.After(start) {
		return nil, errors.New("predict: end must be after start")
	}
	stepSeconds := int(step / time.Second)
	if stepSeconds < 1 {
		return nil, fmt.Errorf("predict: step %v is below one second", step)
	}

	elements, err := tle.Validate(line1, line2)
	if err != nil {
		return nil, err
	}

	rawPasses, err := elements.GeneratePasses(
		st.Lat, st.Lon, st.Alt,
		start.UTC(), end.UTC(),
		stepSeconds,
	)
	if err != nil {
		return nil, fmt.Errorf("predict: computing passes over %s: %w", st.Name, err)
	}

	var passes []Pass
	for _, rp := range rawPasses {
		if rp.MaxElevation < st.MinElevation {
			continue
		}
		passes = append(passes, Pass{
			AOS:         rp.AOS,
			LOS:         rp.LOS,
			MaxElev:     rp.MaxElevation,
			MaxElevTime: rp.MaxElevationTime,
			AOSAzimuth:  rp.AOSAzimuth,
			LOSAzimuth:  rp.LOSAzimuth,
			Duration:    rp.Duration,
		})
	}

	sort.Slice(passes, func(i, j int) bool {
		return passes[i].AOS.Before(passes[j].AOS)
	})
	return passes, nil
}
