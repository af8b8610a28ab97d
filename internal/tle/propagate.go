package tle

import (
	"fmt"
	"time"

	"github.com/akhenakh/sgp4"
	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/large-farva/nustar-aux/internal/astrotime"
	"github.com/large-farva/nustar-aux/internal/auxerr"
)

// Name is the object name placed on the title line handed to sgp4.
const Name = "NUSTAR"

// Position is the spacecraft state at a single instant.
type Position struct {
	Time      time.Time  `json:"time"`
	Latitude  float64    `json:"latitude"`  // geodetic, degrees
	Longitude float64    `json:"longitude"` // degrees, -180..180
	Altitude  float64    `json:"altitude"`  // km above the WGS72 ellipsoid
	ECI       [3]float64 `json:"eci_km"`
	Velocity  [3]float64 `json:"eci_km_s"`
}

// Validate parses a line pair with sgp4 and returns the element set.
// ReadFile does not check element fields, so lines should pass through
// here before they reach a propagator.
func Validate(line1, line2 string) (*sgp4.TLE, error) {
	t, err := sgp4.ParseTLE(Name + "\n" + line1 + "\n" + line2)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid TLE: %w", auxerr.ErrParse, err)
	}
	return t, nil
}

// Propagate runs SGP4 on the line pair to time at.
func Propagate(line1, line2 string, at time.Time) (Position, error) {
	if _, err := Validate(line1, line2); err != nil {
		return Position{}, err
	}

	at = at.UTC()
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	pos, vel := satellite.Propagate(sat,
		at.Year(), int(at.Month()), at.Day(),
		at.Hour(), at.Minute(), at.Second())

	gmst := satellite.ThetaG_JD(float64(astrotime.FromTime(at)))
	alt, _, ll := satellite.ECIToLLA(pos, gmst)
	deg := satellite.LatLongDeg(ll)

	return Position{
		Time:      at,
		Latitude:  deg.Latitude,
		Longitude: deg.Longitude,
		Altitude:  alt,
		ECI:       [3]float64{pos.X, pos.Y, pos.Z},
		Velocity:  [3]float64{vel.X, vel.Y, vel.Z},
	}, nil
}
