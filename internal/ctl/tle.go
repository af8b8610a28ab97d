package ctl

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/large-farva/nustar-aux/internal/config"
	"github.com/large-farva/nustar-aux/internal/predict"
	"github.com/large-farva/nustar-aux/internal/tle"
)

// DefaultTLEPath is the archive location under the configured data root.
func DefaultTLEPath(cfg config.Config) string {
	return filepath.Join(cfg.Data.Root, tle.FileName)
}

// FetchOptions controls the fetch-tle command.
type FetchOptions struct {
	OutDir string // defaults to data.root
	JSON   bool
}

// FetchTLE downloads the TLE archive.
func FetchTLE(ctx context.Context, cfg config.Config, logger *log.Logger, opts FetchOptions) error {
	outDir := opts.OutDir
	if outDir == "" {
		outDir = cfg.Data.Root
	}

	f := tle.NewFetcher(cfg.TLE.URL, logger)
	f.SetTimeout(time.Duration(cfg.TLE.TimeoutSeconds) * time.Second)

	path, err := f.Download(ctx, outDir)
	if err != nil {
		return err
	}
	records, err := tle.ReadFile(path)
	if err != nil {
		return err
	}

	resp := struct {
		Path    string `json:"path"`
		Source  string `json:"source"`
		Records int    `json:"records"`
	}{path, f.URL(), len(records)}

	if opts.JSON {
		return printJSON(resp)
	}

	outln()
	outf("  %s  %s (%d records)\n", colorize(green, "FETCHED"), resp.Path, resp.Records)
	outf("  Source:  %s\n", resp.Source)
	outln()
	return nil
}

// TLEOptions selects an archive and an epoch within it.
type TLEOptions struct {
	EpochFlags
	File string // defaults to DefaultTLEPath
	JSON bool
}

func (o TLEOptions) path(cfg config.Config) string {
	if o.File != "" {
		return o.File
	}
	return DefaultTLEPath(cfg)
}

// EpochTLE prints the archive record closest to the requested epoch.
func EpochTLE(cfg config.Config, opts TLEOptions) error {
	epoch, err := opts.ResolveEpoch()
	if err != nil {
		return err
	}
	m, err := tle.MatchFile(epoch, opts.path(cfg))
	if err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(struct {
			Epoch time.Time `json:"requested_epoch"`
			tle.Match
		}{epoch, m})
	}

	outln()
	outln(header("  CLOSEST TLE"))
	outln(rule())
	outf("  Requested:  %s\n", formatTime(epoch))
	outf("  TLE epoch:  %s (record %d)\n", m.Record.Epoch.Format("2006-01-02"), m.Index)
	outf("  Offset:     %s\n", colorize(staleColor(m.Days), fmt.Sprintf("%d days", m.Days)))
	outln()
	outln("  " + m.Record.Line1)
	outln("  " + m.Record.Line2)
	outln()
	return nil
}

// ListTLE prints every record in the archive.
func ListTLE(cfg config.Config, opts TLEOptions) error {
	records, err := tle.ReadFile(opts.path(cfg))
	if err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(map[string]any{"records": records})
	}

	outln()
	outln(header(fmt.Sprintf("  TLE ARCHIVE  %d records", len(records))))
	outln(rule())
	for i, rec := range records {
		outf("  %s %s\n", padRight(fmt.Sprintf("%d", i), 6), rec.Epoch.Format("2006-01-02 (DOY 002)"))
	}
	outln()
	return nil
}

// Position prints the spacecraft position at the requested epoch using
// the closest archive record.
func Position(cfg config.Config, opts TLEOptions) error {
	epoch, err := opts.ResolveEpoch()
	if err != nil {
		return err
	}
	m, err := tle.MatchFile(epoch, opts.path(cfg))
	if err != nil {
		return err
	}
	pos, err := tle.Propagate(m.Record.Line1, m.Record.Line2, epoch)
	if err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(map[string]any{"match": m, "position": pos})
	}

	outln()
	outln(header("  NUSTAR POSITION"))
	outln(rule())
	outf("  Time:       %s\n", formatTime(pos.Time))
	outf("  TLE epoch:  %s (%s)\n", m.Record.Epoch.Format("2006-01-02"),
		colorize(staleColor(m.Days), fmt.Sprintf("%d days", m.Days)))
	outf("  Latitude:   %8.3f deg\n", pos.Latitude)
	outf("  Longitude:  %8.3f deg\n", pos.Longitude)
	outf("  Altitude:   %8.1f km\n", pos.Altitude)
	outln()
	return nil
}

// PassesOptions controls the passes command.
type PassesOptions struct {
	TLEOptions
	Hours int // defaults to predict.lookahead_hours
}

// Passes lists ground station passes starting at the requested epoch.
func Passes(cfg config.Config, opts PassesOptions) error {
	start, err := opts.ResolveEpoch()
	if err != nil {
		return err
	}
	m, err := tle.MatchFile(start, opts.path(cfg))
	if err != nil {
		return err
	}

	hours := opts.Hours
	if hours <= 0 {
		hours = cfg.Predict.LookaheadHours
	}
	st := predict.Station{
		Name:         cfg.Station.Name,
		Lat:          cfg.Station.Latitude,
		Lon:          cfg.Station.Longitude,
		Alt:          cfg.Station.Altitude,
		MinElevation: cfg.Station.MinElevation,
	}
	passes, err := predict.Passes(m.Record.Line1, m.Record.Line2, st,
		start, start.Add(time.Duration(hours)*time.Hour),
		time.Duration(cfg.Predict.StepSeconds)*time.Second)
	if err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(map[string]any{"station": st, "tle_offset_days": m.Days, "passes": passes})
	}

	outln()
	outln(header(fmt.Sprintf("  PASSES OVER %s  next %dh", st.Name, hours)))
	outln(rule())
	if len(passes) == 0 {
		outln(colorize(dim, "  no passes above minimum elevation"))
	}
	for _, p := range passes {
		outf("  %s  %s  %s  max %5.1f deg\n",
			formatTime(p.AOS), formatTime(p.LOS),
			padRight(formatDuration(p.Duration), 10), p.MaxElev)
	}
	outln()
	return nil
}
