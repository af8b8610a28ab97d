// Nustaraux fetches the NuSTAR TLE archive and reads the auxiliary orbit
// products used for observation planning: the TLE nearest an epoch, the
// occultation windows report, and the position angle report.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/large-farva/nustar-aux/internal/config"
	"github.com/large-farva/nustar-aux/internal/ctl"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "Path to config TOML (defaults built in)")
		jsonOut    = pflag.Bool("json", false, "Output JSON instead of formatted text")
	)

	// Stop at the command name so command flags reach their own FlagSet.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	if pflag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("config load failed: %v", err)
		}
	}

	var logOut io.Writer = os.Stderr
	if cfg.Logging.Level == "quiet" {
		logOut = io.Discard
	}
	logger := log.New(logOut, "nustaraux ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := pflag.Arg(0)
	subArgs := pflag.Args()[1:]

	var err error
	switch cmd {
	case "fetch-tle":
		opts := ctl.FetchOptions{JSON: *jsonOut}
		fs := pflag.NewFlagSet("fetch-tle", pflag.ExitOnError)
		fs.StringVar(&opts.OutDir, "out", "", "Output directory (default: data.root)")
		_ = fs.Parse(subArgs)
		err = ctl.FetchTLE(ctx, cfg, logger, opts)

	case "tle-epoch":
		opts := ctl.TLEOptions{JSON: *jsonOut}
		fs := tleFlags("tle-epoch", &opts, true)
		_ = fs.Parse(subArgs)
		err = ctl.EpochTLE(cfg, opts)

	case "tle-list":
		opts := ctl.TLEOptions{JSON: *jsonOut}
		fs := tleFlags("tle-list", &opts, false)
		_ = fs.Parse(subArgs)
		err = ctl.ListTLE(cfg, opts)

	case "position":
		opts := ctl.TLEOptions{JSON: *jsonOut}
		fs := tleFlags("position", &opts, true)
		_ = fs.Parse(subArgs)
		err = ctl.Position(cfg, opts)

	case "passes":
		opts := ctl.PassesOptions{TLEOptions: ctl.TLEOptions{JSON: *jsonOut}}
		fs := tleFlags("passes", &opts.TLEOptions, true)
		fs.IntVar(&opts.Hours, "hours", 0, "Lookahead window in hours (default: predict.lookahead_hours)")
		_ = fs.Parse(subArgs)
		err = ctl.Passes(cfg, opts)

	case "occ":
		if len(subArgs) != 1 {
			usage()
			os.Exit(2)
		}
		err = ctl.Occ(subArgs[0], *jsonOut)

	case "pa":
		if len(subArgs) != 1 {
			usage()
			os.Exit(2)
		}
		err = ctl.PA(subArgs[0], *jsonOut)

	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// tleFlags builds the FlagSet shared by commands that read the archive.
func tleFlags(name string, opts *ctl.TLEOptions, withEpoch bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ExitOnError)
	fs.StringVar(&opts.File, "file", "", "TLE archive (default: <data.root>/NuSTAR.tle)")
	if withEpoch {
		fs.StringVar(&opts.Epoch, "epoch", "", "Epoch as RFC 3339, YYYY-MM-DD or YYYY:DDD:HH:MM:SS")
		fs.Float64Var(&opts.JD, "jd", 0, "Epoch as a Julian date")
		fs.Float64Var(&opts.MJD, "mjd", 0, "Epoch as a modified Julian date")
	}
	return fs
}

func usage() {
	fmt.Print(`
  nustaraux — NuSTAR auxiliary orbit data

  USAGE
    nustaraux [flags] <command> [command-flags]

  COMMANDS
    fetch-tle       Download the NuSTAR TLE archive
    tle-list        List the records in the TLE archive
    tle-epoch       Show the TLE closest to an epoch
    position        Propagate the closest TLE to an epoch
    passes          List ground station passes from an epoch
    occ FILE        Show orbit visibility windows from an occultation report
    pa FILE         Show the sky position angle from a position angle report

  GLOBAL FLAGS
    -c, --config PATH   Config TOML (default: built-in defaults)
        --json          Output JSON instead of formatted text

  COMMAND FLAGS
    fetch-tle:
        --out DIR           Output directory (default: data.root)

    tle-list, tle-epoch, position, passes:
        --file PATH         TLE archive (default: <data.root>/NuSTAR.tle)

    tle-epoch, position, passes:
        --epoch TIME        RFC 3339, YYYY-MM-DD or YYYY:DDD:HH:MM:SS
        --jd JD             Julian date
        --mjd MJD           Modified Julian date

    passes:
        --hours N           Lookahead window (default: predict.lookahead_hours)

  EXAMPLES
    nustaraux fetch-tle --out ./aux
    nustaraux tle-epoch --epoch 2024-03-01T12:00:00Z --file ./aux/NuSTAR.tle
    nustaraux --json tle-epoch --mjd 60370.5
    nustaraux position --epoch 2024:061:12:00:00
    nustaraux passes --epoch 2024-03-01 --hours 12
    nustaraux occ ./occ/target_occ.txt
    nustaraux pa ./occ/target_pa.txt

`)
}
