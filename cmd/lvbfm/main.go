// Command lvbfm runs a bond-fluctuation simulation described by an HCL file
// and writes its trajectory in the bfm format.
//
// Usage:
//
//	lvbfm [-mcs N] [-save-every N] CONFIG.hcl
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvbfm/bfm"
	"github.com/katalvlaran/lvbfm/config"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the configuration, grows the initial molecules and sweeps,
// saving a frame before the first sweep and after every save interval.
func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("lvbfm", flag.ContinueOnError)
	flags.SetOutput(out)
	mcs := flags.Int("mcs", -1, "Monte-Carlo steps; overrides run.mcs when >= 0.")
	saveEvery := flags.Int("save-every", -1, "Steps between saved frames; overrides run.save_every when >= 0.")
	flags.Usage = func() {
		fmt.Fprint(out, "Usage:\n  lvbfm [options] CONFIG.hcl\n\nOptions:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errors.New("lvbfm: exactly one configuration file is required")
	}

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	log := config.NewLogger(env, out)

	cfg, err := config.Load(flags.Arg(0))
	if err != nil {
		return err
	}
	if *mcs >= 0 {
		cfg.Run.MCS = *mcs
	}
	if *saveEvery >= 0 {
		cfg.Run.SaveEvery = *saveEvery
	}

	s, err := cfg.NewSession(log)
	if err != nil {
		return err
	}
	if err = cfg.Populate(s); err != nil {
		return err
	}

	var w *bfm.Writer
	if cfg.Output.Path != "" {
		if w, err = cfg.Create(log); err != nil {
			return err
		}
		defer w.Close()
		if err = w.WriteFrame(config.System(s)); err != nil {
			return err
		}
	} else {
		log.Warn("lvbfm: no output path, trajectory is not saved")
	}

	interval := cfg.Run.SaveEvery
	if interval <= 0 {
		interval = cfg.Run.MCS
	}
	for done := 0; done < cfg.Run.MCS; {
		step := min(interval, cfg.Run.MCS-done)
		if err = s.Sweep(step); err != nil {
			return err
		}
		done += step
		if w != nil {
			if err = w.WriteFrame(config.System(s)); err != nil {
				return err
			}
		}
		stats := s.Stats()
		log.Info("lvbfm: progress", "mcs", s.Molecules().Age(), "acceptance", stats.AcceptanceRate())
	}

	if w != nil {
		return w.Close()
	}
	return nil
}
