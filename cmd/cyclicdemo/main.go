// Command cyclicdemo encodes random messages with a binary cyclic code,
// corrupts one bit of each codeword and corrects it by syndrome lookup.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/ericlevine/gf2cyclic"
	"github.com/spf13/cobra"
)

type options struct {
	cfg       gf2cyclic.Config
	seed      uint64
	seedSet   bool
	lang      string
	logLevel  string
	showTable bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := options{cfg: gf2cyclic.DefaultConfig()}
	var noTable bool

	cmd := &cobra.Command{
		Use:   "cyclicdemo [runs]",
		Short: "Single-bit error correction with a binary cyclic code",
		Long: "cyclicdemo encodes random messages with a fixed generator polynomial over GF(2),\n" +
			"flips one random bit of each codeword and corrects it using a syndrome table.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				runs, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid run count %q: %w", args[0], err)
				}
				opts.cfg.Runs = runs
			}
			opts.seedSet = cmd.Flags().Changed("seed")
			opts.showTable = !noTable
			err := run(opts, stdout, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "cyclicdemo: error: %v\n", err)
			}
			return err
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVarP(&opts.cfg.Runs, "runs", "r", opts.cfg.Runs, "number of experiments")
	flags.IntVarP(&opts.cfg.MessageLength, "message-length", "k", opts.cfg.MessageLength, "message length in bits")
	flags.StringVarP(&opts.cfg.Generator, "generator", "g", opts.cfg.Generator, "generator polynomial as a bit string, highest degree first")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for the random source (default: random)")
	flags.StringVar(&opts.lang, "lang", "en", "output language (en, ru)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&noTable, "no-table", false, "do not print the syndrome table")
	return cmd
}

func run(opts options, stdout, stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	seed := opts.seed
	if !opts.seedSet {
		var err error
		if seed, err = gf2cyclic.RandomSeed(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	src, err := gf2cyclic.NewChaChaSource(seed)
	if err != nil {
		return err
	}
	logger.Debug("starting experiments",
		"k", opts.cfg.MessageLength, "generator", opts.cfg.Generator, "runs", opts.cfg.Runs, "seed", seed)

	results, err := gf2cyclic.Run(opts.cfg, src)
	if err != nil {
		return err
	}

	p := newPrinter(opts.lang)
	corrected := 0
	for _, r := range results {
		logger.Debug("run finished", "run", r.Index, "code", r.Code.String(),
			"position", r.ErrorPosition, "index", r.Correction.Index)
		if c := r.Table.Collisions(); len(c) > 0 {
			logger.Warn("syndrome collisions", "run", r.Index, "count", len(c))
		}
		if r.Uncorrectable {
			logger.Warn("uncorrectable word", "run", r.Index, "syndrome", r.Correction.Syndrome.Bits(r.Table.Width()))
		}
		if r.Corrected() {
			corrected++
		}
		if err := writeRun(stdout, p, r, opts.showTable); err != nil {
			return err
		}
	}
	p.Fprintf(stdout, msgSummary, corrected, len(results))
	return nil
}
