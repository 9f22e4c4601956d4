package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AdamBrianBright/callbackreturn/internal/config"
	"github.com/AdamBrianBright/callbackreturn/internal/log"
	"github.com/AdamBrianBright/callbackreturn/internal/output"
	"github.com/AdamBrianBright/callbackreturn/internal/runner"
)

// errProblems makes the process exit with 1 without printing anything more.
var errProblems = errors.New("problems found")

type options struct {
	config string
	names  []string
	format string
	jobs   int
	color  string
	debug  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "callbackreturn-js [flags] <path>...",
		Short: "Check that JavaScript callbacks are returned",
		Long: `callbackreturn-js reports calls to callback functions that are not followed by the end
of their function: the call must be returned, be followed by a return statement, or be the
last statement of the function body.

Directories are searched for .js, .mjs, .cjs and .jsx files.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default .callbackreturn.yaml in $HOME/.callbackreturn or the working directory)")
	cmd.Flags().StringSliceVar(&opts.names, "names", nil, "callback names, overriding the config (default [callback])")
	cmd.Flags().StringVar(&opts.format, "format", string(output.FormatText), "output format (text|json|yaml)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "files checked in parallel (default GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log to "+log.FileName)

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	useColor, err := colorEnabled(opts.color, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	conf, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("names") {
		conf.Names = opts.names
	}
	conf.Debug = conf.Debug || opts.debug
	if err := conf.Validate(); err != nil {
		return err
	}
	log.EnableDebug(conf.Debug)
	defer log.Sync()

	r, err := conf.Rule()
	if err != nil {
		return err
	}

	files, err := runner.Collect(args)
	if err != nil {
		return err
	}
	log.Log("Checking %d files with names %v\n", len(files), r.Names())

	results, err := runner.Run(cmd.Context(), r, files, opts.jobs)
	if err != nil {
		return err
	}
	if err := output.Render(cmd.OutOrStdout(), format, results, useColor); err != nil {
		return err
	}

	for _, res := range results {
		if res.Failed() {
			return errProblems
		}
	}

	return nil
}

func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	}

	return false, fmt.Errorf("invalid --color %q (want auto, on or off)", mode)
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errProblems) {
			fmt.Fprintln(os.Stderr, "callbackreturn-js:", err)
		}
		os.Exit(1)
	}
}
