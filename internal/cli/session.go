package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/brewer"
	"github.com/aretw0/brewer/internal/presentation/tui"
	"github.com/aretw0/brewer/pkg/config"
	"github.com/aretw0/brewer/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// RunSession runs the operator loop until input ends, the operator quits or a
// signal arrives.
func RunSession(opts RunOptions) error {
	cfg, err := config.Load(opts.ProfilePath)
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = createLogger(opts, cfg)
	}
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	var reg *prometheus.Registry
	if opts.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
	}

	machine, err := createMachine(cfg, opts, logger, registerer(reg))
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if reg != nil {
		stop, err := startMetricsServer(opts.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	interactive := !opts.JSON && !opts.Headless && out == os.Stdout && tui.IsTerminal(os.Stdout)
	if interactive {
		tui.PrintBanner(out, brewer.Version)
	}

	handler := createHandler(opts, in, out, interactive)
	if c, ok := handler.(io.Closer); ok {
		defer c.Close()
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
		runner.WithMaxRejections(opts.MaxRejections),
	)

	summary, runErr := r.Run(sigCtx, machine)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logger.Info("session finished",
		"turns", summary.Turns,
		"rejected", summary.Rejected,
		"state", machine.CurrentState(),
		"signal", sigCtx.Signal(),
	)
	if interactive {
		fmt.Fprintf(out, "\nServed %d action(s). Bye!\n", summary.Turns)
	}

	return handleExecutionError(runErr)
}

func createHandler(opts RunOptions, in io.Reader, out io.Writer, interactive bool) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(in, out)
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithTextHandlerHeadless(opts.Headless),
	}
	if interactive {
		handlerOpts = append(handlerOpts,
			runner.WithTextHandlerRenderer(tui.NewRenderer()),
			runner.WithTextHandlerStyler(tui.NewStatusStyler(tui.ProfileFor(os.Stdout))),
		)
	}
	return runner.NewTextHandler(in, out, handlerOpts...)
}

// registerer avoids handing a typed nil registry to createMachine.
func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return nil
	}
	return reg
}
