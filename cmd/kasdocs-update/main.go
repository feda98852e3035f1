package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/kasdocs/cmd/kasdocs/commands"
	"git.home.luguber.info/inful/kasdocs/internal/cli"
	"git.home.luguber.info/inful/kasdocs/internal/config"
	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
	"git.home.luguber.info/inful/kasdocs/internal/updater"
	"git.home.luguber.info/inful/kasdocs/internal/version"
)

// CLI definition of the updater. Without --cron or --every it runs once and exits.
type CLI struct {
	commands.Flags `embed:""`

	Cron  string        `help:"Keep running and repeat the update on this cron schedule (UTC), e.g. \"0 6 * * *\"" env:"KASDOCS_UPDATE_CRON" xor:"schedule"`
	Every time.Duration `help:"Keep running and repeat the update at this interval, e.g. 6h" env:"KASDOCS_UPDATE_EVERY" xor:"schedule"`
}

func (c *CLI) schedule() cli.UpdateSchedule {
	return cli.UpdateSchedule{Cron: c.Cron, Every: c.Every}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Exit)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, exit func(int)) int {
	config.LoadEnvFiles()

	c := &CLI{}
	parser, err := kong.New(c,
		kong.Name("kasdocs-update"),
		kong.Description("Refresh KasOS documentation metadata: stats, changelog, versions section and sitemap."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.Vars{"version": version.String("kasdocs-update")},
	)
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return 1
	}
	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	err = execute(ctx, c, stdout, stderr)
	return errors.NewCLIErrorAdapter(c.Verbose, slog.Default()).WithOutput(stderr).Handle(err)
}

func execute(ctx context.Context, c *CLI, stdout, stderr io.Writer) (err error) {
	sess, err := cli.NewSession(c.Options(&commands.Global{Stdout: stdout, Stderr: stderr}))
	if err != nil {
		return err
	}
	exec := cli.NewExecutor(sess)
	report := func(r *updater.Report) {
		printReport(stdout, r)
		if cerr := sess.Close(); cerr != nil {
			sess.Logger.Warn("Failed to write metrics file", logfields.Error(cerr))
		}
	}

	switch {
	case c.Cron != "":
		_, _ = fmt.Fprintf(stdout, "Scheduling documentation updates (%s)\n", c.Cron)
	case c.Every != 0:
		_, _ = fmt.Fprintf(stdout, "Scheduling documentation updates (every %s)\n", c.Every)
	default:
		_, _ = fmt.Fprintln(stdout, "Running daily documentation update...")
		report(exec.ExecuteUpdate(ctx))
		return nil
	}
	return exec.ExecuteScheduledUpdates(ctx, c.schedule(), report)
}

func printReport(w io.Writer, r *updater.Report) {
	for _, o := range r.Steps {
		o.Result.Match(
			func(summary string) { _, _ = fmt.Fprintf(w, "✓ %s: %s\n", o.Step, summary) },
			func(err error) { _, _ = fmt.Fprintf(w, "⚠ %s: %v\n", o.Step, err) },
		)
	}
	if r.OK() {
		_, _ = fmt.Fprintln(w, "Daily update completed successfully")
		return
	}
	_, _ = fmt.Fprintf(w, "Daily update finished with %d failed step(s)\n", len(r.Failed()))
}
