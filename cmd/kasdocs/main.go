package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/kasdocs/cmd/kasdocs/commands"
	"git.home.luguber.info/inful/kasdocs/internal/config"
	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Exit))
}

// run parses args and executes the selected command, returning the exit code.
func run(args []string, stdout, stderr io.Writer, exit func(int)) int {
	config.LoadEnvFiles()

	cli := &commands.CLI{}
	parser, err := kong.New(cli,
		kong.Name("kasdocs"),
		kong.Description("KasOS documentation builder: assemble partials into index.html and back."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.Vars{"version": version.String("kasdocs")},
	)
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return 1
	}

	if len(args) == 0 {
		ctx, _ := kong.Trace(parser, nil)
		_ = ctx.PrintUsage(false)
		return 0
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	err = kctx.Run(&commands.Global{Stdout: stdout, Stderr: stderr}, cli)
	// the session installed the configured logger as default
	return errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).WithOutput(stderr).Handle(err)
}
