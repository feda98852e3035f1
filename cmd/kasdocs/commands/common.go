package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/kasdocs/internal/cli"
)

// Global context passed to subcommands.
type Global struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Flags are the global flags shared by kasdocs and kasdocs-update.
type Flags struct {
	Root        string           `short:"r" help:"Documentation root directory" default:"." env:"KASDOCS_ROOT" type:"path"`
	Config      string           `short:"c" help:"Configuration file path (default: <root>/kasdocs.yaml)" type:"path"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics in textfile format to this path" type:"path"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
}

// Options converts the flags into session options.
func (f *Flags) Options(g *Global) cli.Options {
	return cli.Options{
		Root:        f.Root,
		ConfigPath:  f.Config,
		Verbose:     f.Verbose,
		MetricsFile: f.MetricsFile,
		LogOutput:   g.Stderr,
	}
}

// CLI definition & global flags of the kasdocs build tool.
type CLI struct {
	Flags `embed:""`

	Build   BuildCmd   `cmd:"" help:"Build documentation from partials"`
	Extract ExtractCmd `cmd:"" help:"Extract sections from existing file to partials"`
	Watch   WatchCmd   `cmd:"" help:"Watch for changes and auto-rebuild (not implemented yet)"`
}

// openSession starts a session and returns a closer that flushes metrics.
func openSession(g *Global, f *Flags) (*cli.Session, func() error, error) {
	sess, err := cli.NewSession(f.Options(g))
	if err != nil {
		return nil, nil, err
	}
	return sess, sess.Close, nil
}

// stdout returns the writer for human-readable progress lines.
func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Global) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.stdout(), format, args...)
}
