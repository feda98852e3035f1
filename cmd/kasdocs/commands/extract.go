package commands

import (
	"context"
	stderrors "errors"

	"git.home.luguber.info/inful/kasdocs/internal/cli"
)

// ExtractCmd implements the 'extract' command.
type ExtractCmd struct {
	Source string `arg:"" optional:"" help:"Combined document to split (default: <root>/index.html)" type:"path"`
}

func (x *ExtractCmd) Run(g *Global, root *CLI) (err error) {
	sess, closeSession, err := openSession(g, &root.Flags)
	if err != nil {
		return err
	}
	defer func() { err = stderrors.Join(err, closeSession()) }()

	g.printf("Extracting sections from existing documentation...\n")
	res := cli.NewExecutor(sess).ExecuteExtract(context.Background(), cli.ExtractRequest{Source: x.Source})
	if res.IsErr() {
		g.printf("Extraction failed\n")
		return res.UnwrapErr()
	}

	report := res.Unwrap()
	for _, id := range report.Written {
		g.printf("✓ Extracted: %s\n", id)
	}
	for _, id := range report.Unordered {
		g.printf("⚠ %s is not in the build order and will not be assembled\n", id)
	}
	for _, f := range report.Failed {
		g.printf("✗ Could not extract %s: %v\n", f.ID, f.Err)
	}
	if len(report.Failed) == 0 {
		g.printf("All sections extracted successfully\n")
	} else {
		g.printf("Extracted %d sections, %d failed\n", len(report.Written), len(report.Failed))
	}
	return nil
}
