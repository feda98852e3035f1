package commands

import (
	"context"
	stderrors "errors"

	"git.home.luguber.info/inful/kasdocs/internal/cli"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct{}

func (b *BuildCmd) Run(g *Global, root *CLI) (err error) {
	sess, closeSession, err := openSession(g, &root.Flags)
	if err != nil {
		return err
	}
	defer func() { err = stderrors.Join(err, closeSession()) }()

	g.printf("Building KasOS documentation...\n")
	res := cli.NewExecutor(sess).ExecuteBuild(context.Background())
	if res.IsErr() {
		g.printf("Build failed\n")
		return res.UnwrapErr()
	}

	resp := res.Unwrap()
	for _, id := range resp.Result.Loaded {
		g.printf("✓ Loaded section: %s\n", id)
	}
	for _, f := range resp.Result.Failed {
		g.printf("⚠ Failed to load section %s: %v\n", f.ID, f.Err)
	}
	if !resp.Result.PlaceholderFound {
		g.printf("⚠ Template has no placeholder; written unchanged\n")
	}
	g.printf("Documentation built successfully\n")
	g.printf("Output: %s\n", resp.Result.OutputPath)
	if resp.Result.Stats != nil {
		g.printf("Build stats saved to %s\n", sess.Site.BuildStatsPath())
	}
	return nil
}
