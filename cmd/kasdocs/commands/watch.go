package commands

// WatchCmd implements the 'watch' command. Rebuilding on change is not
// implemented; the command only reports that and exits successfully.
type WatchCmd struct{}

func (w *WatchCmd) Run(g *Global, _ *CLI) error {
	g.printf("Starting watch mode...\n")
	g.printf("Watch mode is not implemented; run 'kasdocs build' after editing partials.\n")
	return nil
}
