package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"team-lab/projection"
	"team-lab/services"

	"github.com/spf13/cobra"
)

type app struct {
	teams   services.ITeamService
	wheel   services.IWheelService
	rng     *rand.Rand
	colours bool
}

func newApp(teams services.ITeamService, wheel services.IWheelService, rng *rand.Rand, colours bool) *app {
	return &app{teams: teams, wheel: wheel, rng: rng, colours: colours}
}

func (a *app) renderer(cmd *cobra.Command) *projection.Renderer {
	return projection.NewRenderer(cmd.OutOrStdout(), a.colours)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "teams",
		Short:         "Split players into balanced teams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.rosterCommand(),
		a.countCommand(),
		a.createCommand(),
		a.recreateCommand(),
		a.swapCommand(),
		a.showCommand(),
		a.copyCommand(),
		a.resetCommand(),
		a.wheelCommand(),
	)
	return root
}

// parseIndex turns a 1-based position typed by a user into a slice index.
func parseIndex(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q: expected a number starting at 1", what, arg)
	}
	return n - 1, nil
}

func writeLine(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
