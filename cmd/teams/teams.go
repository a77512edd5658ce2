package main

import (
	"fmt"
	"strconv"
	"team-lab/domain"
	"team-lab/projection"

	"github.com/spf13/cobra"
)

func (a *app) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count N",
		Short: "Set the number of teams (clears captains)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid team count %q", args[0])
			}
			if err = a.teams.SetTeamCount(n); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Teams: %d", n)
			return nil
		},
	}
}

func (a *app) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Split the players into balanced teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.teams.CreateTeams(a.rng)
			if err != nil {
				return err
			}
			return a.renderTeams(cmd, result)
		},
	}
}

func (a *app) recreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recreate",
		Short: "Draw the teams again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.teams.Recreate(a.rng)
			if err != nil {
				return err
			}
			return a.renderTeams(cmd, result)
		},
	}
}

func (a *app) swapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "swap TEAM_A PLAYER_A TEAM_B PLAYER_B",
		Short: "Exchange two players between teams",
		Long:  "Exchange two players between teams. Positions start at 1; captains cannot be swapped in.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices := make([]int, len(args))
			for i, arg := range args {
				index, err := parseIndex(arg, "position")
				if err != nil {
					return err
				}
				indices[i] = index
			}
			result, err := a.teams.Swap(indices[0], indices[1], indices[2], indices[3])
			if err != nil {
				return err
			}
			return a.renderTeams(cmd, result)
		},
	}
}

func (a *app) showCommand() *cobra.Command {
	var evaluate bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the last teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetch := a.teams.Teams
			if evaluate {
				fetch = a.teams.Evaluate
			}
			result, err := fetch()
			if err != nil {
				return err
			}
			return a.renderTeams(cmd, result)
		},
	}
	cmd.Flags().BoolVarP(&evaluate, "evaluate", "e", false, "recompute the imbalance after swaps")
	return cmd
}

func (a *app) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Print the last teams as plain text, ready to paste",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.teams.Teams()
			if err != nil {
				return err
			}
			hide, err := a.hideSkills()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(projection.ExportText(result, hide)))
			return err
		},
	}
}

func (a *app) resetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget every player and team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.teams.Reset(); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Roster cleared")
			return nil
		},
	}
}

func (a *app) renderTeams(cmd *cobra.Command, result domain.PartitionResult) error {
	hide, err := a.hideSkills()
	if err != nil {
		return err
	}
	a.renderer(cmd).RenderTeams(result, hide)
	return nil
}

func (a *app) hideSkills() (bool, error) {
	roster, err := a.teams.Roster()
	if err != nil {
		return false, err
	}
	return roster.HideSkills(), nil
}
