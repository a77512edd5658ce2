package main

import (
	"fmt"
	"team-lab/domain"
	"team-lab/errors"
	"team-lab/storage"

	"github.com/spf13/cobra"
)

func (a *app) rosterCommand() *cobra.Command {
	roster := &cobra.Command{
		Use:   "roster",
		Short: "Edit the list of players",
	}
	roster.AddCommand(
		a.rosterAddCommand(),
		a.rosterEditCommand(),
		a.rosterRemoveCommand(),
		a.rosterListCommand(),
		a.rosterImportCommand(),
		a.rosterExportCommand(),
	)
	return roster
}

func (a *app) rosterAddCommand() *cobra.Command {
	var skill uint32
	var captain bool
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.teams.AddParticipant(domain.Participant{Name: args[0], Skill: skill, IsCaptain: captain})
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Added %s", p.PrettyName(false))
			return nil
		},
	}
	cmd.Flags().Uint32VarP(&skill, "skill", "s", 0, "skill rating, 0 to 35000")
	cmd.Flags().BoolVarP(&captain, "captain", "c", false, "make the player a team captain")
	return cmd
}

func (a *app) rosterEditCommand() *cobra.Command {
	var name string
	var skill uint32
	var captain bool
	cmd := &cobra.Command{
		Use:   "edit POSITION",
		Short: "Change a player; only the given flags are updated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0], "position")
			if err != nil {
				return err
			}
			roster, err := a.teams.Roster()
			if err != nil {
				return err
			}
			if index >= len(roster.Participants) {
				return fmt.Errorf("%w: position %s of %d", errors.ErrIndexOutOfRange, args[0], len(roster.Participants))
			}
			p := roster.Participants[index]
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("skill") {
				p.Skill = skill
			}
			if cmd.Flags().Changed("captain") {
				p.IsCaptain = captain
			}
			if p, err = a.teams.UpdateParticipant(index, p); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Updated %s", p.PrettyName(false))
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().Uint32VarP(&skill, "skill", "s", 0, "new skill rating")
	cmd.Flags().BoolVarP(&captain, "captain", "c", false, "captain flag")
	return cmd
}

func (a *app) rosterRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove POSITION",
		Short: "Remove a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0], "position")
			if err != nil {
				return err
			}
			p, err := a.teams.RemoveParticipant(index)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Removed %s", p.DisplayName())
			return nil
		},
	}
}

func (a *app) rosterListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := a.teams.Roster()
			if err != nil {
				return err
			}
			a.renderer(cmd).RenderRoster(roster)
			return nil
		},
	}
}

func (a *app) rosterImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the players with the ones in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := storage.LoadRosterFile(args[0])
			if err != nil {
				return err
			}
			if err = a.teams.ImportRoster(roster); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Imported %d players", len(roster.Participants))
			return nil
		},
	}
}

func (a *app) rosterExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the players to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := a.teams.Roster()
			if err != nil {
				return err
			}
			return storage.SaveRosterFile(args[0], roster)
		},
	}
}
