package main

import (
	"github.com/spf13/cobra"
)

func (a *app) wheelCommand() *cobra.Command {
	wheel := &cobra.Command{
		Use:   "wheel",
		Short: "Spin a weighted wheel of choices",
	}
	wheel.AddCommand(
		a.wheelAddCommand(),
		a.wheelRemoveCommand(),
		a.wheelRestoreCommand(),
		a.wheelListCommand(),
		a.wheelSpinCommand(),
		a.wheelClearCommand(),
	)
	return wheel
}

func (a *app) wheelAddCommand() *cobra.Command {
	var weight uint32
	cmd := &cobra.Command{
		Use:   "add LABEL",
		Short: "Add a choice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			choice, err := a.wheel.Add(args[0], weight)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Added %s (weight %d)", choice.Label, choice.Weight)
			return nil
		},
	}
	cmd.Flags().Uint32VarP(&weight, "weight", "w", 1, "relative size of the slice")
	return cmd
}

func (a *app) wheelRemoveCommand() *cobra.Command {
	var forget bool
	cmd := &cobra.Command{
		Use:   "remove LABEL",
		Short: "Set a choice aside, or forget it with --forget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.wheel.Remove(args[0], !forget)
		},
	}
	cmd.Flags().BoolVar(&forget, "forget", false, "delete the choice instead of setting it aside")
	return cmd
}

func (a *app) wheelRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore LABEL",
		Short: "Put a choice set aside back on the wheel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.wheel.Restore(args[0])
		},
	}
}

func (a *app) wheelListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List choices with their chance to win",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wheel, err := a.wheel.Wheel()
			if err != nil {
				return err
			}
			a.renderer(cmd).RenderWheel(wheel)
			return nil
		},
	}
}

func (a *app) wheelSpinCommand() *cobra.Command {
	var setAside bool
	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Draw a choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			winner, err := a.wheel.Spin(a.rng)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "🎯 %s", winner.Label)
			if setAside {
				return a.wheel.Remove(winner.Label, true)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&setAside, "remove", "r", false, "set the winner aside after the draw")
	return cmd
}

func (a *app) wheelClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every choice, including the ones set aside",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.wheel.Clear(); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Wheel cleared")
			return nil
		},
	}
}
