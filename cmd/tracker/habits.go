package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trkerrors "github.com/dpoulsen/tracker/internal/errors"
	"github.com/dpoulsen/tracker/internal/tracker"
)

// habitCmd implements 'tracker habit' with its subcommands.
func habitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(habitAddCmd(), habitRmCmd())
	return cmd
}

// habitAddCmd implements 'tracker habit add'.
func habitAddCmd() *cobra.Command {
	var description string
	var targetDays int
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new habit",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				printError(err)
			}

			h, err := s.AddHabit(args[0], description, targetDays)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatHabit(h))
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Habit description")
	cmd.Flags().IntVarP(&targetDays, "target", "t", 7, "Target streak length in days")
	return cmd
}

// habitRmCmd implements 'tracker habit rm'.
func habitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a habit",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				printError(err)
			}

			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}

			if err := s.RemoveHabit(id); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Removed habit " + args[0]))
		},
	}
}

// habitsCmd implements 'tracker habits'.
func habitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "habits",
		Short: "List habits with streak progress",
		Run: func(_ *cobra.Command, _ []string) {
			s, err := openStore()
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatHabitList(s.ListHabits()))
		},
	}
}

// doneCmd implements 'tracker done'.
func doneCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "done <name>",
		Short: "Record a habit completion for today",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				printError(err)
			}

			h, ok := s.FindHabitByName(args[0])
			if !ok {
				printError(trkerrors.NotFoundError{Kind: "habit", Ref: args[0]})
			}

			day := tracker.Today()
			if date != "" {
				day, err = tracker.ParseDate(date)
				if err != nil {
					printError(trkerrors.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"})
				}
			}

			h, recorded, err := s.CompleteHabit(h.ID, day)
			if err != nil {
				printError(err)
			}
			if !recorded {
				printOutput(formatter.FormatMessage(fmt.Sprintf("Already completed %q on %s", h.Name, day)))
				return
			}
			printOutput(formatter.FormatHabit(h))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Completion date (YYYY-MM-DD, default today)")
	return cmd
}
