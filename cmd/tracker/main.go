package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dpoulsen/tracker/internal/config"
	trkerrors "github.com/dpoulsen/tracker/internal/errors"
	"github.com/dpoulsen/tracker/internal/output"
	"github.com/dpoulsen/tracker/internal/store"
	"github.com/dpoulsen/tracker/internal/tracker"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	dataFile   string
	formatter  output.Formatter
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "A personal task and habit tracker",
		Long:  "tracker - A file-based personal task and habit tracker with streaks.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Path to the data file")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		showCmd(),
		completeCmd(),
		startCmd(),
		cancelCmd(),
		rmCmd(),
		habitCmd(),
		habitsCmd(),
		doneCmd(),
		statsCmd(),
		serveCmd(),
		replCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openStore() (*store.Store, error) {
	path := dataFile
	if path == "" {
		cfg, err := config.Load("")
		if err != nil {
			return nil, err
		}
		path = cfg.DataFile
	}
	return store.Open(path)
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, trkerrors.ValidationError{Field: "id", Reason: "must be an integer"}
	}
	return id, nil
}

// addCmd implements 'tracker add'.
func addCmd() *cobra.Command {
	var description string
	var priority string
	var tags []string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			s, err := openStore()
			if err != nil {
				printError(err)
			}

			p := tracker.Priority(priority)
			if !tracker.IsValidPriority(p) {
				printError(trkerrors.ValidationError{Field: "priority", Reason: "must be low, medium or high"})
			}

			t, err := s.AddTask(args[0], description, p, tags)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low, medium, high)")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags (repeatable)")
	return cmd
}

// listCmd implements 'tracker list'.
func listCmd() *cobra.Command {
	var showAll bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Run: func(_ *cobra.Command, _ []string) {
			s, err := openStore()
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTaskList(s.ListTasks(showAll)))
		},
	}
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include completed tasks")
	return cmd
}

// showCmd implements 'tracker show'.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
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

			t, ok := s.FindTask(id)
			if !ok {
				printError(trkerrors.NotFoundError{Kind: "task", Ref: args[0]})
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// completeCmd implements 'tracker complete'.
func completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
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

			t, err := s.CompleteTask(id)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// startCmd implements 'tracker start'.
func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Mark a task as in progress",
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

			t, err := s.StartTask(id)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// cancelCmd implements 'tracker cancel'.
func cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a task",
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

			t, err := s.CancelTask(id)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// rmCmd implements 'tracker rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
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

			if err := s.RemoveTask(id); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Removed task " + args[0]))
		},
	}
}
