package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	trkerrors "github.com/dpoulsen/tracker/internal/errors"
	"github.com/dpoulsen/tracker/internal/store"
	"github.com/dpoulsen/tracker/internal/tracker"
)

const replHelp = `Commands:
  list            Show pending tasks
  list all        Show all tasks
  add task        Add a task (prompts for fields)
  complete <id>   Mark a task as completed
  habits          Show habits with streaks
  add habit       Add a habit (prompts for fields)
  done <name>     Record a habit completion for today
  stats           Show summary statistics
  help            Show this help
  quit            Exit
`

// replCmd implements 'tracker repl', an interactive session over stdin.
func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Run: func(_ *cobra.Command, _ []string) {
			s, err := openStore()
			if err != nil {
				printError(err)
			}
			runRepl(s, os.Stdin, os.Stdout)
		},
	}
}

// runRepl drives the interactive loop. It reads commands line by line and
// writes everything through the formatter so --json works here too.
func runRepl(s *store.Store, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, formatter.FormatMessage("tracker interactive session ('help' for commands)"))

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			fmt.Fprint(out, replHelp)
		case "list":
			fmt.Fprint(out, formatter.FormatTaskList(s.ListTasks(arg == "all")))
		case "add":
			replAdd(s, scanner, out, arg)
		case "complete":
			replComplete(s, out, arg)
		case "habits":
			fmt.Fprint(out, formatter.FormatHabitList(s.ListHabits()))
		case "done":
			replDone(s, out, arg)
		case "stats":
			fmt.Fprint(out, formatter.FormatStats(s.Stats()))
		default:
			fmt.Fprint(out, formatter.FormatMessage(fmt.Sprintf("Unknown command %q ('help' for commands)", cmd)))
		}
	}
}

func replAdd(s *store.Store, scanner *bufio.Scanner, out io.Writer, kind string) {
	switch kind {
	case "task":
		title := prompt(scanner, out, "Title: ")
		description := prompt(scanner, out, "Description (optional): ")
		priority := prompt(scanner, out, "Priority (low/medium/high) [medium]: ")
		if priority == "" {
			priority = string(tracker.PriorityMedium)
		}

		t, err := s.AddTask(title, description, tracker.Priority(priority), nil)
		if err != nil {
			fmt.Fprint(out, formatter.FormatError(err))
			return
		}
		fmt.Fprint(out, formatter.FormatTask(t))
	case "habit":
		name := prompt(scanner, out, "Name: ")
		description := prompt(scanner, out, "Description (optional): ")
		target := prompt(scanner, out, "Target days [7]: ")

		targetDays := 7
		if target != "" {
			n, err := strconv.Atoi(target)
			if err != nil {
				fmt.Fprint(out, formatter.FormatError(trkerrors.ValidationError{Field: "target_days", Reason: "must be an integer"}))
				return
			}
			targetDays = n
		}

		h, err := s.AddHabit(name, description, targetDays)
		if err != nil {
			fmt.Fprint(out, formatter.FormatError(err))
			return
		}
		fmt.Fprint(out, formatter.FormatHabit(h))
	default:
		fmt.Fprint(out, formatter.FormatMessage("Usage: add task | add habit"))
	}
}

func replComplete(s *store.Store, out io.Writer, arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprint(out, formatter.FormatMessage("Usage: complete <id>"))
		return
	}

	t, err := s.CompleteTask(id)
	if err != nil {
		fmt.Fprint(out, formatter.FormatError(err))
		return
	}
	fmt.Fprint(out, formatter.FormatTask(t))
}

func replDone(s *store.Store, out io.Writer, name string) {
	if name == "" {
		fmt.Fprint(out, formatter.FormatMessage("Usage: done <name>"))
		return
	}

	h, ok := s.FindHabitByName(name)
	if !ok {
		fmt.Fprint(out, formatter.FormatError(trkerrors.NotFoundError{Kind: "habit", Ref: name}))
		return
	}

	day := tracker.Today()
	h, recorded, err := s.CompleteHabit(h.ID, day)
	if err != nil {
		fmt.Fprint(out, formatter.FormatError(err))
		return
	}
	if !recorded {
		fmt.Fprint(out, formatter.FormatMessage(fmt.Sprintf("Already completed %q on %s", h.Name, day)))
		return
	}
	fmt.Fprint(out, formatter.FormatHabit(h))
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
