package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/homelists/internal/checklist"
	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/tui"
	"github.com/idilsaglam/homelists/internal/ui"
)

// NewChecklistCommand builds the checklist command tree. With no
// subcommand it starts the interactive list.
func NewChecklistCommand() *cobra.Command {
	return newChecklistCommand(newApp())
}

func newChecklistCommand(a *app) *cobra.Command {
	svc := func() *checklist.Service { return checklist.NewService(a.store) }

	root := &cobra.Command{
		Use:   "checklist",
		Short: "Cyprus visa application checklist",
		Long: `checklist keeps the steps of a Cyprus visa application and which of them
are done. The default list is written on first run.`,
		Args:               noArgs,
		PersistentPreRunE:  a.attach,
		PersistentPostRunE: a.detach,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunChecklist(svc())
		},
	}
	a.bindFlags(root)

	var (
		output string
		group  bool
	)
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List checklist steps",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			items, err := svc().Init()
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			if output != outputTable {
				return encode(cmd.OutOrStdout(), output, items)
			}
			printChecklist(cmd.OutOrStdout(), items, group)
			return nil
		},
	}
	ls.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")
	ls.Flags().BoolVar(&group, "group", false, "group output by pending/done")

	toggle := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Toggle a step done/undone",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("toggle", args[0])
			if err != nil {
				return err
			}
			s := svc()
			if _, err := s.Init(); err != nil {
				return fmt.Errorf("load: %w", err)
			}
			items, err := s.Toggle(id)
			if err != nil {
				return fmt.Errorf("toggle: %w", err)
			}
			it := items[model.Find(items, id)]
			state := "pending"
			if it.Completed {
				state = "done"
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s: %s", state, it.Text))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a step (text can be multiple words)",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc()
			if _, err := s.Init(); err != nil {
				return fmt.Errorf("load: %w", err)
			}
			_, added, err := s.Add(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d", added.ID))
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a step",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("rm", args[0])
			if err != nil {
				return err
			}
			s := svc()
			if _, err := s.Init(); err != nil {
				return fmt.Errorf("load: %w", err)
			}
			if _, err := s.Delete(id); err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Replace the checklist with the default steps",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := svc().Reset()
			if err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("reset to %d steps", len(items)))
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive checklist",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunChecklist(svc())
		},
	}

	root.AddCommand(ls, toggle, add, rm, reset, tuiCmd, versionCommand("checklist"))
	return root
}

func versionCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", name, Version)
		},
	}
}

func printChecklist(w io.Writer, items []model.ChecklistItem, group bool) {
	t := ui.Current()
	d, p := model.Progress(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Cyprus Visa Application Checklist"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(items),
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: toggle with `checklist toggle <id>`"))
	fmt.Fprintln(w, ui.Panel(lines))
}

func flatLines(items []model.ChecklistItem) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no steps")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		text := ui.Truncate(it.Text, 80)
		if it.Completed {
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", it.ID)), ui.Checkbox(it.Completed), text))
	}
	return out
}

func groupLines(items []model.ChecklistItem) []string {
	t := ui.Current()
	var pend, done []model.ChecklistItem
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	section := func(title string, part []model.ChecklistItem) []string {
		lines := []string{t.Accent.Render(title)}
		if len(part) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(part)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
