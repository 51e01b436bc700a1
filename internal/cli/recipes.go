package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/recipes"
	"github.com/idilsaglam/homelists/internal/tui"
	"github.com/idilsaglam/homelists/internal/ui"
)

// NewRecipesCommand builds the recipes command tree. With no subcommand
// it starts the interactive recipe book.
func NewRecipesCommand() *cobra.Command {
	return newRecipesCommand(newApp())
}

func newRecipesCommand(a *app) *cobra.Command {
	svc := func() (*recipes.Service, error) {
		s := recipes.NewService(a.store)
		if _, err := s.Init(); err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		return s, nil
	}

	root := &cobra.Command{
		Use:   "recipes",
		Short: "A recipe book that scales ingredients to the portions you cook",
		Long: `recipes keeps a small recipe book. Changing a recipe's portion count
rescales every ingredient amount proportionally. A default book is written
on first run.`,
		Args:               noArgs,
		PersistentPreRunE:  a.attach,
		PersistentPostRunE: a.detach,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunRecipes(recipes.NewService(a.store))
		},
	}
	a.bindFlags(root)

	var output string
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List recipes",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			s, err := svc()
			if err != nil {
				return err
			}
			rs, err := s.List()
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			if output != outputTable {
				return encode(cmd.OutOrStdout(), output, rs)
			}
			printRecipeList(cmd.OutOrStdout(), rs)
			return nil
		},
	}
	ls.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")

	var (
		showOutput   string
		showPortions int
	)
	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe, optionally scaled without saving",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(showOutput); err != nil {
				return err
			}
			id, err := parseID("show", args[0])
			if err != nil {
				return err
			}
			s, err := svc()
			if err != nil {
				return err
			}
			r, err := s.Get(id)
			if err != nil {
				return fmt.Errorf("show: %w", err)
			}
			if showPortions != 0 {
				if err := model.ValidatePortions(showPortions); err != nil {
					return usagef("show: %v", err)
				}
				if r, err = model.Rescale(r, showPortions); err != nil {
					return fmt.Errorf("show: %w", err)
				}
			}
			if showOutput != outputTable {
				return encode(cmd.OutOrStdout(), showOutput, r)
			}
			printRecipe(cmd.OutOrStdout(), r)
			return nil
		},
	}
	show.Flags().StringVarP(&showOutput, "output", "o", outputTable, "output format: table, json or yaml")
	show.Flags().IntVarP(&showPortions, "portions", "p", 0, "preview scaled to this many portions (1-10)")

	scale := &cobra.Command{
		Use:   "scale <id> <portions>",
		Short: "Rescale a recipe to a new portion count and save it",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("scale", args[0])
			if err != nil {
				return err
			}
			portions, err := strconv.Atoi(args[1])
			if err != nil {
				return usagef("scale: not a number: %s", args[1])
			}
			if err := model.ValidatePortions(portions); err != nil {
				return usagef("scale: %v", err)
			}
			s, err := svc()
			if err != nil {
				return err
			}
			r, err := s.Scale(id, portions)
			if err != nil {
				return fmt.Errorf("scale: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s now serves %d", r.Name, r.Portions))
			return nil
		},
	}

	var (
		addPortions     int
		addIngredients  []string
		addInstructions string
	)
	add := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a recipe",
		Example: `  recipes add Shakshuka --portions 2 \
    --ingredient "Eggs:4" --ingredient "Tomatoes:400:g" \
    --instructions "Simmer tomatoes, crack in eggs, cover until set."`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := model.ValidatePortions(addPortions); err != nil {
				return usagef("add: %v", err)
			}
			r := model.Recipe{
				Name:         strings.TrimSpace(strings.Join(args, " ")),
				Instructions: addInstructions,
				Portions:     addPortions,
			}
			for _, raw := range addIngredients {
				in, err := model.ParseIngredient(raw)
				if err != nil {
					return usagef("add: %v", err)
				}
				r.Ingredients = append(r.Ingredients, in)
			}
			s, err := svc()
			if err != nil {
				return err
			}
			saved, err := s.Add(r)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d %s", saved.ID, saved.Name))
			return nil
		},
	}
	add.Flags().IntVarP(&addPortions, "portions", "p", 2, "portions the amounts are written for (1-10)")
	add.Flags().StringArrayVarP(&addIngredients, "ingredient", "i", nil, `ingredient as "name:amount[:unit]" (repeatable)`)
	add.Flags().StringVar(&addInstructions, "instructions", "", "preparation instructions")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a recipe",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("rm", args[0])
			if err != nil {
				return err
			}
			s, err := svc()
			if err != nil {
				return err
			}
			if err := s.Delete(id); err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Replace the recipe book with the default recipes",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := recipes.NewService(a.store).Reset()
			if err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("reset to %d recipes", len(rs)))
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive recipe book",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunRecipes(recipes.NewService(a.store))
		},
	}

	root.AddCommand(ls, show, scale, add, rm, reset, tuiCmd, versionCommand("recipes"))
	return root
}

func printRecipeList(w io.Writer, rs []model.Recipe) {
	t := ui.Current()
	lines := []string{t.Title.Render("Recipe Book") + "  " + t.Muted.Render(fmt.Sprintf("%d recipes", len(rs))), ""}
	if len(rs) == 0 {
		lines = append(lines, t.Muted.Render("no recipes"))
	}
	for _, r := range rs {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", r.ID)),
			ui.Truncate(r.Name, 60),
			t.Muted.Render(fmt.Sprintf("(%d portions, %d ingredients)", r.Portions, len(r.Ingredients)))))
	}
	lines = append(lines, "", t.Muted.Render("Tip: `recipes show <id> --portions 4` previews a rescale"))
	fmt.Fprintln(w, ui.Panel(lines))
}

func printRecipe(w io.Writer, r model.Recipe) {
	t := ui.Current()
	lines := []string{
		t.Title.Render(r.Name) + "  " + t.Muted.Render(fmt.Sprintf("#%d", r.ID)),
		t.Accent.Render(fmt.Sprintf("Serves %d", r.Portions)),
		"",
		t.Accent.Render("Ingredients"),
	}
	if len(r.Ingredients) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	}
	for _, in := range r.Ingredients {
		lines = append(lines, "• "+in.String())
	}
	if r.Instructions != "" {
		lines = append(lines, "", t.Accent.Render("Instructions"), r.Instructions)
	}
	fmt.Fprintln(w, ui.Panel(lines))
}
