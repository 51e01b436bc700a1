package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/homelists/internal/config"
	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/store"
	"github.com/idilsaglam/homelists/internal/store/memstore"
)

type env struct {
	configDir, dataDir string
}

func newEnv(t *testing.T) env {
	t.Helper()
	for _, k := range []string{"HOMELISTS_BACKEND", "HOMELISTS_THEME", "HOMELISTS_DATA_DIR", "HOMELISTS_CONFIG_DIR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	dir := t.TempDir()
	return env{configDir: filepath.Join(dir, "config"), dataDir: filepath.Join(dir, "data")}
}

func (e env) run(t *testing.T, newCmd func() *cobra.Command, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	cmd := newCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	code = Execute(cmd, full)
	return code, out.String(), errOut.String()
}

func TestChecklist_LsSeeds(t *testing.T) {
	e := newEnv(t)
	code, out, _ := e.run(t, NewChecklistCommand, "ls", "-o", "json")
	require.Equal(t, exitOK, code)

	var items []model.ChecklistItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 14)
	assert.Equal(t, "Check passport validity (must be valid for at least 6 months)", items[0].Text)

	_, err := os.Stat(filepath.Join(e.dataDir, "cyprusVisaTodos.json"))
	assert.NoError(t, err)
}

func TestChecklist_ToggleAddRm(t *testing.T) {
	e := newEnv(t)

	code, out, _ := e.run(t, NewChecklistCommand, "toggle", "1")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "done: Check passport validity")

	code, out, _ = e.run(t, NewChecklistCommand, "add", "Buy", "travel", "adapter")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "added #15")

	code, _, _ = e.run(t, NewChecklistCommand, "rm", "2")
	require.Equal(t, exitOK, code)

	_, out, _ = e.run(t, NewChecklistCommand, "ls", "--output", "yaml")
	var items []model.ChecklistItem
	require.NoError(t, yaml.Unmarshal([]byte(out), &items))
	require.Len(t, items, 14)
	assert.True(t, items[0].Completed)
	assert.Equal(t, 3, items[1].ID)
	assert.Equal(t, "Buy travel adapter", items[13].Text)
}

func TestChecklist_TableOutput(t *testing.T) {
	e := newEnv(t)
	e.run(t, NewChecklistCommand, "toggle", "4")

	code, out, _ := e.run(t, NewChecklistCommand, "ls", "--group")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Cyprus Visa Application Checklist")
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "Book flight tickets")
}

func TestChecklist_Errors(t *testing.T) {
	e := newEnv(t)
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown id", []string{"toggle", "99"}, exitError},
		{"bad id", []string{"toggle", "abc"}, exitUsage},
		{"missing arg", []string{"rm"}, exitUsage},
		{"unknown command", []string{"frobnicate"}, exitUsage},
		{"bad output", []string{"ls", "-o", "xml"}, exitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := e.run(t, NewChecklistCommand, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestChecklist_Reset(t *testing.T) {
	e := newEnv(t)
	e.run(t, NewChecklistCommand, "rm", "1")
	code, out, _ := e.run(t, NewChecklistCommand, "reset")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "reset to 14 steps")
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	code, out, _ := e.run(t, NewRecipesCommand, "version")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "recipes v"+Version+"\n", out)
}

func TestRecipes_ScaleQuinoaBowl(t *testing.T) {
	e := newEnv(t)

	code, out, _ := e.run(t, NewRecipesCommand, "scale", "1", "4")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Quinoa Buddha Bowl now serves 4")

	_, out, _ = e.run(t, NewRecipesCommand, "show", "1", "-o", "json")
	var r model.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 4, r.Portions)
	assert.InDelta(t, 2.0, r.Ingredients[0].Amount, 1e-9)
}

func TestRecipes_ShowPreviewDoesNotSave(t *testing.T) {
	e := newEnv(t)

	code, out, _ := e.run(t, NewRecipesCommand, "show", "1", "--portions", "6")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Serves 6")
	assert.Contains(t, out, "3 cup Quinoa")

	_, out, _ = e.run(t, NewRecipesCommand, "show", "1", "-o", "json")
	var r model.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 2, r.Portions)
}

func TestRecipes_AddAndRm(t *testing.T) {
	e := newEnv(t)

	code, out, _ := e.run(t, NewRecipesCommand, "add", "Shakshuka",
		"--portions", "2",
		"--ingredient", "Eggs:4",
		"--ingredient", "Tomatoes:400:g",
		"--instructions", "Simmer tomatoes, crack in eggs.")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "added #4 Shakshuka")

	_, out, _ = e.run(t, NewRecipesCommand, "ls", "-o", "json")
	var rs []model.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	require.Len(t, rs, 4)
	assert.Equal(t, []model.Ingredient{{Name: "Eggs", Amount: 4}, {Name: "Tomatoes", Amount: 400, Unit: "g"}}, rs[3].Ingredients)

	code, _, _ = e.run(t, NewRecipesCommand, "rm", "4")
	require.Equal(t, exitOK, code)
	code, _, _ = e.run(t, NewRecipesCommand, "rm", "4")
	assert.Equal(t, exitError, code)
}

func TestRecipes_Errors(t *testing.T) {
	e := newEnv(t)
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"portions too high", []string{"scale", "1", "11"}, exitUsage},
		{"portions zero", []string{"scale", "1", "0"}, exitUsage},
		{"portions not a number", []string{"scale", "1", "many"}, exitUsage},
		{"unknown recipe", []string{"scale", "42", "3"}, exitError},
		{"bad ingredient", []string{"add", "Soup", "-i", "water"}, exitUsage},
		{"NaN amount", []string{"add", "Soup", "-i", "Salt:NaN"}, exitUsage},
		{"infinite amount", []string{"add", "Soup", "-i", "Salt:Inf:g"}, exitUsage},
		{"preview out of range", []string{"show", "1", "-p", "20"}, exitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := e.run(t, NewRecipesCommand, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestRecipes_SQLiteBackend(t *testing.T) {
	e := newEnv(t)
	code, _, _ := e.run(t, NewRecipesCommand, "--backend", "sqlite", "scale", "1", "4")
	require.Equal(t, exitOK, code)

	_, out, _ := e.run(t, NewRecipesCommand, "--backend", "sqlite", "show", "1", "-o", "json")
	var r model.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 4, r.Portions)

	_, err := os.Stat(filepath.Join(e.dataDir, "homelists.db"))
	assert.NoError(t, err)
}

func TestUnknownBackend(t *testing.T) {
	e := newEnv(t)
	code, _, stderr := e.run(t, NewRecipesCommand, "--backend", "etcd", "ls")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown backend")

	t.Setenv("HOMELISTS_BACKEND", "etcd")
	code, _, stderr = e.run(t, NewRecipesCommand, "ls")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unknown backend")
}

func TestFlagAndArgErrorsAreUsage(t *testing.T) {
	e := newEnv(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"ls", "--colour"}},
		{"unknown shorthand", []string{"ls", "-z"}},
		{"flag needs a value", []string{"ls", "-o"}},
		{"flag not an int", []string{"add", "Soup", "--portions", "lots"}},
		{"too many args", []string{"scale", "1", "2", "3"}},
		{"no name", []string{"add"}},
		{"stray root arg", []string{"frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := e.run(t, NewRecipesCommand, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestExecute_ErrorTextDoesNotPickExitCode(t *testing.T) {
	cmd := &cobra.Command{
		Use: "x",
		RunE: func(*cobra.Command, []string) error {
			return errors.New(`invalid argument "x" in stored recipe`)
		},
	}
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	assert.Equal(t, exitError, Execute(cmd, nil))
	assert.Contains(t, errOut.String(), "invalid argument")
}

// closeCounter records how often the CLI closes its store.
type closeCounter struct {
	*memstore.Store
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return c.Store.Close()
}

func TestStoreClosedAfterEveryCommand(t *testing.T) {
	tests := []struct {
		name   string
		newCmd func(*app) *cobra.Command
		args   []string
		code   int
	}{
		{"recipes ok", newRecipesCommand, []string{"scale", "1", "4"}, exitOK},
		{"recipes failing", newRecipesCommand, []string{"scale", "42", "4"}, exitError},
		{"checklist ok", newChecklistCommand, []string{"toggle", "1"}, exitOK},
		{"checklist failing", newChecklistCommand, []string{"rm", "99"}, exitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			st := &closeCounter{Store: memstore.New()}
			a := newApp()
			a.openStore = func(config.Config) (store.Store, error) { return st, nil }

			code, _, _ := e.run(t, func() *cobra.Command { return tt.newCmd(a) }, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, 1, st.closed)
		})
	}
}
