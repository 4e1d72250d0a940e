package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/recetario"
	"github.com/etnz/recetario/xlsx"
	"github.com/google/subcommands"
)

// setup writes the reference files in a temporary data directory, and points
// the global flags and stdout to temporary locations.
func setup(t *testing.T) (out *bytes.Buffer) {
	t.Helper()
	data, save := t.TempDir(), t.TempDir()

	recipes := xlsx.NewTable(recetario.ColMealType, recetario.ColDish, recetario.ColIngredient, recetario.ColDryQuantity, recetario.ColKey, recetario.ColGroup)
	recipes.Append(xlsx.S("Almuerzo"), xlsx.S("Lentil Stew"), xlsx.S("Rice"), xlsx.N(80), xlsx.S("cereal"), xlsx.S("Cereales"))
	recipes.Append(xlsx.S("Almuerzo"), xlsx.S("Lentil Stew"), xlsx.S("Lentils"), xlsx.N(60), xlsx.S("legume"), xlsx.S("Legumbres"))
	recipes.Append(xlsx.S("Desayuno"), xlsx.S("Porridge"), xlsx.S("Oats"), xlsx.N(40), xlsx.S("flakes"), xlsx.S("Cereales"))
	if err := xlsx.WriteFile(filepath.Join(data, recetario.RecipesFile), recipes); err != nil {
		t.Fatal(err)
	}

	equivalences := xlsx.NewTable(recetario.ColIngredient, recetario.ColKey, recetario.ColEquivalence, recetario.ColGroup)
	equivalences.Append(xlsx.S("Rice"), xlsx.S("cereal"), xlsx.N(100), xlsx.S("Cereales"))
	equivalences.Append(xlsx.S("Quinoa"), xlsx.S("cereal"), xlsx.N(120), xlsx.S("Cereales"))
	equivalences.Append(xlsx.S("Lentils"), xlsx.S("legume"), xlsx.N(90), xlsx.S("Legumbres"))
	equivalences.Append(xlsx.S("Oats"), xlsx.S("flakes"), xlsx.N(80), xlsx.S("Cereales"))
	if err := xlsx.WriteFile(filepath.Join(data, recetario.EquivalencesFile), equivalences); err != nil {
		t.Fatal(err)
	}

	oldData, oldSave, oldStdout, oldStyle := dataDir, saveDir, stdout, markdownStyle
	dataDir, saveDir = &data, &save
	out = new(bytes.Buffer)
	stdout, markdownStyle = out, ""
	t.Cleanup(func() { dataDir, saveDir, stdout, markdownStyle = oldData, oldSave, oldStdout, oldStyle })
	return out
}

// run parses args for c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %q: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestSettings(t *testing.T) {
	oldData := dataDir
	defer func() { dataDir = oldData }()

	empty := ""
	dataDir = &empty
	t.Setenv(EnvDataDir, "")
	if got := DataDir(); got != "data" {
		t.Errorf("DataDir() = %q, want data", got)
	}
	t.Setenv(EnvDataDir, "/from/env")
	if got := DataDir(); got != "/from/env" {
		t.Errorf("DataDir() = %q, want /from/env", got)
	}
	fromFlag := "/from/flag"
	dataDir = &fromFlag
	if got := DataDir(); got != "/from/flag" {
		t.Errorf("DataDir() = %q, want /from/flag", got)
	}
}

func TestChoicesFlag(t *testing.T) {
	c := choicesFlag{}
	for _, v := range []string{"Rice=Quinoa", " Lentils = ---- "} {
		if err := c.Set(v); err != nil {
			t.Fatalf("Set(%q) error = %v", v, err)
		}
	}
	if s, ok := c["Rice"].Substitute(); !ok || s != "Quinoa" {
		t.Errorf("Rice = %v, want Quinoa", c["Rice"])
	}
	if c["Lentils"] != recetario.NoSubstitution() {
		t.Errorf("Lentils = %v, want NoSubstitution", c["Lentils"])
	}
	for _, v := range []string{"Rice", "=Quinoa", "Rice="} {
		if err := c.Set(v); err == nil {
			t.Errorf("Set(%q) succeeded", v)
		}
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands() {
		if _, ok := c.Sub[cmd.Name()]; !ok {
			t.Errorf("Completion() has no %q subcommand", cmd.Name())
		}
	}
	if _, ok := c.Sub["cook"].Flags["d"]; !ok {
		t.Errorf("Completion() of cook has no -d flag")
	}
}
