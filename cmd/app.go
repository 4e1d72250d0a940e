// Package cmd implements the rcp command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/recetario"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Directory of the reference files "+recetario.RecipesFile+" and "+recetario.EquivalencesFile+" (default \"data\", or $"+EnvDataDir+")")
var saveDir = flag.String("save-dir", "", "Directory of the history file "+recetario.HistoryFile+" (default \"save\", or $"+EnvSaveDir+")")
var verbose = flag.Bool("v", false, "Print diagnostic logs on stderr (or $"+EnvVerbose+")")

// stdout is where commands print their reports.
var stdout io.Writer = os.Stdout

// markdownStyle is the glamour style of the reports, empty prints raw markdown.
var markdownStyle = "auto"

// DataDir returns the reference data directory: the flag, the environment, or "data".
func DataDir() string { return setting(*dataDir, EnvDataDir, "data") }

// SaveDir returns the history directory: the flag, the environment, or "save".
func SaveDir() string { return setting(*saveDir, EnvSaveDir, "save") }

// Verbose reports whether diagnostic logs are enabled.
func Verbose() bool {
	if *verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// setting resolves a configuration value. The environment is read at call time
// so that a .env file loaded by main is taken into account.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

var logger *zap.Logger

// Logger returns the application logger, a no-op logger unless verbose.
func Logger() *zap.Logger {
	if logger != nil {
		return logger
	}
	if !Verbose() {
		logger = zap.NewNop()
		return logger
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), zapcore.DebugLevel)
	logger = zap.New(core, zap.Development(), zap.AddCaller())
	return logger
}

// OpenKitchen loads the reference data from the data directory.
func OpenKitchen() (*recetario.Kitchen, error) {
	return recetario.LoadKitchen(DataDir(), Logger())
}

// OpenStore returns the history store in the save directory.
func OpenStore() *recetario.HistoryStore {
	s := recetario.NewHistoryStore(SaveDir())
	s.Logger = Logger()
	return s
}

// LoadHistory loads the history, an empty history is not an error.
func LoadHistory() (h *recetario.History, empty bool, err error) {
	h, err = OpenStore().Load()
	if errors.Is(err, recetario.ErrEmptyHistory) {
		return h, true, nil
	}
	return h, false, err
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	if markdownStyle == "" {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, markdownStyle)
	if err != nil {
		// fall back to the raw markdown.
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// failure prints the error message and returns ExitFailure.
func failure(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// listFlag is a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }
func (l *listFlag) Set(v string) error {
	*l = append(*l, strings.TrimSpace(v))
	return nil
}

// choicesFlag is a repeatable ingredient=substitute flag.
type choicesFlag map[string]recetario.Choice

func (c choicesFlag) String() string {
	var parts []string
	for ingredient, choice := range c {
		parts = append(parts, ingredient+"="+choice.String())
	}
	return strings.Join(parts, ",")
}

func (c choicesFlag) Set(v string) error {
	ingredient, substitute, ok := strings.Cut(v, "=")
	ingredient, substitute = strings.TrimSpace(ingredient), strings.TrimSpace(substitute)
	if !ok || ingredient == "" || substitute == "" {
		return fmt.Errorf("invalid substitution %q, want <ingredient>=<substitute>", v)
	}
	if substitute == recetario.NoSubstitutionLabel {
		c[ingredient] = recetario.NoSubstitution()
		return nil
	}
	c[ingredient] = recetario.Substitute(substitute)
	return nil
}
