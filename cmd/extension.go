package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"go.uber.org/zap"
)

const (
	EnvDataDir = "RCP_DATA_DIR"
	EnvSaveDir = "RCP_SAVE_DIR"
	EnvVerbose = "RCP_VERBOSE"
)

// RunExtension attempts to find and execute an external rcp-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// Global settings are passed as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "rcp-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		Logger().Debug("extension not found", zap.String("name", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvDataDir+"="+DataDir(),
		EnvSaveDir+"="+SaveDir(),
		EnvVerbose+"="+strconv.FormatBool(Verbose()),
	)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
