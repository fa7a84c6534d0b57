package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"
)

// Environment passed to extensions, on top of the current one.
const (
	EnvConfig  = "NETWORTH_CONFIG"
	EnvDataDir = "NETWORTH_DATA_DIR"
	EnvJSON    = "NETWORTH_JSON"
	EnvVerbose = "NETWORTH_VERBOSE"
)

// ExtensionPrefix prefixes the external binaries run as subcommands.
const ExtensionPrefix = "nw-"

// RunExtension attempts to find and execute an external nw-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(ctx context.Context, subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand
	log := zerolog.Ctx(ctx)

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.CommandContext(ctx, lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv passes the global flags as environment variables. Only flags
// that were set are passed, so that the extension reads the same
// configuration.
func extensionEnv() []string {
	var env []string
	if *configName != "" {
		env = append(env, EnvConfig+"="+*configName)
	}
	if *dataDir != "" {
		env = append(env, EnvDataDir+"="+*dataDir)
	}
	env = append(env, EnvJSON+"="+strconv.FormatBool(*asJSON))
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*verbose))
	return env
}
