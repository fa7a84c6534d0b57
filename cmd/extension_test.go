package cmd

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script is a shell script")
	}
	tempDir := t.TempDir()
	out := filepath.Join(tempDir, "out.txt")

	// nw-hello dumps the environment it received, then fails with its first argument.
	script := "#!/bin/sh\n" +
		"echo \"" + EnvDataDir + "=$" + EnvDataDir + "\" > " + out + "\n" +
		"echo \"" + EnvVerbose + "=$" + EnvVerbose + "\" >> " + out + "\n" +
		"exit $1\n"
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ExtensionPrefix+"hello"), []byte(script), 0o755))
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	oldDataDir, oldVerbose := *dataDir, *verbose
	t.Cleanup(func() { *dataDir, *verbose = oldDataDir, oldVerbose })
	*dataDir = "/srv/networth"
	*verbose = true

	found, code := RunExtension(context.Background(), "hello", []string{"3"})
	assert.True(t, found)
	assert.Equal(t, 3, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		EnvDataDir + "=/srv/networth",
		EnvVerbose + "=true",
	}, lines)

	found, code = RunExtension(context.Background(), "hello", []string{"0"})
	assert.True(t, found)
	assert.Equal(t, 0, code)
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	found, code := RunExtension(context.Background(), "missing", nil)
	assert.False(t, found)
	assert.Equal(t, 0, code)
}
