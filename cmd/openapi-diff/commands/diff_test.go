package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fresha/openapi-diff/internal/config"
	"github.com/fresha/openapi-diff/oaserrors"
)

const (
	petstoreV1 = "../../../testdata/petstore-v1.yaml"
	petstoreV2 = "../../../testdata/petstore-v2.yaml"
	bookstore  = "../../../testdata/bookstore.yaml"
)

func handleDiff(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = HandleDiff(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestSetupDiffFlags(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		_, flags := SetupDiffFlags(config.Default())
		assert.Equal(t, config.FormatText, flags.Format)
		assert.False(t, flags.PrintVersion)
		assert.False(t, flags.UpdateVersion)
		assert.False(t, flags.Verbose)
		assert.False(t, flags.NoColor)
		assert.False(t, flags.Watch)
	})

	t.Run("defaults from config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Format = config.FormatYAML
		cfg.NoColor = true
		_, flags := SetupDiffFlags(cfg)
		assert.Equal(t, config.FormatYAML, flags.Format)
		assert.True(t, flags.NoColor)
	})

	t.Run("parse flags", func(t *testing.T) {
		fs, flags := SetupDiffFlags(config.Default())
		err := fs.Parse([]string{"--print-version", "-v", "--format", "json", "--validate", "--no-color", "old.yaml", "new.yaml"})
		require.NoError(t, err)
		assert.True(t, flags.PrintVersion)
		assert.True(t, flags.Verbose)
		assert.True(t, flags.Validate)
		assert.True(t, flags.NoColor)
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, []string{"old.yaml", "new.yaml"}, fs.Args())
	})
}

func TestHandleDiff_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"one arg", []string{petstoreV1}},
		{"three args", []string{petstoreV1, petstoreV2, bookstore}},
		{"invalid format", []string{"--format", "xml", petstoreV1, petstoreV2}},
		{"conflicting version flags", []string{"--print-version", "--update-version", petstoreV1, petstoreV2}},
		{"unknown flag", []string{"--breaking", petstoreV1, petstoreV2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := handleDiff(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitError, ExitCode(err))
		})
	}
}

func TestHandleDiff_Help(t *testing.T) {
	_, stderr, err := handleDiff(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Usage: openapi-diff [flags] <old> <new>")
	assert.Contains(t, stderr, "-print-version")
}

func TestHandleDiff_Identical(t *testing.T) {
	stdout, _, err := handleDiff(t, petstoreV1, petstoreV1)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestHandleDiff_Text(t *testing.T) {
	stdout, _, err := handleDiff(t, petstoreV1, petstoreV2)
	require.ErrorIs(t, err, ErrDifferencesFound)
	assert.Equal(t, ExitDifferences, ExitCode(err))

	assert.Contains(t, stdout, "[minor] #/paths/pets/post added\n")
	assert.Contains(t, stdout, "[minor] #/paths/pets/get/parameters/0 added\n")
	assert.Contains(t, stdout, "Major: 1\nMinor: 2\nPatch: 0\n")
	assert.Contains(t, stdout, "New version: 2.2.3\n")
	assert.NotContains(t, stdout, "\x1b[")
}

func TestHandleDiff_PrintVersion(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{"outdated", petstoreV1, petstoreV2, "2.2.3\n"},
		{"current", petstoreV1, petstoreV1, "1.2.3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := handleDiff(t, "--print-version", tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestHandleDiff_JSON(t *testing.T) {
	stdout, _, err := handleDiff(t, "--format", "json", petstoreV1, petstoreV2)
	require.ErrorIs(t, err, ErrDifferencesFound)

	var report struct {
		Items []struct {
			Pointer  string `json:"pointer"`
			Severity string `json:"severity"`
			Message  string `json:"message"`
		} `json:"items"`
		Counts struct {
			Major int `json:"major"`
			Minor int `json:"minor"`
		} `json:"counts"`
		OutdatedVersion bool   `json:"outdated_version"`
		NewVersion      string `json:"new_version"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Len(t, report.Items, 3)
	assert.Equal(t, 1, report.Counts.Major)
	assert.Equal(t, 2, report.Counts.Minor)
	assert.True(t, report.OutdatedVersion)
	assert.Equal(t, "2.2.3", report.NewVersion)
}

func TestHandleDiff_YAML(t *testing.T) {
	stdout, _, err := handleDiff(t, "--format", "yaml", petstoreV1, petstoreV1)
	require.NoError(t, err)
	assert.Contains(t, stdout, "outdated_version: false")
	assert.Contains(t, stdout, "new_version: 1.2.3")
}

func TestHandleDiff_UpdateVersion(t *testing.T) {
	dir := t.TempDir()
	original, err := os.ReadFile(petstoreV2)
	require.NoError(t, err)
	target := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(target, original, 0o640))

	stdout, _, err := handleDiff(t, "--update-version", petstoreV1, target)
	require.NoError(t, err)
	assert.Equal(t, "2.2.3\n", stdout)

	updated, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, string(bytes.Replace(original, []byte(`version: "1.2.3"`), []byte(`version: "2.2.3"`), 1)), string(updated))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	t.Run("current version is left alone", func(t *testing.T) {
		stdout, _, err := handleDiff(t, "--update-version", target, target)
		require.NoError(t, err)
		assert.Equal(t, "2.2.3\n", stdout)
		again, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, updated, again)
	})
}

func TestHandleDiff_Errors(t *testing.T) {
	t.Run("identity mismatch", func(t *testing.T) {
		_, _, err := handleDiff(t, petstoreV1, bookstore)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrIdentityMismatch))
		assert.Equal(t, ExitError, ExitCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := handleDiff(t, petstoreV1, filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Equal(t, ExitError, ExitCode(err))
	})
}

func TestHandleDiff_Verbose(t *testing.T) {
	_, stderr, err := handleDiff(t, "-v", petstoreV1, petstoreV1)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitDifferences, ExitCode(ErrDifferencesFound))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
}

func TestOutputStructured_InvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := OutputStructured(&buf, map[string]int{"a": 1}, config.FormatText)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
