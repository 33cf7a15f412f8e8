package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookreviews/internal/config"
)

func newTestCommand(t *testing.T, dbPath string, args ...string) (*MigrateCommand, *bytes.Buffer) {
	t.Helper()
	cmd := NewMigrateCommand(config.Database{Driver: config.DriverSQLite, LogLevel: "silent"})
	out := &bytes.Buffer{}
	cmd.out = out
	require.NoError(t, cmd.ParseFlags(append([]string{"-db", dbPath}, args...)))
	return cmd, out
}

func TestMigrateCommand_ParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"defaults", nil, false},
		{"down", []string{"-down", "1"}, false},
		{"status", []string{"-status"}, false},
		{"negative down", []string{"-down", "-1"}, true},
		{"down with status", []string{"-down", "1", "-status"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewMigrateCommand(config.Database{})
			err := cmd.ParseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMigrateCommand_Run(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")

	cmd, out := newTestCommand(t, dbPath)
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Applied 20250930000000_initial_create")
	assert.Contains(t, out.String(), "Applied 20251002123556_add_book_review")

	cmd, out = newTestCommand(t, dbPath)
	require.NoError(t, cmd.Run())
	assert.Equal(t, "Database is up to date\n", out.String())

	cmd, out = newTestCommand(t, dbPath, "-down", "1")
	require.NoError(t, cmd.Run())
	assert.Equal(t, "Reverted 20251002123556_add_book_review\n", out.String())

	cmd, out = newTestCommand(t, dbPath, "-status")
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "initial_create")
	assert.Regexp(t, `20251002123556\s+add_book_review\s+pending`, out.String())
}
