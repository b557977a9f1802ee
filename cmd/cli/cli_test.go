package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"--migration-seed", "--db-backup", "--local=/tmp/bkp"})
	require.NoError(t, err)

	assert.True(t, opts.Seed)
	assert.True(t, opts.DBBackup)
	assert.Equal(t, "/tmp/bkp", opts.BackupDestination)
	assert.True(t, opts.anyOperation())
	assert.True(t, opts.requiresDatabase())
}

func TestParseOptions_CreateAdmin(t *testing.T) {
	opts, err := parseOptions([]string{"--create-admin", "--name", "Ana", "--email", "ana@example.com", "--password", "s3nha-forte"})
	require.NoError(t, err)

	assert.True(t, opts.CreateAdmin)
	assert.Equal(t, "Ana", opts.AdminName)
	assert.NoError(t, opts.validate())
	assert.True(t, opts.requiresDatabase())
}

func TestParseOptions_Help(t *testing.T) {
	_, err := parseOptions([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestParseOptions_UnknownFlag(t *testing.T) {
	_, err := parseOptions([]string{"--nao-existe"})
	assert.Error(t, err)
}

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name string
		opts options
		ok   bool
	}{
		{"backup sem destino", options{DBBackup: true}, false},
		{"backup com destino", options{DBBackup: true, BackupDestination: "bkp"}, true},
		{"admin sem senha", options{CreateAdmin: true, AdminName: "Ana", AdminEmail: "a@b.c"}, false},
		{"start", options{Start: true}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOptions_StopDoesNotNeedDatabase(t *testing.T) {
	opts := options{Stop: true}
	assert.True(t, opts.anyOperation())
	assert.False(t, opts.requiresDatabase())
	assert.False(t, options{}.anyOperation())
}
