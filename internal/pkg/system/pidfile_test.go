package system

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "server.pid")

	require.NoError(t, SavePID(path, 4242))
	assert.ErrorIs(t, SavePID(path, 1), ErrPIDExists)

	pid, err := LoadPID(path)
	require.NoError(t, err)
	assert.Equal(t, 4242, pid)

	RemovePID(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadPID_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pid")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	_, err := LoadPID(path)
	assert.Error(t, err)

	_, err = LoadPID(filepath.Join(t.TempDir(), "missing.pid"))
	assert.Error(t, err)
}

// acima do pid_max do Linux, nunca pertence a um processo
const deadPID = 1 << 30

func TestAlive(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sinal 0 não existe no Windows")
	}
	assert.True(t, Alive(os.Getpid()))
	assert.False(t, Alive(deadPID))
	assert.False(t, Alive(0))
}

func TestClaimPID_ReplacesStaleFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sinal 0 não existe no Windows")
	}
	path := filepath.Join(t.TempDir(), "server.pid")
	require.NoError(t, SavePID(path, deadPID))

	require.NoError(t, ClaimPID(path, os.Getpid()))
	pid, err := LoadPID(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)

	assert.ErrorIs(t, ClaimPID(path, 1234), ErrPIDExists)
}
