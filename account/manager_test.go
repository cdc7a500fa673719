package account

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chinmay1088/cryptopay/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerDefaultsToMainnet(t *testing.T) {
	m := NewManagerAt(t.TempDir())
	assert.Equal(t, NetworkMainnet, m.Network())
	assert.False(t, m.IsTestnet())
	assert.False(t, m.VaultExists())

	_, err := m.Token()
	assert.ErrorIs(t, err, ErrNoVault)
}

func TestManagerSetNetworkPersists(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerAt(dir)
	require.NoError(t, m.SetNetwork("TESTNET"))
	assert.True(t, m.IsTestnet())

	assert.True(t, NewManagerAt(dir).IsTestnet())
	assert.Error(t, m.SetNetwork("devnet"))
}

func TestManagerIgnoresGarbageNetworkFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, networkFileName), []byte("moon"), 0600))
	assert.Equal(t, NetworkMainnet, NewManagerAt(dir).Network())
}

func TestManagerSaveUnlockLock(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerAt(dir)
	require.NoError(t, m.SaveToken("1234:AA", "pw"))
	assert.True(t, m.VaultExists())

	token, err := m.Token()
	require.NoError(t, err)
	assert.Equal(t, "1234:AA", token)

	// a fresh manager picks the session up from disk
	other := NewManagerAt(dir)
	assert.True(t, other.IsUnlocked())

	m.Lock()
	fresh := NewManagerAt(dir)
	assert.False(t, fresh.IsUnlocked())
	_, err = fresh.Token()
	assert.ErrorIs(t, err, ErrLocked)

	assert.ErrorIs(t, fresh.Unlock("wrong"), crypto.ErrInvalidPassword)
	require.NoError(t, fresh.Unlock("pw"))
	token, err = fresh.Token()
	require.NoError(t, err)
	assert.Equal(t, "1234:AA", token)
}

func TestManagerSessionExpires(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	m := NewManagerAt(dir)
	m.now = func() time.Time { return now }
	require.NoError(t, m.SaveToken("1234:AA", "pw"))

	later := NewManagerAt(dir)
	later.now = func() time.Time { return now.Add(SessionDuration*time.Minute + time.Second) }
	assert.False(t, later.IsUnlocked())
	_, err := os.Stat(filepath.Join(dir, sessionFileName))
	assert.True(t, os.IsNotExist(err), "expired session is removed")
}

func TestManagerSessionBoundToNetwork(t *testing.T) {
	dir := t.TempDir()
	m := NewManagerAt(dir)
	require.NoError(t, m.SaveToken("mainnet-token", "pw"))

	require.NoError(t, m.SetNetwork(NetworkTestnet))
	assert.False(t, m.IsUnlocked())
	_, err := m.Token()
	assert.ErrorIs(t, err, ErrNoVault)
}
