package crypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultRoundTrip(t *testing.T) {
	vault, err := NewVault("1234:AAsecret", "testnet", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, vaultVersion, vault.Version)
	assert.NotContains(t, string(vault.Data), "AAsecret")

	token, err := vault.Decrypt("hunter2")
	require.NoError(t, err)
	assert.Equal(t, "1234:AAsecret", token)
}

func TestVaultWrongPassword(t *testing.T) {
	vault, err := NewVault("1234:AAsecret", "mainnet", "hunter2")
	require.NoError(t, err)

	_, err = vault.Decrypt("hunter3")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestVaultBoundToNetwork(t *testing.T) {
	vault, err := NewVault("1234:AAsecret", "testnet", "pw")
	require.NoError(t, err)

	raw, err := json.Marshal(vault)
	require.NoError(t, err)

	var moved Vault
	require.NoError(t, json.Unmarshal(raw, &moved))
	moved.Network = "mainnet"

	_, err = moved.Decrypt("pw")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestNewVaultRejectsEmptyToken(t *testing.T) {
	_, err := NewVault("", "mainnet", "pw")
	assert.Error(t, err)
}
