package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chinmay1088/cryptopay/crypto"
)

const (
	// Network type constants
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"

	// Session duration in minutes
	SessionDuration = 30

	configDirName   = ".cryptopay"
	networkFileName = "network.txt"
	sessionFileName = "session.json"
)

var (
	ErrNoVault = errors.New("no API token stored. Run 'cryptopay login' first")
	ErrLocked  = errors.New("token vault is locked. Run 'cryptopay unlock' first")
)

// SessionData holds the unlocked token for a limited time
type SessionData struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
	Network    string    `json:"network"`
}

// Manager stores API tokens per network and tracks the unlock session
type Manager struct {
	dir     string
	network string
	token   string
	mu      sync.Mutex
	now     func() time.Time
}

// NewManager creates a manager rooted at ~/.cryptopay
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewManagerAt(filepath.Join(homeDir, configDirName)), nil
}

// NewManagerAt creates a manager rooted at dir
func NewManagerAt(dir string) *Manager {
	m := &Manager{dir: dir, now: time.Now}
	m.network = m.readNetwork()
	return m
}

// Network returns the selected network (mainnet or testnet)
func (m *Manager) Network() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.network
}

// IsTestnet returns true if testnet is selected
func (m *Manager) IsTestnet() bool {
	return m.Network() == NetworkTestnet
}

// SetNetwork persists the network selection
func (m *Manager) SetNetwork(network string) error {
	network = strings.ToLower(strings.TrimSpace(network))
	if network != NetworkMainnet && network != NetworkTestnet {
		return fmt.Errorf("invalid network: %s. Use 'mainnet' or 'testnet'", network)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(m.dir, networkFileName), []byte(network), 0600); err != nil {
		return fmt.Errorf("failed to write network file: %w", err)
	}
	m.network = network
	m.token = ""
	return nil
}

// VaultExists reports whether a token was stored for the current network
func (m *Manager) VaultExists() bool {
	_, err := os.Stat(m.vaultPath())
	return err == nil
}

// SaveToken encrypts token with password and unlocks a session for it
func (m *Manager) SaveToken(token, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	vault, err := crypto.NewVault(token, m.network, password)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("failed to serialize vault: %w", err)
	}
	if err := os.WriteFile(m.vaultPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write vault: %w", err)
	}

	m.token = token
	return m.createSession()
}

// Unlock decrypts the stored token and starts a session
func (m *Manager) Unlock(password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadSession() {
		return nil
	}

	vault, err := m.loadVault()
	if err != nil {
		return err
	}

	token, err := vault.Decrypt(password)
	if err != nil {
		return err
	}

	m.token = token
	return m.createSession()
}

// Lock drops the session
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	_ = os.Remove(m.sessionPath())
}

// IsUnlocked reports whether a token is available without a password
func (m *Manager) IsUnlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" {
		return true
	}
	return m.loadSession()
}

// Token returns the unlocked API token
func (m *Manager) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" || m.loadSession() {
		return m.token, nil
	}
	if _, err := os.Stat(m.vaultPath()); err != nil {
		return "", ErrNoVault
	}
	return "", ErrLocked
}

func (m *Manager) vaultPath() string {
	return filepath.Join(m.dir, m.network+".vault")
}

func (m *Manager) sessionPath() string {
	return filepath.Join(m.dir, sessionFileName)
}

func (m *Manager) readNetwork() string {
	data, err := os.ReadFile(filepath.Join(m.dir, networkFileName))
	if err != nil {
		return NetworkMainnet
	}
	network := strings.TrimSpace(string(data))
	if network != NetworkMainnet && network != NetworkTestnet {
		return NetworkMainnet
	}
	return network
}

func (m *Manager) loadVault() (*crypto.Vault, error) {
	data, err := os.ReadFile(m.vaultPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoVault
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to parse vault: %w", err)
	}
	return &vault, nil
}

func (m *Manager) createSession() error {
	session := SessionData{
		Token:      m.token,
		Expiration: m.now().Add(SessionDuration * time.Minute),
		Network:    m.network,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(m.sessionPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// loadSession restores the token from a live session for the current network
func (m *Manager) loadSession() bool {
	data, err := os.ReadFile(m.sessionPath())
	if err != nil {
		return false
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		_ = os.Remove(m.sessionPath())
		return false
	}

	if m.now().After(session.Expiration) {
		_ = os.Remove(m.sessionPath())
		return false
	}

	if session.Network != m.network || session.Token == "" {
		return false
	}

	m.token = session.Token
	return true
}
