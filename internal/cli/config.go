package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Token     string
	PlayerID  string
	StateDir  string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("BJACK_SERVER", "http://localhost:8080"),
		Token:     os.Getenv("BJACK_TOKEN"),
		PlayerID:  os.Getenv("BJACK_PLAYER"),
		StateDir:  getEnvOrDefault("BJACK_STATE_DIR", defaultStateDir()),
		Output:    "text",
		Verbose:   false,
	}
}

// LoadSession loads the saved token and player id unless already set
// via flag or environment
func (c *Config) LoadSession() error {
	if c.Token == "" {
		token, err := c.readStateFile("token")
		if err != nil {
			return err
		}
		c.Token = token
	}
	if c.PlayerID == "" {
		playerID, err := c.readStateFile("player")
		if err != nil {
			return err
		}
		c.PlayerID = playerID
	}
	return nil
}

// SaveSession persists the token and player id for subsequent commands
func (c *Config) SaveSession(token, playerID string) error {
	c.Token = token
	c.PlayerID = playerID

	if err := os.MkdirAll(c.StateDir, 0700); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(c.StateDir, "token"), []byte(token), 0600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.StateDir, "player"), []byte(playerID), 0600)
}

func (c *Config) readStateFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(c.StateDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil // No saved session is fine
		}
		return "", err
	}
	return string(data), nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bjack"
	}
	return filepath.Join(home, ".bjack")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
