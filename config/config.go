package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"crapstable/database"
	"crapstable/domain/entities"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// NATS configuration
	NATSServers string // NATS server addresses (comma-separated)

	// Table configuration
	MaxPlayersPerGame int
	MinBetAmount      entities.Tokens
	MaxBetAmount      entities.Tokens // 0 means no table maximum

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			// In test environment, use a default test config instead of panicking
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// NATS
		NATSServers: getEnvWithDefault("NATS_SERVERS", "nats://nats:4222"),

		// Table defaults
		MaxPlayersPerGame: 20,
		MinBetAmount:      entities.Tokens(entities.TokenUnit),
		MaxBetAmount:      0,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if maxPlayers := os.Getenv("MAX_PLAYERS_PER_GAME"); maxPlayers != "" {
		if parsed, err := strconv.Atoi(maxPlayers); err == nil && parsed > 0 {
			config.MaxPlayersPerGame = parsed
		}
	}
	if minBet := os.Getenv("MIN_BET_AMOUNT"); minBet != "" {
		if parsed, err := strconv.ParseUint(minBet, 10, 64); err == nil {
			config.MinBetAmount = entities.Tokens(parsed)
		}
	}
	if maxBet := os.Getenv("MAX_BET_AMOUNT"); maxBet != "" {
		if parsed, err := strconv.ParseUint(maxBet, 10, 64); err == nil {
			config.MaxBetAmount = entities.Tokens(parsed)
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		// If DatabaseName is provided, ensure it's not empty
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:       "test",
		MaxPlayersPerGame: 20,
		MinBetAmount:      1,
	}
}
