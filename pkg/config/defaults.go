// Package config provides centralized default values for Stillwater
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database Configuration
	DBDriver                 string
	DBDataSource             string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int

	// Fragment Cache
	FragmentCacheTTL     time.Duration
	FragmentCacheCleanup time.Duration

	// Media Library
	MediaBasePath string

	// Brand Theme
	ThemePrimary    string
	ThemeSecondary  string
	ThemeAccent     string
	ThemeBackground string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database: sqlite3 for local files, libsql for a hosted Turso database.
	DBDriver = getEnvString("DB_DRIVER", "sqlite3")
	DBDataSource = getEnvString("DB_DATA_SOURCE", "stillwater.db")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)

	// Fragment Cache
	FragmentCacheTTL = time.Duration(getEnvInt("FRAGMENT_CACHE_TTL_MINUTES", 60)) * time.Minute
	FragmentCacheCleanup = time.Duration(getEnvInt("FRAGMENT_CACHE_CLEANUP_MINUTES", 10)) * time.Minute

	// Media Library
	MediaBasePath = getEnvString("MEDIA_BASE_PATH", "media")

	// Brand Theme
	ThemePrimary = getEnvString("THEME_PRIMARY", "#0F766E")
	ThemeSecondary = getEnvString("THEME_SECONDARY", "#115E59")
	ThemeAccent = getEnvString("THEME_ACCENT", "#D97706")
	ThemeBackground = getEnvString("THEME_BACKGROUND", "#FFFFFF")
}
