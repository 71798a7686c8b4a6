// Package config provides centralized default values for MoodRise
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

	// Session & Usage Configuration
	DailyCapMillis     int64
	FirstCheckDelay    time.Duration
	RecheckMinDelay    time.Duration
	RecheckMaxDelay    time.Duration
	GoodMoodThreshold  int
	FeedDefaultLimit   int
	ReinforcementFloor int

	// Content Configuration
	CatalogPath string

	// State Store Maintenance
	UserStateTTL       time.Duration
	StateSweepSchedule string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Session & Usage Configuration
	DailyCapMillis = int64(getEnvInt("DAILY_CAP_MINUTES", 60)) * 60 * 1000
	FirstCheckDelay = time.Duration(getEnvInt("FIRST_CHECK_DELAY_SECONDS", 300)) * time.Second
	RecheckMinDelay = time.Duration(getEnvInt("RECHECK_MIN_SECONDS", 900)) * time.Second
	RecheckMaxDelay = time.Duration(getEnvInt("RECHECK_MAX_SECONDS", 1200)) * time.Second
	GoodMoodThreshold = getEnvInt("GOOD_MOOD_THRESHOLD", 4)
	FeedDefaultLimit = getEnvInt("FEED_DEFAULT_LIMIT", 10)
	ReinforcementFloor = getEnvInt("REINFORCEMENT_FLOOR", -3)

	// Content Configuration
	CatalogPath = getEnvString("CATALOG_PATH", "")

	// State Store Maintenance
	UserStateTTL = time.Duration(getEnvInt("USER_STATE_TTL_HOURS", 168)) * time.Hour
	StateSweepSchedule = getEnvString("STATE_SWEEP_SCHEDULE", "@every 30m")
}
