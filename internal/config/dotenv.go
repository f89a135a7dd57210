package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	DataDir                  string
	PhotosDir                string
	OfficialsFile            string
	IdentifyPoints           int
	FindPhotoPoints          int
	MultipleChoicePoints     int
	StreakBonusPoints        int
	OptionCount              int
	RevealDelaySeconds       int
	MaxPhotoBytes            int
	MaxPhotoWidth            int
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
}

func Default() Config {
	return Config{
		DataDir:                  "data",
		PhotosDir:                "data/photos",
		OfficialsFile:            "data/officials/officials.json",
		IdentifyPoints:           10,
		FindPhotoPoints:          15,
		MultipleChoicePoints:     10,
		StreakBonusPoints:        2,
		OptionCount:              4,
		RevealDelaySeconds:       2,
		MaxPhotoBytes:            10 * 1024 * 1024,
		MaxPhotoWidth:            800,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("DATA_DIR"); raw != "" {
		cfg.DataDir = raw
		cfg.PhotosDir = raw + "/photos"
		cfg.OfficialsFile = raw + "/officials/officials.json"
	}
	if raw := os.Getenv("PHOTOS_DIR"); raw != "" {
		cfg.PhotosDir = raw
	}
	if raw := os.Getenv("OFFICIALS_FILE"); raw != "" {
		cfg.OfficialsFile = raw
	}
	if raw := os.Getenv("IDENTIFY_POINTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.IdentifyPoints = value
		}
	}
	if raw := os.Getenv("FIND_PHOTO_POINTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.FindPhotoPoints = value
		}
	}
	if raw := os.Getenv("MULTIPLE_CHOICE_POINTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MultipleChoicePoints = value
		}
	}
	if raw := os.Getenv("STREAK_BONUS_POINTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			cfg.StreakBonusPoints = value
		}
	}
	if raw := os.Getenv("OPTION_COUNT"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 2 {
			cfg.OptionCount = value
		}
	}
	if raw := os.Getenv("REVEAL_DELAY_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.RevealDelaySeconds = value
		}
	}
	if raw := os.Getenv("MAX_PHOTO_BYTES"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MaxPhotoBytes = value
		}
	}
	if raw := os.Getenv("MAX_PHOTO_WIDTH"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MaxPhotoWidth = value
		}
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	return cfg
}
