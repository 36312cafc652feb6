package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/shecare/internal/logger"
	"github.com/terraincognita07/shecare/internal/services"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"change-me":                                  {},
	"changeme":                                   {},
	"secret":                                     {},
	"replace_with_at_least_32_random_characters": {},
}

type serverConfig struct {
	SecretKey      string
	DBPath         string
	Port           string
	Location       *time.Location
	CookieSecure   bool
	LogMode        string
	ClassifierPath string
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		SecretKey:      getEnv("SECRET_KEY", ""),
		DBPath:         getEnv("DB_PATH", filepath.Join("data", "shecare.db")),
		Port:           getEnv("PORT", "8080"),
		LogMode:        getEnv("LOG_MODE", "dev"),
		ClassifierPath: getEnv("CLASSIFIER_PATH", ""),
	}
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func resolveSecretKey() (string, error) {
	return validateSecretKey(os.Getenv("SECRET_KEY"))
}

func validateSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort(raw string) (string, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveCookieSecure(raw string) (bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return false, nil
	}
	secure, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid COOKIE_SECURE %q", raw)
	}
	return secure, nil
}

func loadLocation(name string, log *logger.Logger) *time.Location {
	location, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		log.Warn("invalid TZ, falling back to UTC", "tz", name)
		return time.UTC
	}
	return location
}

func loadRiskModels(path string) (services.RiskModels, error) {
	if strings.TrimSpace(path) == "" {
		return services.DefaultRiskModels()
	}
	return services.LoadRiskModelsFile(path)
}
