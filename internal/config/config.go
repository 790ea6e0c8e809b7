package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	LogLevel        string
	DefaultPlanDays int
	MaxUploadBytes  int64
}

func New() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOGLEVEL", "info"),
		DefaultPlanDays: getEnvInt("DEFAULTPLANDAYS", 30),
		MaxUploadBytes:  int64(getEnvInt("MAXUPLOADBYTES", 10<<20)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
