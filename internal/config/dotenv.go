package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads local env files before the YAML config is read.
// Lookup order is .env.local, .env.<APP_ENV>, .env. godotenv never
// overwrites variables already present in the process environment, so
// real environment always wins and earlier files shadow later ones.
// Returns the files that were found and loaded.
func LoadDotEnv() []string {
	candidates := []string{".env.local"}
	if env := os.Getenv("APP_ENV"); env != "" {
		candidates = append(candidates, fmt.Sprintf(".env.%s", env))
	}
	candidates = append(candidates, ".env")

	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			continue
		}
		loaded = append(loaded, f)
	}
	return loaded
}
