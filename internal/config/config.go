package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth (optional; the API is open when unset)
	APIKey string

	// Vault
	Root string

	// Book command defaults
	BookFolder string
	FinalMode  bool

	// Content handling
	StripFrontmatter bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("BOOKBIND_API_KEY"),

		Root: envOr("BOOKBIND_ROOT", "."),

		BookFolder: envOr("BOOK_FOLDER", "Sample book"),
		FinalMode:  envBool("FINAL_MODE", false),

		StripFrontmatter: envBool("STRIP_FRONTMATTER", false),
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.BookFolder == "" {
		cfg.BookFolder = "Sample book"
	}

	return cfg
}

func (c Config) Validate() error {
	fi, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("BOOKBIND_ROOT %q: %w", c.Root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("BOOKBIND_ROOT %q is not a directory", c.Root)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
