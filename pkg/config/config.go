// Package config loads cmd/server's runtime settings from environment
// variables, optionally via a .env file, the way the rest of the
// retrieved corpus does with godotenv.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob cmd/server needs.
type Config struct {
	// ListenAddr is the address the HTTP/WebSocket server binds to.
	ListenAddr string

	// MaxDocumentSize caps a document's length in runes; ApplyEdit
	// rejects edits that would push a document past it.
	MaxDocumentSize int

	// IdleTimeout is how long after its last edit a document with no
	// subscribers is kept before session.Manager.Reap drops it.
	IdleTimeout time.Duration

	// SubscriberBufferSize sizes each client's broadcast channel.
	SubscriberBufferSize int

	// ReapInterval is how often cmd/server runs session.Manager.Reap.
	ReapInterval time.Duration
}

// Load reads configuration from the environment, first loading a .env
// file from the working directory if one is present — a missing .env
// is not an error, since production deployments set real environment
// variables instead.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:           getString("LISTEN_ADDR", ":8080"),
		MaxDocumentSize:      getInt("MAX_DOCUMENT_SIZE", 1<<20),
		IdleTimeout:          getDuration("IDLE_TIMEOUT", 30*time.Minute),
		SubscriberBufferSize: getInt("SUBSCRIBER_BUFFER_SIZE", 64),
		ReapInterval:         getDuration("REAP_INTERVAL", 5*time.Minute),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
