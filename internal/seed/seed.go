// Package seed provides seed selection for palette generation.
// A fixed seed reproduces the same palette on every run.
package seed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Mode determines how the generator seed is chosen.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeText derives the seed from a phrase (deterministic by text).
	ModeText Mode = "text"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value uint64 // Seed value (only used when Mode is ModeManual)
	Text  string // Seed phrase (only used when Mode is ModeText)
}

// Calculate determines the seed value based on the seed mode.
func Calculate(config Config) (uint64, error) {
	switch config.Mode {
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	case ModeManual:
		return config.Value, nil
	case ModeText:
		return TextSeed(config.Text)
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// TextSeed hashes text into a seed. Surrounding whitespace is ignored so
// "ocean" and "ocean\n" give the same palette.
func TextSeed(text string) (uint64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("seed text is required for text seed mode")
	}

	hash := sha256.Sum256([]byte(text))
	return binary.LittleEndian.Uint64(hash[:8]), nil
}

// GenerateRandomSeed returns a non-deterministic seed from crypto/rand.
func GenerateRandomSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// #nosec G115 -- only used as a seed
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeText}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, text)", s)
}
