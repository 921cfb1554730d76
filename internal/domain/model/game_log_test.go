package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogFingerprint_Deterministic(t *testing.T) {
	data := map[string]any{
		"player_name": "RoyalGuard123",
		"message":     "kicked for exploiting",
	}

	first := LogFingerprint("kick", data)
	second := LogFingerprint("kick", data)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestLogFingerprint_IgnoresTimestampAndUsername(t *testing.T) {
	first := LogFingerprint("kick", map[string]any{
		"player_name": "RoyalGuard123",
		"message":     "kicked for exploiting",
		"username":    "moderator_a",
		"timestamp":   "2026-08-23T10:00:00Z",
	})
	second := LogFingerprint("kick", map[string]any{
		"player_name": "RoyalGuard123",
		"message":     "kicked for exploiting",
		"username":    "moderator_b",
		"timestamp":   1756000000,
	})

	assert.Equal(t, first, second)
}

func TestLogFingerprint_DistinguishesFields(t *testing.T) {
	base := LogFingerprint("kick", map[string]any{
		"player_name": "RoyalGuard123",
		"message":     "kicked for exploiting",
	})

	differentMessage := LogFingerprint("kick", map[string]any{
		"player_name": "RoyalGuard123",
		"message":     "kicked for spamming",
	})
	differentPlayer := LogFingerprint("kick", map[string]any{
		"player_name": "RoyalGuard456",
		"message":     "kicked for exploiting",
	})
	differentType := LogFingerprint("ban", map[string]any{
		"player_name": "RoyalGuard123",
		"message":     "kicked for exploiting",
	})

	assert.NotEqual(t, base, differentMessage)
	assert.NotEqual(t, base, differentPlayer)
	assert.NotEqual(t, base, differentType)
}

func TestLogFingerprint_FieldsCannotAlias(t *testing.T) {
	// The separator keeps a value from bleeding into the next field.
	first := LogFingerprint("kick", map[string]any{
		"player_name": "ab",
		"message":     "c",
	})
	second := LogFingerprint("kick", map[string]any{
		"player_name": "a",
		"message":     "bc",
	})

	assert.NotEqual(t, first, second)
}

func TestLogFingerprint_MissingFieldsDefaultEmpty(t *testing.T) {
	absent := LogFingerprint("announcement", map[string]any{
		"message": "server restart in 5 minutes",
	})
	nonString := LogFingerprint("announcement", map[string]any{
		"player_name": 12345,
		"message":     "server restart in 5 minutes",
	})
	empty := LogFingerprint("announcement", map[string]any{
		"player_name": "",
		"message":     "server restart in 5 minutes",
	})

	assert.Equal(t, absent, nonString)
	assert.Equal(t, absent, empty)
}
