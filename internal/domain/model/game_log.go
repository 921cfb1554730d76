package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// GameLog is one event log submitted by the game server, held until the
// Discord bot picks it up. The document id is the dedup fingerprint, so
// a redelivered event can never be stored twice.
type GameLog struct {
	Fingerprint string         `json:"fingerprint" bson:"_id"`
	LogType     string         `json:"log_type" bson:"log_type"`
	LogData     map[string]any `json:"log_data" bson:"log_data"`
	Timestamp   any            `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
	Processed   bool           `json:"processed" bson:"processed"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
}

// LogFingerprint derives the dedup key for a log submission. Only
// log_type, player_name and message participate: timestamp and username
// vary between redeliveries of the same event and are excluded. Fields
// are NUL-separated so adjacent values cannot alias each other.
func LogFingerprint(logType string, logData map[string]any) string {
	h := sha256.New()
	h.Write([]byte(logType))
	h.Write([]byte{0})
	h.Write([]byte(stringField(logData, "player_name")))
	h.Write([]byte{0})
	h.Write([]byte(stringField(logData, "message")))
	return hex.EncodeToString(h.Sum(nil))
}

// stringField reads a string value from the payload, defaulting to the
// empty string when the key is absent or holds a non-string value.
func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
