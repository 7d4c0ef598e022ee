package kurv

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Mirror is the flat key-value fallback tier: one JSON file per key holding
// a serialized snapshot. It is best effort by contract; no operation ever
// returns an error outward. Failures are logged and degrade to false or a
// miss so callers can fall through.
type Mirror struct {
	dir string
	log zerolog.Logger
}

// NewMirror returns a mirror rooted at dir. The directory is created lazily
// on the first write.
func NewMirror(dir string, log zerolog.Logger) *Mirror {
	return &Mirror{dir: dir, log: log}
}

const sentinelKey = ".probe"

// Available probes the tier by writing and removing a sentinel entry,
// mimicking how a browser app probes localStorage before trusting it.
func (m *Mirror) Available() bool {
	if err := os.MkdirAll(m.dir, 0o750); err != nil {
		m.log.Warn().Err(err).Str("dir", m.dir).Msg("mirror unavailable")
		return false
	}
	path := m.keyPath(sentinelKey)
	if err := os.WriteFile(path, []byte("ok"), 0o600); err != nil {
		m.log.Warn().Err(err).Str("dir", m.dir).Msg("mirror unavailable")
		return false
	}
	if err := os.Remove(path); err != nil {
		m.log.Warn().Err(err).Str("dir", m.dir).Msg("mirror unavailable")
		return false
	}
	return true
}

// Save serializes v under key. Returns false on any failure.
func (m *Mirror) Save(key string, v any) bool {
	if !m.Available() {
		return false
	}
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("mirror save failed")
		return false
	}
	if err := os.WriteFile(m.keyPath(key), data, 0o600); err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("mirror save failed")
		return false
	}
	return true
}

// Load deserializes the entry under key into out. A missing entry is a
// plain miss; a corrupt or unreadable one is logged. Both return false.
func (m *Mirror) Load(key string, out any) bool {
	if !m.Available() {
		return false
	}
	data, err := os.ReadFile(m.keyPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	if err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("mirror load failed")
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("mirror entry corrupt")
		return false
	}
	return true
}

// Clear removes the entry under key. Clearing a missing entry succeeds.
func (m *Mirror) Clear(key string) bool {
	if !m.Available() {
		return false
	}
	if err := os.Remove(m.keyPath(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		m.log.Warn().Err(err).Str("key", key).Msg("mirror clear failed")
		return false
	}
	return true
}

func (m *Mirror) keyPath(key string) string {
	return filepath.Join(m.dir, key+".json")
}
