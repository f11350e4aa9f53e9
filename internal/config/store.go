package config

import (
	"sync"

	"composectl/internal/log"
)

// Setting keys understood by Store. All composer settings live under the
// docker namespace.
const (
	KeyComposeFile            = "docker.compose_file"
	KeyComposeAdditionalFiles = "docker.compose_additional_files"
	KeyComposeBuild           = "docker.compose_build"
	KeyComposeDetached        = "docker.compose_detached"
	KeyComposeCommand         = "docker.compose_command"
	KeyWorkspaceFolders       = "workspace.folders"
)

// Store is a key/value view over a Config. Lookups always see the most
// recently loaded snapshot, so a Reload between two reads is picked up by
// the second one.
type Store struct {
	mu   sync.RWMutex
	path string
	cfg  *Config
}

// NewStore wraps an in-memory configuration. Reload is a no-op for stores
// without a backing file.
func NewStore(cfg *Config) *Store {
	if cfg == nil {
		cfg = New()
	}
	return &Store{cfg: cfg}
}

// OpenStore loads path (defaults when it does not exist) and keeps path for
// later reloads.
func OpenStore(path string) (*Store, error) {
	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, cfg: cfg}, nil
}

// Path returns the backing settings file, or "" for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On error the previous snapshot stays in
// place.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	cfg, err := LoadConfigFile(s.path)
	if err != nil {
		log.LogWithError(err).Warn("Keeping previous settings")
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	log.LogWithFields(log.F("path", s.path)).Debug("Settings reloaded")
	return nil
}

// Config returns the current snapshot.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// String returns a string setting, or def when it is unset or unknown.
func (s *Store) String(key, def string) string {
	cfg := s.Config()
	var v string
	switch key {
	case KeyComposeFile:
		v = cfg.Docker.ComposeFile
	case KeyComposeCommand:
		v = cfg.Docker.ComposeCommand
	}
	if v == "" {
		return def
	}
	return v
}

// Strings returns a list setting. The result is a copy.
func (s *Store) Strings(key string) []string {
	cfg := s.Config()
	var v []string
	switch key {
	case KeyComposeAdditionalFiles:
		v = cfg.Docker.ComposeAdditionalFiles
	case KeyWorkspaceFolders:
		v = cfg.Workspace.Folders
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// Bool returns a boolean setting, or def when it is unset or unknown.
func (s *Store) Bool(key string, def bool) bool {
	cfg := s.Config()
	var v *bool
	switch key {
	case KeyComposeBuild:
		v = cfg.Docker.ComposeBuild
	case KeyComposeDetached:
		v = cfg.Docker.ComposeDetached
	}
	if v == nil {
		return def
	}
	return *v
}
