package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"pkt.systems/pslog"
	"pkt.systems/toterm/internal/persist"
	"pkt.systems/toterm/schema"
)

// SchemaVersion is the scripts file format version written by Save.
const SchemaVersion = 1

// fileDocument is the on-disk representation of the registry.
type fileDocument struct {
	SchemaVersion int             `json:"schema_version"`
	Scripts       []schema.Script `json:"scripts"`
}

// DefaultPath returns the scripts file location under a data directory.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "scripts", "scripts.json")
}

// Store holds the ordered script collection backed by a single JSON file.
type Store struct {
	fs   afero.Fs
	path string
	log  pslog.Logger

	mu      sync.Mutex
	scripts []schema.Script
}

// NewStore constructs a store for the file at path.
func NewStore(fs afero.Fs, path string) *Store {
	return NewStoreWithLogger(fs, path, nil)
}

// NewStoreWithLogger constructs a store with logging.
func NewStoreWithLogger(fs afero.Fs, path string, logger pslog.Logger) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger != nil {
		logger = logger.With("scripts_file", path)
	}
	return &Store{fs: fs, path: path, log: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory collection with the file contents.
// A missing file yields an empty collection and no error. Any other failure
// also leaves the collection empty and returns the error so callers can
// surface it.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts = nil

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if s.log != nil {
				s.log.Debug("registry load miss")
			}
			return nil
		}
		if s.log != nil {
			s.log.Warn("registry load failed", "err", err)
		}
		return fmt.Errorf("read scripts file: %w", err)
	}
	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		if s.log != nil {
			s.log.Warn("registry load failed", "err", err)
		}
		return fmt.Errorf("decode scripts file: %w", err)
	}
	if doc.SchemaVersion != SchemaVersion {
		err := fmt.Errorf("%w: scripts file schema_version %d", schema.ErrUnsupportedVersion, doc.SchemaVersion)
		if s.log != nil {
			s.log.Warn("registry load failed", "err", err)
		}
		return err
	}
	for i := range doc.Scripts {
		doc.Scripts[i].Status = schema.StatusOK
	}
	s.scripts = doc.Scripts
	if s.log != nil {
		s.log.Debug("registry load ok", "scripts", len(s.scripts))
	}
	return nil
}

// Scripts returns a copy of the collection in insertion order.
func (s *Store) Scripts() []schema.Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schema.Script, len(s.scripts))
	copy(out, s.scripts)
	return out
}

// Len reports the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scripts)
}

// Find returns the first record with the given name.
func (s *Store) Find(name string) (schema.Script, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(name)
	if idx < 0 {
		return schema.Script{}, false
	}
	return s.scripts[idx], true
}

// Append adds a record at the end. Names are not required to be unique.
func (s *Store) Append(script schema.Script) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts = append(s.scripts, script)
}

// Replace overwrites the first record named name in place and reports
// whether a record matched.
func (s *Store) Replace(name string, script schema.Script) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(name)
	if idx < 0 {
		if s.log != nil {
			s.log.Debug("registry replace miss", "script", name)
		}
		return false
	}
	s.scripts[idx] = script
	return true
}

// RefreshStatuses probes every record path and marks missing ones.
func (s *Store) RefreshStatuses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	missing := RefreshStatuses(s.fs, s.scripts)
	if missing > 0 && s.log != nil {
		s.log.Info("registry scan found missing scripts", "missing", missing)
	}
	return missing
}

// Save rewrites the whole collection to the backing file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := fileDocument{SchemaVersion: SchemaVersion, Scripts: s.scripts}
	if doc.Scripts == nil {
		doc.Scripts = []schema.Script{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		if s.log != nil {
			s.log.Warn("registry save failed", "err", err)
		}
		return err
	}
	data = append(data, '\n')
	if err := persist.WriteFileAtomic(s.fs, s.path, data, 0o600); err != nil {
		if s.log != nil {
			s.log.Warn("registry save failed", "err", err)
		}
		return err
	}
	if s.log != nil {
		s.log.Trace("registry save ok", "scripts", len(s.scripts))
	}
	return nil
}

func (s *Store) indexOf(name string) int {
	name = schema.NormalizeScriptName(name)
	for i, script := range s.scripts {
		if schema.NormalizeScriptName(script.Name) == name {
			return i
		}
	}
	return -1
}
