package brochure

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/propsheet/brochure/internal/logging"
)

// Store persists editor state between sessions.
type Store interface {
	// SaveSession writes the complete session state.
	SaveSession(s *Session) error
	// LoadSession reads a session by id.
	// Returns a "not found" error if the session does not exist.
	LoadSession(id string) (*Session, error)
	// SaveColors persists the recently-used color list.
	SaveColors(colors []string) error
	// LoadColors reads the recently-used color list.
	// A missing entry is not an error, it returns an empty list.
	LoadColors() ([]string, error)
}

const colorsKey = "recent-colors.json"

type dirStore struct {
	dir string
	mx  sync.RWMutex
}

// NewDirStore returns a Store that keeps its entries as JSON files in
// the given directory.
func NewDirStore(dir string) Store {
	return &dirStore{dir: dir}
}

func (d *dirStore) SaveSession(s *Session) error {
	if s.ID == "" {
		return NewValidationError("session has no id")
	}
	return d.put("session-"+s.ID+".json", s)
}

func (d *dirStore) LoadSession(id string) (*Session, error) {
	s := &Session{}
	err := d.get("session-"+id+".json", s)
	if err != nil {
		return nil, err
	}

	// maps and slices may be absent in older files
	if s.Library == nil {
		s.Library = NewLibrary()
	}
	if s.Effects == nil {
		s.Effects = make(map[string]EffectState)
	}

	return s, nil
}

func (d *dirStore) SaveColors(colors []string) error {
	if len(colors) > maxRecentColors {
		colors = colors[:maxRecentColors]
	}
	return d.put(colorsKey, colors)
}

func (d *dirStore) LoadColors() ([]string, error) {
	colors := make([]string, 0)
	err := d.get(colorsKey, &colors)
	if err != nil {
		if IsNotFound(err) {
			return make([]string, 0), nil
		}
		return nil, err
	}
	return colors, nil
}

func (d *dirStore) put(key string, v interface{}) error {
	logging.Debug("Store put %q", key)
	d.mx.Lock()
	defer d.mx.Unlock()

	err := os.MkdirAll(d.dir, 0755)
	if err != nil {
		return err
	}

	f, err := os.Create(d.path(key))
	if err != nil {
		logging.Warning("Store error %q", key)
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(v)
}

func (d *dirStore) get(key string, v interface{}) error {
	logging.Debug("Store get %q", key)
	d.mx.RLock()
	defer d.mx.RUnlock()

	f, err := os.Open(d.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return NewNotFound("no store entry for %q", key)
		}
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(v)
}

func (d *dirStore) path(key string) string {
	return filepath.Join(d.dir, key)
}
