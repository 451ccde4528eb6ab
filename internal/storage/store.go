package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/config"
)

// ErrNotFound indicates no saved setup has the requested ID.
var ErrNotFound = errors.New("storage: setup not found")

const (
	metaFile   = "setup.json"
	configFile = "config.yaml"
)

// Store keeps saved camera setups, one directory per setup. Only parameters
// are stored, never rendered frames.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SetupMetadata struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Timestamp time.Time     `json:"timestamp"`
	Camera    camera.Params `json:"camera"`
	// Derived geometry, kept for reference when reading the file by hand.
	CameraPosition [3]float64 `json:"camera_position"`
	ScreenCenter   [3]float64 `json:"screen_center"`
}

// Save writes cfg under a fresh ID and returns it. config.yaml is written
// before setup.json, so a listed setup always has its config. On failure the
// setup directory is removed.
func (s *Store) Save(name string, cfg *config.Config) (id string, err error) {
	id = uuid.NewString()
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dir)
		}
	}()

	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return "", err
	}

	st := camera.Derive(cfg.Camera)
	meta := SetupMetadata{
		ID:             id,
		Name:           name,
		Timestamp:      time.Now(),
		Camera:         cfg.Camera,
		CameraPosition: st.CameraPosition,
		ScreenCenter:   st.Center,
	}
	if err := writeMeta(filepath.Join(dir, metaFile), &meta); err != nil {
		return "", err
	}

	slog.Debug("saved setup", "id", id, "name", name)
	return id, nil
}

func writeMeta(path string, meta *SetupMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// setupDir maps id to its directory. Anything but a UUID is reported as not
// found, so ids like ".." never reach the filesystem.
func (s *Store) setupDir(id string) (string, error) {
	if u, err := uuid.Parse(id); err != nil || u.String() != id {
		return "", fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return filepath.Join(s.baseDir, id), nil
}

// List returns all readable setups, oldest first. Unreadable entries are
// skipped.
func (s *Store) List() ([]SetupMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SetupMetadata{}, nil
		}
		return nil, err
	}

	setups := make([]SetupMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			slog.Debug("skipping setup", "dir", entry.Name(), "error", err)
			continue
		}
		setups = append(setups, *meta)
	}
	sort.Slice(setups, func(i, j int) bool { return setups[i].Timestamp.Before(setups[j].Timestamp) })
	return setups, nil
}

func (s *Store) Load(id string) (*SetupMetadata, error) {
	dir, err := s.setupDir(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	var meta SetupMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadConfig returns the full configuration saved with a setup.
func (s *Store) LoadConfig(id string) (*config.Config, error) {
	dir, err := s.setupDir(id)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(filepath.Join(dir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return cfg, nil
}

func (s *Store) Delete(id string) error {
	dir, err := s.setupDir(id)
	if err != nil {
		return err
	}
	if _, err := s.Load(id); err != nil {
		return err
	}
	return os.RemoveAll(dir)
}
