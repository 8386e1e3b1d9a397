package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the durable mirror of the client session: the cart lines
// plus cached settings and catalog snapshots.
type Storage interface {
	SaveLines(lines []Line) error
	LoadLines() ([]Line, error)
	SaveSettings(settings Settings) error
	LoadSettings() (Settings, bool, error)
	SaveProducts(products []Product) error
	LoadProducts() ([]Product, error)
}

type persistedState struct {
	Cart     []Line    `json:"cart"`
	Settings *Settings `json:"settings"`
	Products []Product `json:"products"`
}

// FileStorage keeps the session state in a single JSON file. A
// missing file reads as an empty session; a corrupt one is discarded
// rather than surfaced as a fatal error.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) read() (persistedState, error) {
	var state persistedState
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return state, nil
		}
		return state, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		// Corrupt state file: start over with an empty session.
		return persistedState{}, nil
	}
	return state, nil
}

func (s *FileStorage) write(state persistedState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileStorage) SaveLines(lines []Line) error {
	state, err := s.read()
	if err != nil {
		return err
	}
	state.Cart = lines
	return s.write(state)
}

// LoadLines returns the persisted cart lines. Entries missing a valid
// id, price or quantity are dropped instead of crashing the session.
func (s *FileStorage) LoadLines() ([]Line, error) {
	state, err := s.read()
	if err != nil {
		return nil, err
	}
	var lines []Line
	for _, line := range state.Cart {
		if line.ProductId == "" || line.Price <= 0 || line.Quantity <= 0 {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *FileStorage) SaveSettings(settings Settings) error {
	state, err := s.read()
	if err != nil {
		return err
	}
	state.Settings = &settings
	return s.write(state)
}

func (s *FileStorage) LoadSettings() (Settings, bool, error) {
	state, err := s.read()
	if err != nil {
		return Settings{}, false, err
	}
	if state.Settings == nil {
		return Settings{}, false, nil
	}
	return *state.Settings, true, nil
}

func (s *FileStorage) SaveProducts(products []Product) error {
	state, err := s.read()
	if err != nil {
		return err
	}
	state.Products = products
	return s.write(state)
}

func (s *FileStorage) LoadProducts() ([]Product, error) {
	state, err := s.read()
	if err != nil {
		return nil, err
	}
	return state.Products, nil
}
