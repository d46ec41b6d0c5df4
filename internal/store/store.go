// Package store persists generated puzzles as JSON files on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Puzzle is a persisted Sudoku with the data needed to reproduce it.
// Boards use the 81-character row-major string format, '0' for empty.
type Puzzle struct {
	ID        string `json:"id"`
	GridSeed  int64  `json:"gridSeed"`
	CarveSeed int64  `json:"carveSeed"`
	Hints     int    `json:"hints"`
	Puzzle    string `json:"puzzle"`
	Solution  string `json:"solution,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Meta is a lightweight listing entry.
type Meta struct {
	ID        string `json:"id"`
	Hints     int    `json:"hints"`
	CreatedAt int64  `json:"createdAt"`
}

// FS stores puzzles as one JSON file per puzzle under a directory.
type FS struct{ dir string }

// NewFS creates a store rooted at dir. The directory is created on first Save.
func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, strings.TrimSpace(id)+".json")
}

// Save writes the puzzle to disk, assigning a fresh ID if it has none.
func (s *FS) Save(p *Puzzle) error {
	if p == nil {
		return errors.New("store: nil puzzle")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.pathFor(p.ID))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Load reads a puzzle by ID.
func (s *FS) Load(id string) (*Puzzle, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, err
	}
	var out Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("store: decoding puzzle %s: %w", id, err)
	}
	return &out, nil
}

// List returns metadata for every stored puzzle.
func (s *FS) List() ([]Meta, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []Meta
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var m Meta
		if err := json.Unmarshal(data, &m); err != nil || m.ID == "" {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
