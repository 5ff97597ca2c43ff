// Package storage persists save documents as JSON files. The engine only
// sees the distinguishable failure kinds: file-system problems surface as
// model.ErrIOFailure, undecodable documents as model.ErrCorruptSave.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/benbeisheim/jungle-backend/internal/model"
	"github.com/pkg/errors"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(name string) string {
	name = strings.TrimSpace(name)
	name = filepath.Base(name) // no directory escapes
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(s.dir, name)
}

func (s *FS) Save(name string, doc *model.SaveDocument) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(model.ErrIOFailure, "create save dir: %v", err)
	}
	f, err := os.Create(s.pathFor(name))
	if err != nil {
		return errors.Wrapf(model.ErrIOFailure, "create save file: %v", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrapf(model.ErrIOFailure, "write save file: %v", err)
	}
	return nil
}

func (s *FS) Load(name string) (*model.SaveDocument, error) {
	data, err := os.ReadFile(s.pathFor(name))
	if err != nil {
		return nil, errors.Wrapf(model.ErrIOFailure, "read save file: %v", err)
	}
	var doc model.SaveDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(model.ErrCorruptSave, "decode save file: %v", err)
	}
	return &doc, nil
}

// List returns the names of all saved games in the directory.
func (s *FS) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(model.ErrIOFailure, "list save dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}
