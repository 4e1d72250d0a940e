package recetario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/recetario/xlsx"
	"go.uber.org/zap"
)

// HistoryFile is the history file name in the save directory.
const HistoryFile = "historico_comidas.xlsx"

// HistoryStore persists the history as a single spreadsheet.
//
// Every write rewrites the whole file. There is no locking: a single user is assumed.
type HistoryStore struct {
	Path   string
	Logger *zap.Logger
}

// NewHistoryStore returns the store of the history file in saveDir.
func NewHistoryStore(saveDir string) *HistoryStore {
	return &HistoryStore{Path: filepath.Join(saveDir, HistoryFile), Logger: zap.NewNop()}
}

func (s *HistoryStore) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Load reads the full history.
//
// If the file does not exist, it returns an empty History and ErrEmptyHistory.
func (s *HistoryStore) Load() (*History, error) {
	if _, err := os.Stat(s.Path); errors.Is(err, fs.ErrNotExist) {
		return NewHistory(), ErrEmptyHistory
	}
	t, err := xlsx.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read history: %w", err)
	}
	h, err := DecodeHistory(t)
	if err != nil {
		return nil, fmt.Errorf("could not decode history %q: %w", s.Path, err)
	}
	s.logger().Debug("history loaded", zap.String("path", s.Path), zap.Int("entries", h.Len()))
	return h, nil
}

// Append adds entries after the existing ones and rewrites the file, creating it if needed.
// It returns the new full history.
func (s *HistoryStore) Append(entries ...Entry) (*History, error) {
	h, err := s.Load()
	if err != nil && !errors.Is(err, ErrEmptyHistory) {
		return nil, err
	}
	h.Append(entries...)
	if err := s.write(h.Entries()); err != nil {
		return nil, err
	}
	s.logger().Info("meal saved", zap.String("path", s.Path), zap.Int("appended", len(entries)), zap.Int("entries", h.Len()))
	return h, nil
}

// BulkReplace overwrites the history with an edited table.
//
// The whole table is decoded first: on any malformed row nothing is written and
// the previous file is left untouched.
func (s *HistoryStore) BulkReplace(t *xlsx.Table) (*History, error) {
	h, err := DecodeHistory(t)
	if err != nil {
		return nil, err
	}
	if err := s.write(h.Entries()); err != nil {
		return nil, err
	}
	s.logger().Info("history replaced", zap.String("path", s.Path), zap.Int("entries", h.Len()))
	return h, nil
}

// Export writes the history, most recent first, to path for editing.
func (s *HistoryStore) Export(path string) (*History, error) {
	h, err := s.Load()
	if err != nil && !errors.Is(err, ErrEmptyHistory) {
		return nil, err
	}
	if err := xlsx.WriteFile(path, EncodeHistory(h.Sorted())); err != nil {
		return nil, fmt.Errorf("could not export history: %w", err)
	}
	return h, nil
}

func (s *HistoryStore) write(entries []Entry) error {
	if err := xlsx.WriteFile(s.Path, EncodeHistory(entries)); err != nil {
		return fmt.Errorf("could not save history: %w", err)
	}
	return nil
}
