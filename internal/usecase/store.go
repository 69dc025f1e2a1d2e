package usecase

import (
	"sync"

	"FormPull/internal/domain/models"
)

// TipStore holds the latest finished tip sheet for the HTTP surface. One
// pipeline run produces one sheet; readers only ever see a complete one.
type TipStore struct {
	mu    sync.RWMutex
	sheet *models.TipSheet
}

// NewTipStore creates an empty store.
func NewTipStore() *TipStore {
	return &TipStore{}
}

// Set replaces the stored sheet.
func (s *TipStore) Set(sheet *models.TipSheet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheet = sheet
}

// Latest returns the stored sheet, or nil before the first run finishes.
func (s *TipStore) Latest() *models.TipSheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sheet
}
