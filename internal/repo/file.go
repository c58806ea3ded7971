package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// fileItineraryRepo persists the document as an indented JSON file next to
// the binary — the original desktop app's db.json mode, kept for running
// without a database. A missing or unreadable file reports ErrNotFound so the
// service reseeds the default itinerary instead of failing the session.
type fileItineraryRepo struct {
	mu   sync.Mutex
	path string
}

// NewFileItineraryRepo constructs an ItineraryRepo backed by a JSON file at path.
func NewFileItineraryRepo(path string) ItineraryRepo {
	return &fileItineraryRepo{path: path}
}

// Load reads and decodes the document file.
func (r *fileItineraryRepo) Load(_ context.Context) (domain.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Itinerary{}, fmt.Errorf("repo.fileItineraryRepo.Load: %w", domain.ErrNotFound)
		}
		return domain.Itinerary{}, fmt.Errorf("repo.fileItineraryRepo.Load: %w", err)
	}

	var it domain.Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		// A corrupt file is treated the same as no file: the caller reseeds.
		return domain.Itinerary{}, fmt.Errorf("repo.fileItineraryRepo.Load: corrupt document (%v): %w", err, domain.ErrNotFound)
	}
	return it, nil
}

// Save writes the document atomically: a temp file in the same directory,
// then a rename over the target, so a crash mid-write never leaves a
// half-written db.json behind.
func (r *fileItineraryRepo) Save(_ context.Context, it domain.Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return fmt.Errorf("repo.fileItineraryRepo.Save: encode document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".itinerary-*.json")
	if err != nil {
		return fmt.Errorf("repo.fileItineraryRepo.Save: %w", err)
	}
	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("repo.fileItineraryRepo.Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("repo.fileItineraryRepo.Save: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("repo.fileItineraryRepo.Save: %w", err)
	}
	return nil
}
