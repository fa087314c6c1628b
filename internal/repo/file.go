package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// fileSlotRepo stores each slot as <dir>/<key>.json. Writes go to a temp file
// in the same directory which is then renamed over the slot, so a crash
// mid-write leaves the previous blob intact.
type fileSlotRepo struct {
	dir string
}

// NewFileSlotRepo constructs a SlotRepo rooted at dir, creating it if needed.
func NewFileSlotRepo(dir string) (SlotRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repo.NewFileSlotRepo: %w", err)
	}
	return &fileSlotRepo{dir: dir}, nil
}

func (r *fileSlotRepo) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}

func (r *fileSlotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, fmt.Errorf("repo.fileSlotRepo.Get: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.fileSlotRepo.Get: %w", err)
	}
	data, err := os.ReadFile(r.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("repo.fileSlotRepo.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.fileSlotRepo.Get: %w", err)
	}
	return data, nil
}

func (r *fileSlotRepo) Put(ctx context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("repo.fileSlotRepo.Put: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.fileSlotRepo.Put: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("repo.fileSlotRepo.Put: %w", err)
	}
	// Remove is a no-op once the rename has succeeded.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.fileSlotRepo.Put: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.fileSlotRepo.Put: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("repo.fileSlotRepo.Put: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path(key)); err != nil {
		return fmt.Errorf("repo.fileSlotRepo.Put: rename: %w", err)
	}
	return nil
}

func (r *fileSlotRepo) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("repo.fileSlotRepo.Delete: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.fileSlotRepo.Delete: %w", err)
	}
	if err := os.Remove(r.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("repo.fileSlotRepo.Delete: %w", err)
	}
	return nil
}
