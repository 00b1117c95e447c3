package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"resume-builder/resume/model"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]model.Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[string]model.Resume)}
}

func (r *MemoryRepo) Create(ctx context.Context, rec model.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.ID == "" || rec.UserID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.resumes[rec.ID] = rec
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Resume{}
	for _, rec := range r.resumes {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.resumes[resumeID]
	if !ok || rec.UserID != userID {
		return model.Resume{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) Update(ctx context.Context, rec model.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[rec.ID]
	if !ok || existing.UserID != rec.UserID {
		return ErrNotFound
	}
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	r.resumes[rec.ID] = rec
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.resumes[resumeID]
	if !ok || rec.UserID != userID {
		return ErrNotFound
	}
	delete(r.resumes, resumeID)
	return nil
}
