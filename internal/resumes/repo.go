package resumes

import (
	"context"

	"resume-builder/resume/model"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "resume not found" }

var ErrInvalidInput = errInvalidInput{}

type errInvalidInput struct{}

func (errInvalidInput) Error() string { return "invalid input" }

// Repo persists resume records. Every read and write is scoped to the owning
// user; a record belonging to someone else behaves as if it does not exist.
type Repo interface {
	Create(ctx context.Context, rec model.Resume) error
	ListByUser(ctx context.Context, userID string) ([]model.Resume, error)
	GetByID(ctx context.Context, userID, resumeID string) (model.Resume, error)
	Update(ctx context.Context, rec model.Resume) error
	Delete(ctx context.Context, userID, resumeID string) error
}
