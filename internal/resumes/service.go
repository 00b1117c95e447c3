package resumes

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/builder"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	"resume-builder/resume/skills"
)

// ValidationError carries a message suitable for the response body.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

type Service struct {
	Repo  Repo
	Cache *Cache
}

func NewService(repo Repo, cache *Cache) *Service {
	return &Service{Repo: repo, Cache: cache}
}

// Create validates and stores a new record for the user.
func (s *Service) Create(ctx context.Context, userID string, rec model.Resume) (model.Resume, error) {
	if s == nil || s.Repo == nil {
		return model.Resume{}, errors.New("resumes service not configured")
	}
	if userID == "" {
		return model.Resume{}, errors.New("user id is required")
	}

	rec.ID = uuid.NewString()
	rec.UserID = userID
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return model.Resume{}, ValidationError{Message: err.Error()}
	}
	logUnrecognizedSkills(userID, rec)

	if err := s.Repo.Create(ctx, rec); err != nil {
		return model.Resume{}, err
	}
	stored, err := s.Repo.GetByID(ctx, userID, rec.ID)
	if err != nil {
		return rec, nil
	}
	s.Cache.Set(stored)
	return stored, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]model.Resume, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, resumeID string) (model.Resume, error) {
	if userID == "" || resumeID == "" {
		return model.Resume{}, ErrNotFound
	}
	if rec, ok := s.Cache.Get(userID, resumeID); ok {
		return rec, nil
	}
	rec, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return model.Resume{}, err
	}
	s.Cache.Set(rec)
	return rec, nil
}

// Update replaces the stored record. Ownership is enforced by the repo; a
// record owned by someone else surfaces as not found.
func (s *Service) Update(ctx context.Context, userID, resumeID string, rec model.Resume) (model.Resume, error) {
	if userID == "" || resumeID == "" {
		return model.Resume{}, ErrNotFound
	}
	rec.ID = resumeID
	rec.UserID = userID
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return model.Resume{}, ValidationError{Message: err.Error()}
	}
	logUnrecognizedSkills(userID, rec)

	s.Cache.Invalidate(userID, resumeID)
	if err := s.Repo.Update(ctx, rec); err != nil {
		return model.Resume{}, err
	}
	stored, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return rec, nil
	}
	s.Cache.Set(stored)
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if userID == "" || resumeID == "" {
		return ErrNotFound
	}
	s.Cache.Invalidate(userID, resumeID)
	return s.Repo.Delete(ctx, userID, resumeID)
}

// ApplyWizard replays an ordered list of section edits and saves the result.
// With no resume id it creates a new record; with one it loads the stored
// record as the base and updates it. Returns the saved record and whether it
// was created.
func (s *Service) ApplyWizard(ctx context.Context, userID, resumeID string, edits []builder.Edit) (model.Resume, bool, error) {
	if userID == "" {
		return model.Resume{}, false, errors.New("user id is required")
	}

	base := builder.NewDraft().Resume
	if resumeID != "" {
		stored, err := s.Get(ctx, userID, resumeID)
		if err != nil {
			return model.Resume{}, false, err
		}
		base = stored
	}

	result, err := builder.Replay(base, edits)
	if err != nil {
		var unknown builder.ErrUnknownSection
		if errors.As(err, &unknown) {
			return model.Resume{}, false, ValidationError{Message: err.Error()}
		}
		return model.Resume{}, false, ValidationError{Message: "invalid wizard payload"}
	}

	if resumeID == "" {
		rec, err := s.Create(ctx, userID, result)
		return rec, true, err
	}
	rec, err := s.Update(ctx, userID, resumeID, result)
	return rec, false, err
}

// RenderHTML produces the HTML document for a stored record.
func (s *Service) RenderHTML(ctx context.Context, userID, resumeID string) ([]byte, model.Resume, error) {
	rec, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return nil, model.Resume{}, err
	}
	html, err := render.Render(rec)
	if err != nil {
		return nil, model.Resume{}, err
	}
	return html, rec, nil
}

// logUnrecognizedSkills surfaces entries a decode would silently drop.
func logUnrecognizedSkills(userID string, rec model.Resume) {
	_, _, unrecognized := skills.Partition(rec.Skills)
	if len(unrecognized) == 0 {
		return
	}
	telemetry.Info("resumes.skills_unrecognized", map[string]any{
		"user_id":   userID,
		"resume_id": rec.ID,
		"count":     len(unrecognized),
	})
}
