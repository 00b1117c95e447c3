package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/resume/model"
	skillcodec "resume-builder/resume/skills"
)

// PGRepo implements Repo using Postgres. List-valued fields live in JSONB
// columns; scalar fields get their own columns for indexing and inspection.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `
id, user_id, first_name, last_name, email, phone, linkedin, website, summary,
experience, education, skills, projects, template, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, rec model.Resume) error {
	const query = `
INSERT INTO resumes (
	id, user_id, first_name, last_name, email, phone, linkedin, website, summary,
	experience, education, skills, projects, template, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())`
	experience, education, skills, projects, err := marshalLists(rec)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.FirstName,
		rec.LastName,
		rec.Email,
		rec.Phone,
		rec.LinkedIn,
		rec.Website,
		rec.Summary,
		experience,
		education,
		skills,
		projects,
		rec.Template,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]model.Resume, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`, resumeColumns)
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Resume{}
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (model.Resume, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`, resumeColumns)
	rows, err := r.DB.QueryContext(ctx, query, resumeID, userID)
	if err != nil {
		return model.Resume{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Resume{}, err
		}
		return model.Resume{}, ErrNotFound
	}
	return scanResume(rows)
}

func (r *PGRepo) Update(ctx context.Context, rec model.Resume) error {
	const query = `
UPDATE resumes SET
	first_name = $3,
	last_name = $4,
	email = $5,
	phone = $6,
	linkedin = $7,
	website = $8,
	summary = $9,
	experience = $10,
	education = $11,
	skills = $12,
	projects = $13,
	template = $14,
	updated_at = now()
WHERE id = $1 AND user_id = $2`
	experience, education, skills, projects, err := marshalLists(rec)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.FirstName,
		rec.LastName,
		rec.Email,
		rec.Phone,
		rec.LinkedIn,
		rec.Website,
		rec.Summary,
		experience,
		education,
		skills,
		projects,
		rec.Template,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, resumeID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalLists(rec model.Resume) (experience, education, skills, projects []byte, err error) {
	if experience, err = marshalJSONB(rec.Experience); err != nil {
		return nil, nil, nil, nil, err
	}
	if education, err = marshalJSONB(rec.Education); err != nil {
		return nil, nil, nil, nil, err
	}
	if skills, err = marshalJSONB(rec.Skills); err != nil {
		return nil, nil, nil, nil, err
	}
	if projects, err = marshalJSONB(rec.Projects); err != nil {
		return nil, nil, nil, nil, err
	}
	return experience, education, skills, projects, nil
}

func marshalJSONB(value any) ([]byte, error) {
	if value == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(value)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (model.Resume, error) {
	var rec model.Resume
	var phone, linkedin, website, summary sql.NullString
	var experience, education, skills, projects []byte
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Email,
		&phone,
		&linkedin,
		&website,
		&summary,
		&experience,
		&education,
		&skills,
		&projects,
		&rec.Template,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Resume{}, ErrNotFound
		}
		return model.Resume{}, err
	}
	rec.Phone = phone.String
	rec.LinkedIn = linkedin.String
	rec.Website = website.String
	rec.Summary = summary.String
	if err := unmarshalJSONB(experience, &rec.Experience); err != nil {
		return model.Resume{}, err
	}
	if err := unmarshalJSONB(education, &rec.Education); err != nil {
		return model.Resume{}, err
	}
	// Legacy rows can hold non-string skill entries; filter instead of failing.
	var rawSkills []any
	if err := unmarshalJSONB(skills, &rawSkills); err != nil {
		return model.Resume{}, err
	}
	rec.Skills = skillcodec.FilterStrings(rawSkills)
	if err := unmarshalJSONB(projects, &rec.Projects); err != nil {
		return model.Resume{}, err
	}
	rec.Normalize()
	return rec, nil
}

func unmarshalJSONB(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
