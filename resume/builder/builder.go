// Package builder aggregates wizard section edits into a resume draft.
// Each section editor submits its value independently; personal info merges
// shallowly while list-valued sections replace their list wholesale.
package builder

import (
	"encoding/json"
	"fmt"

	"resume-builder/resume/model"
	"resume-builder/resume/skills"
)

// Section keys, in wizard step order.
const (
	SectionTemplate     = "template"
	SectionPersonalInfo = "personalInfo"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
)

// Sections lists the wizard steps in order.
var Sections = []string{
	SectionTemplate,
	SectionPersonalInfo,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
}

// ErrUnknownSection reports an edit addressed to a section the wizard does not have.
type ErrUnknownSection struct {
	Section string
}

func (e ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown wizard section %q", e.Section)
}

// Edit is one section submission from the wizard.
type Edit struct {
	Section string          `json:"section"`
	Value   json.RawMessage `json:"value"`
}

// Draft accumulates section edits before the save at the end of the wizard.
type Draft struct {
	Resume model.Resume
}

// NewDraft returns an empty draft with defaults applied.
func NewDraft() Draft {
	var r model.Resume
	r.Normalize()
	return Draft{Resume: r}
}

// FromRecord seeds a draft from an existing record, for edit flows.
func FromRecord(rec model.Resume) Draft {
	rec.Normalize()
	return Draft{Resume: rec}
}

// personalInfo carries the partial field set of the personal-info step.
// Nil fields were absent from the submission and leave the draft untouched.
type personalInfo struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	LinkedIn  *string `json:"linkedin"`
	Website   *string `json:"website"`
	Summary   *string `json:"summary"`
}

// Apply merges one section edit into the draft. No cross-section validation
// happens here; that is deferred to the save.
func (d *Draft) Apply(section string, value json.RawMessage) error {
	switch section {
	case SectionTemplate:
		var tpl string
		if err := json.Unmarshal(value, &tpl); err != nil {
			return fmt.Errorf("template: %w", err)
		}
		d.Resume.Template = tpl
	case SectionPersonalInfo:
		var info personalInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return fmt.Errorf("personalInfo: %w", err)
		}
		applyIfSet(&d.Resume.FirstName, info.FirstName)
		applyIfSet(&d.Resume.LastName, info.LastName)
		applyIfSet(&d.Resume.Email, info.Email)
		applyIfSet(&d.Resume.Phone, info.Phone)
		applyIfSet(&d.Resume.LinkedIn, info.LinkedIn)
		applyIfSet(&d.Resume.Website, info.Website)
		applyIfSet(&d.Resume.Summary, info.Summary)
	case SectionExperience:
		var entries []model.Experience
		if err := json.Unmarshal(value, &entries); err != nil {
			return fmt.Errorf("experience: %w", err)
		}
		if entries == nil {
			entries = []model.Experience{}
		}
		d.Resume.Experience = entries
	case SectionEducation:
		var entries []model.Education
		if err := json.Unmarshal(value, &entries); err != nil {
			return fmt.Errorf("education: %w", err)
		}
		if entries == nil {
			entries = []model.Education{}
		}
		d.Resume.Education = entries
	case SectionSkills:
		// Tolerate non-string entries in legacy payloads instead of failing.
		var raw []any
		if err := json.Unmarshal(value, &raw); err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		d.Resume.Skills = skills.FilterStrings(raw)
	case SectionProjects:
		var entries []model.Project
		if err := json.Unmarshal(value, &entries); err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		if entries == nil {
			entries = []model.Project{}
		}
		d.Resume.Projects = entries
	default:
		return ErrUnknownSection{Section: section}
	}
	return nil
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Replay applies an ordered edit list over a base record and returns the
// normalized result, ready to save. The base is an empty draft for new
// resumes, or the stored record for edit flows.
func Replay(base model.Resume, edits []Edit) (model.Resume, error) {
	draft := FromRecord(base)
	for _, edit := range edits {
		if err := draft.Apply(edit.Section, edit.Value); err != nil {
			return model.Resume{}, err
		}
	}
	draft.Resume.Normalize()
	return draft.Resume, nil
}
