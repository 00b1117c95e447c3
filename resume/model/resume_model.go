package model

import (
	"errors"
	"strings"
	"time"
)

// DefaultTemplate is the rendering variant used when none is selected.
const DefaultTemplate = "professional"

// Resume is the persisted resume record owned by a single user.
type Resume struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	LinkedIn   string       `json:"linkedin,omitempty"`
	Website    string       `json:"website,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
	Projects   []Project    `json:"projects"`
	Template   string       `json:"template"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Experience is one work history entry. Dates are free-form display strings.
// When Current is true the end date is rendered as "Present" by convention.
type Experience struct {
	Company      string `json:"company"`
	Position     string `json:"position"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
	Achievements string `json:"achievements"`
}

// Education is one education entry.
type Education struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
	Description    string `json:"description"`
}

// Project is one project entry.
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	Highlights   string `json:"highlights"`
}

// Normalize trims scalar fields and applies defaults. It never removes list
// entries; dates and skill strings pass through untouched.
func (r *Resume) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.LinkedIn = strings.TrimSpace(r.LinkedIn)
	r.Website = strings.TrimSpace(r.Website)
	r.Summary = strings.TrimSpace(r.Summary)
	if strings.TrimSpace(r.Template) == "" {
		r.Template = DefaultTemplate
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
}

// Validate enforces the required scalar fields. List entries and dates are
// free-form and never validated.
func (r Resume) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return errors.New("firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return errors.New("lastName is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	return nil
}
