package render

import (
	"bytes"
	"strings"

	"resume-builder/resume/model"
	"resume-builder/resume/skills"
)

// contactItem is one entry on the contact line. Href is empty for plain text.
type contactItem struct {
	Text string
	Href string
}

// experienceView is an experience entry prepared for display.
type experienceView struct {
	Position     string
	Company      string
	Location     string
	StartDate    string
	EndDate      string
	Description  string
	Achievements []string
}

// view is the shared data shape every template variant consumes.
type view struct {
	FirstName       string
	LastName        string
	Summary         string
	Contact         []contactItem
	Experience      []experienceView
	Education       []model.Education
	TechnicalSkills []string
	SoftSkills      []string
	Projects        []model.Project
}

// HasSkills reports whether the skills section has anything to show.
func (v view) HasSkills() bool {
	return len(v.TechnicalSkills) > 0 || len(v.SoftSkills) > 0
}

// Render produces the HTML document for the record's selected variant.
// Unrecognized or absent variants fall back to the default template.
func Render(rec model.Resume) ([]byte, error) {
	name := rec.Template
	if !isVariant(name) {
		name = model.DefaultTemplate
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name+".html.tmpl", buildView(rec)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildView(rec model.Resume) view {
	technical, soft := skills.Decode(rec.Skills)

	v := view{
		FirstName:       strings.TrimSpace(rec.FirstName),
		LastName:        strings.TrimSpace(rec.LastName),
		Summary:         strings.TrimSpace(rec.Summary),
		Contact:         buildContact(rec),
		Education:       rec.Education,
		TechnicalSkills: technical,
		SoftSkills:      soft,
		Projects:        rec.Projects,
	}
	for _, exp := range rec.Experience {
		v.Experience = append(v.Experience, experienceView{
			Position:     exp.Position,
			Company:      exp.Company,
			Location:     exp.Location,
			StartDate:    exp.StartDate,
			EndDate:      endDateDisplay(exp),
			Description:  exp.Description,
			Achievements: splitAchievements(exp.Achievements),
		})
	}
	return v
}

// buildContact assembles the contact line in its fixed order: email, phone,
// linkedin, website. Link fields get an https:// href when the stored value
// has no scheme; the visible text stays as stored.
func buildContact(rec model.Resume) []contactItem {
	var items []contactItem
	if rec.Email != "" {
		items = append(items, contactItem{Text: rec.Email})
	}
	if rec.Phone != "" {
		items = append(items, contactItem{Text: rec.Phone})
	}
	if rec.LinkedIn != "" {
		items = append(items, contactItem{Text: rec.LinkedIn, Href: ensureScheme(rec.LinkedIn)})
	}
	if rec.Website != "" {
		items = append(items, contactItem{Text: rec.Website, Href: ensureScheme(rec.Website)})
	}
	return items
}

func ensureScheme(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}

// endDateDisplay renders "Present" for current positions regardless of any
// stored end date. Dates are display strings; no parsing happens anywhere.
func endDateDisplay(exp model.Experience) string {
	if exp.Current {
		return "Present"
	}
	return exp.EndDate
}

// splitAchievements turns the newline-delimited free-text field into list
// items. Blank lines are skipped; no other parsing is attempted.
func splitAchievements(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
