package builder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func TestApplyPersonalInfoMergesShallowly(t *testing.T) {
	d := NewDraft()
	d.Resume.FirstName = "Jane"
	d.Resume.Phone = "555-1234"

	err := d.Apply(SectionPersonalInfo, json.RawMessage(`{"lastName":"Doe","email":"jane@x.com"}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane", d.Resume.FirstName, "absent keys stay untouched")
	assert.Equal(t, "Doe", d.Resume.LastName)
	assert.Equal(t, "jane@x.com", d.Resume.Email)
	assert.Equal(t, "555-1234", d.Resume.Phone)
}

func TestApplyPersonalInfoEmptyStringOverwrites(t *testing.T) {
	d := NewDraft()
	d.Resume.Summary = "old summary"

	err := d.Apply(SectionPersonalInfo, json.RawMessage(`{"summary":""}`))
	require.NoError(t, err)

	assert.Empty(t, d.Resume.Summary, "a present empty value overwrites")
}

func TestApplyListSectionReplacesWholesale(t *testing.T) {
	d := NewDraft()
	d.Resume.Experience = []model.Experience{
		{Company: "Old Corp", Position: "Engineer"},
		{Company: "Older Corp", Position: "Intern"},
	}

	err := d.Apply(SectionExperience, json.RawMessage(`[{"company":"New Corp","position":"Lead"}]`))
	require.NoError(t, err)

	require.Len(t, d.Resume.Experience, 1)
	assert.Equal(t, "New Corp", d.Resume.Experience[0].Company)
}

func TestApplyListSectionNullClears(t *testing.T) {
	d := NewDraft()
	d.Resume.Projects = []model.Project{{Name: "old"}}

	err := d.Apply(SectionProjects, json.RawMessage(`null`))
	require.NoError(t, err)

	assert.Empty(t, d.Resume.Projects)
	assert.NotNil(t, d.Resume.Projects)
}

func TestApplySkillsFiltersNonStrings(t *testing.T) {
	d := NewDraft()

	err := d.Apply(SectionSkills, json.RawMessage(`["Go (Technical)", 7, {"x":1}, "Teamwork (Soft)"]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Go (Technical)", "Teamwork (Soft)"}, d.Resume.Skills)
}

func TestApplyTemplate(t *testing.T) {
	d := NewDraft()

	err := d.Apply(SectionTemplate, json.RawMessage(`"modern"`))
	require.NoError(t, err)

	assert.Equal(t, "modern", d.Resume.Template)
}

func TestApplyUnknownSection(t *testing.T) {
	d := NewDraft()

	err := d.Apply("references", json.RawMessage(`[]`))
	require.Error(t, err)
	assert.ErrorAs(t, err, &ErrUnknownSection{})
}

func TestReplayBuildsRecordInStepOrder(t *testing.T) {
	edits := []Edit{
		{Section: SectionTemplate, Value: json.RawMessage(`"modern"`)},
		{Section: SectionPersonalInfo, Value: json.RawMessage(`{"firstName":" Jane ","lastName":"Doe","email":"jane@x.com"}`)},
		{Section: SectionSkills, Value: json.RawMessage(`["SQL (Technical)","Teamwork (Soft)"]`)},
	}

	rec, err := Replay(model.Resume{}, edits)
	require.NoError(t, err)

	assert.Equal(t, "Jane", rec.FirstName, "replay normalizes the result")
	assert.Equal(t, "modern", rec.Template)
	assert.Equal(t, []string{"SQL (Technical)", "Teamwork (Soft)"}, rec.Skills)
	assert.NotNil(t, rec.Experience)
}

func TestReplayOverExistingRecordKeepsUntouchedSections(t *testing.T) {
	base := model.Resume{
		ID:        "r-1",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Education: []model.Education{{School: "MIT"}},
	}
	edits := []Edit{
		{Section: SectionPersonalInfo, Value: json.RawMessage(`{"phone":"555-0000"}`)},
	}

	rec, err := Replay(base, edits)
	require.NoError(t, err)

	assert.Equal(t, "r-1", rec.ID)
	assert.Equal(t, "555-0000", rec.Phone)
	require.Len(t, rec.Education, 1)
	assert.Equal(t, "MIT", rec.Education[0].School)
}

func TestReplayStopsOnBadEdit(t *testing.T) {
	edits := []Edit{
		{Section: SectionExperience, Value: json.RawMessage(`{"not":"a list"}`)},
	}

	_, err := Replay(model.Resume{}, edits)
	assert.Error(t, err)
}
