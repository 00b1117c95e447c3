package export

import (
	"strings"

	"resume-builder/internal/shared/util"
)

// Filename builds the download name "First_Last_Resume.pdf". Inner whitespace
// becomes underscores and name parts are sanitized for use in a
// Content-Disposition header. Both name parts must be usable; otherwise the
// generic resume.pdf is returned.
func Filename(firstName, lastName string) string {
	parts := make([]string, 0, 2)
	for _, name := range []string{firstName, lastName} {
		name = strings.Join(strings.Fields(name), "_")
		if name == "" {
			return "resume.pdf"
		}
		safe, err := util.SanitizeFileName(name)
		if err != nil {
			return "resume.pdf"
		}
		parts = append(parts, safe)
	}
	return strings.Join(parts, "_") + "_Resume.pdf"
}
