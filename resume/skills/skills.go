// Package skills implements the tagged-skill codec: a flat list of strings
// suffixed with " (Technical)" or " (Soft)" on the wire, two labeled category
// lists for editing and rendering.
package skills

import "strings"

const (
	technicalSuffix = " (Technical)"
	softSuffix      = " (Soft)"
)

// Encode flattens two category lists into one tagged list, technical first.
// Order within each category is preserved.
func Encode(technical, soft []string) []string {
	out := make([]string, 0, len(technical)+len(soft))
	for _, s := range technical {
		out = append(out, s+technicalSuffix)
	}
	for _, s := range soft {
		out = append(out, s+softSuffix)
	}
	return out
}

// Decode partitions a flat tagged list into technical and soft category lists,
// stripping the suffixes. Entries matching neither suffix are dropped; decode
// followed by encode is therefore lossy for untagged entries.
func Decode(flat []string) (technical, soft []string) {
	technical, soft, _ = Partition(flat)
	return technical, soft
}

// Partition is Decode plus the leftover entries that matched neither suffix,
// so callers can surface what a re-save would silently drop.
func Partition(flat []string) (technical, soft, unrecognized []string) {
	technical = []string{}
	soft = []string{}
	for _, s := range flat {
		switch {
		case s == "":
			// skip; a malformed persisted entry
		case strings.HasSuffix(s, technicalSuffix):
			technical = append(technical, strings.TrimSuffix(s, technicalSuffix))
		case strings.HasSuffix(s, softSuffix):
			soft = append(soft, strings.TrimSuffix(s, softSuffix))
		default:
			unrecognized = append(unrecognized, s)
		}
	}
	return technical, soft, unrecognized
}

// FilterStrings drops non-string entries from a decoded JSON array. Legacy
// records may hold malformed values; matching must never panic on them.
func FilterStrings(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
