package service

import (
	"strings"
	"time"
)

// maxFileNameLen keeps derived keys comfortably under object store limits.
const maxFileNameLen = 200

// ResultFileName derives the storage key for a result document:
// member_type_YYYY-MM-DD.pdf. Every character outside [A-Za-z0-9] in the
// name components becomes "_", so the key can never contain a path
// separator. Deterministic; same inputs always map to the same key.
func ResultFileName(memberName, typeTitle string, at time.Time) string {
	member := sanitizeComponent(memberName)
	typ := sanitizeComponent(typeTitle)
	suffix := "_" + at.UTC().Format("2006-01-02") + ".pdf"

	// Over-long names are trimmed, never the date or extension.
	budget := maxFileNameLen - len(suffix) - 1
	if len(member)+len(typ) > budget {
		half := budget / 2
		if len(member) > half {
			member = member[:half]
		}
		if len(typ) > budget-len(member) {
			typ = typ[:budget-len(member)]
		}
	}
	return member + "_" + typ + suffix
}

func sanitizeComponent(s string) string {
	if s == "" {
		return "unknown"
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
