package services

import (
	"regexp"
	"strconv"
)

// Slugs look like "10812-komatsu-fg10-15": a record id, a hyphen, then
// free text.
var slugPattern = regexp.MustCompile(`^(\d+)-`)

// ResolveSlugID extracts the record id from a slug. The id must be a
// positive integer or the slug is rejected with ErrInvalidSlug.
func ResolveSlugID(slug string) (int, error) {
	m := slugPattern.FindStringSubmatch(slug)
	if m == nil {
		return 0, ErrInvalidSlug
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id <= 0 {
		return 0, ErrInvalidSlug
	}
	return id, nil
}
