package id

import (
	"strings"

	"github.com/teris-io/shortid"
)

var shortIdCleaner = strings.NewReplacer("-", "", "_", "")

// ShortId returns a short lowercase alphanumeric id, used to disambiguate
// human readable identifiers such as slugs.
func ShortId() string {
	s, err := shortid.Generate()
	if s = shortIdCleaner.Replace(s); err != nil || s == "" {
		return GetUUIDWithoutDashes()[:8]
	}
	return strings.ToLower(s)
}
