package analysis

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoVideoID is returned when no 11-character video ID can be resolved
// from the input string.
var ErrNoVideoID = errors.New("no video ID found in input")

var (
	watchPattern = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`)
	shortPattern = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`)
	barePattern  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ExtractVideoID resolves a user-supplied string into a canonical video
// ID. URL forms are checked before the bare-ID form so a fragment of a
// URL is never misread as an ID.
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoVideoID
	}

	if m := watchPattern.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if m := shortPattern.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}
	if barePattern.MatchString(raw) {
		return raw, nil
	}
	return "", ErrNoVideoID
}
