package handlers

import (
	"net/mail"
	"strings"
	"time"
)

const (
	maxTitleLen       = 200
	maxLocationLen    = 200
	maxDescriptionLen = 1000
	minNameLen        = 2
	maxNameLen        = 50
	minPasswordLen    = 6
)

// normalizeEmail makes email comparison case-insensitive regardless of
// how the database collates.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}

func validName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= minNameLen && n <= maxNameLen
}

func validateRegister(name, email, password string) (string, bool) {
	switch {
	case !validName(name):
		return "Name must be between 2 and 50 characters", false
	case !validEmail(email):
		return "Please provide a valid email", false
	case len(password) < minPasswordLen:
		return "Password must be at least 6 characters", false
	}
	return "", true
}

// parseEventDate accepts RFC 3339 timestamps and bare calendar dates,
// the two shapes the dashboard sends.
func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func validateEvent(title, location, description string) (string, bool) {
	switch {
	case strings.TrimSpace(title) == "":
		return "Title is required", false
	case len(title) > maxTitleLen:
		return "Title must be at most 200 characters", false
	case len(location) > maxLocationLen:
		return "Location must be at most 200 characters", false
	case len(description) > maxDescriptionLen:
		return "Description must be at most 1000 characters", false
	}
	return "", true
}
