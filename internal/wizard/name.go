package wizard

import (
	"errors"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

var (
	errNameRequired = errors.New("project name is required")
	errNameFormat   = errors.New("project name must start with a lowercase letter and contain only lowercase letters, numbers, and hyphens")
)

// ValidateName reports whether name is usable as a project directory name.
func ValidateName(name string) error {
	if name == "" {
		return errNameRequired
	}
	if !namePattern.MatchString(name) {
		return errNameFormat
	}
	return nil
}
