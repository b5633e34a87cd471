package registry

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"pkt.systems/toterm/schema"
)

const (
	minNameLength        = 3
	minDescriptionLength = 10
	maxDescriptionLength = 500
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-\s]+$`)

// Validate applies the script form rules. A path that does not exist yet is
// accepted and reported as a warning; a path that is a directory is not.
func Validate(fs afero.Fs, script schema.Script) (warnings []string, err error) {
	var problems []string

	name := strings.TrimSpace(script.Name)
	switch {
	case name == "":
		problems = append(problems, "name is required")
	case utf8.RuneCountInString(name) < minNameLength:
		problems = append(problems, fmt.Sprintf("name must be at least %d characters", minNameLength))
	case !namePattern.MatchString(name):
		problems = append(problems, "name may only contain letters, digits, spaces, '-' and '_'")
	}

	path := strings.TrimSpace(script.Path)
	if path == "" {
		problems = append(problems, "path is required")
	} else {
		info, statErr := fs.Stat(path)
		switch {
		case statErr != nil && errors.Is(statErr, os.ErrNotExist):
			warnings = append(warnings, fmt.Sprintf("path %s does not exist yet", path))
		case statErr != nil:
			problems = append(problems, fmt.Sprintf("path %s: %v", path, statErr))
		case !info.Mode().IsRegular():
			problems = append(problems, fmt.Sprintf("path %s is not a file", path))
		}
	}

	if _, langErr := schema.NormalizeLanguage(string(script.Language)); langErr != nil {
		problems = append(problems, fmt.Sprintf("language %q is not supported", script.Language))
	}

	description := strings.TrimSpace(script.Description)
	switch n := utf8.RuneCountInString(description); {
	case n == 0:
		problems = append(problems, "description is required")
	case n < minDescriptionLength:
		problems = append(problems, fmt.Sprintf("description must be at least %d characters", minDescriptionLength))
	case n > maxDescriptionLength:
		problems = append(problems, fmt.Sprintf("description must be at most %d characters", maxDescriptionLength))
	}

	if len(problems) > 0 {
		return warnings, fmt.Errorf("%w: %s", schema.ErrInvalidScript, strings.Join(problems, "; "))
	}
	return warnings, nil
}
