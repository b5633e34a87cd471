package command

import (
	"path/filepath"
	"strings"
)

// ResolvePath maps a cd argument to a target path. Arguments that start
// with the home directory are taken as-is; anything else is joined onto
// cwd with a slash, then cleaned. Other absolute paths are therefore
// resolved below cwd.
func ResolvePath(home, cwd, arg string) string {
	if home != "" && strings.HasPrefix(arg, home) {
		return filepath.Clean(arg)
	}
	return filepath.Clean(cwd + "/" + arg)
}
