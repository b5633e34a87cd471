package schema

import "errors"

var (
	// ErrNotFound indicates a filesystem target does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnknownCommand indicates the interpreter has no such builtin.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidScript indicates a script record failed validation.
	ErrInvalidScript = errors.New("invalid script")
	// ErrInvalidLanguage indicates an unsupported script language.
	ErrInvalidLanguage = errors.New("invalid language")
	// ErrScriptNotFound indicates no script record matched a name.
	ErrScriptNotFound = errors.New("script not found")
	// ErrUnsupportedVersion indicates a persisted file uses an unknown schema version.
	ErrUnsupportedVersion = errors.New("unsupported schema version")
)
