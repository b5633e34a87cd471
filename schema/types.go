package schema

// Language identifies the runtime a registered script targets.
type Language string

const (
	// LanguageJava runs scripts with the java launcher.
	LanguageJava Language = "Java"
	// LanguageNodeJS runs scripts with node.
	LanguageNodeJS Language = "NodeJS"
)

// ScriptStatus reports whether a script file was found on the last scan.
type ScriptStatus string

const (
	// StatusOK is the status of a freshly loaded or created script.
	StatusOK ScriptStatus = "OK"
	// StatusNotFound marks a script whose path is missing on disk.
	StatusNotFound ScriptStatus = "NotFound"
)

// FontFamily identifies one of the fixed terminal fonts.
type FontFamily string

// SessionID identifies an interactive shell session.
type SessionID string
