// Package i18n resolves user-facing message keys to localized text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localizer resolves a message key, formatting args into the result.
type Localizer interface {
	Text(key string, args ...any) string
}

// Message keys.
const (
	KeyWelcome         = "main.terminal.welcome"
	KeyHelpHint        = "main.terminal.help_hint"
	KeyStatusReady     = "main.status.ready"
	KeyHelpTitle       = "main.commands.help.title"
	KeyHelpHelp        = "main.commands.help.help"
	KeyHelpClear       = "main.commands.help.clear"
	KeyHelpPwd         = "main.commands.help.pwd"
	KeyHelpWhoami      = "main.commands.help.whoami"
	KeyHelpDate        = "main.commands.help.date"
	KeyHelpEcho        = "main.commands.help.echo"
	KeyHelpCd          = "main.commands.help.cd"
	KeyHelpExit        = "main.commands.help.exit"
	KeyUnknownCommand  = "main.commands.unknown"
	KeyHelpSuggestion  = "main.commands.help_suggestion"
	KeyCdNotFound      = "main.commands.cd.not_found"
	KeyCdUsage         = "main.commands.cd.usage"
	KeyConfigLoadError = "main.config.load_error"
	KeyLogOpenError    = "main.log.open_error"
)

var supported = []language.Tag{language.English, language.Spanish}

var messages = map[language.Tag]map[string]string{
	language.English: {
		KeyWelcome:         "Welcome to ToTerminal",
		KeyHelpHint:        "Type 'help' to see the available commands",
		KeyStatusReady:     "Ready",
		KeyHelpTitle:       "Available commands:",
		KeyHelpHelp:        "  help     - show this help",
		KeyHelpClear:       "  clear    - clear the screen",
		KeyHelpPwd:         "  pwd      - print the working directory",
		KeyHelpWhoami:      "  whoami   - print the current user",
		KeyHelpDate:        "  date     - print the current date and time",
		KeyHelpEcho:        "  echo     - print the given text",
		KeyHelpCd:          "  cd       - change the working directory",
		KeyHelpExit:        "  exit     - close the terminal",
		KeyUnknownCommand:  "unknown command: %s",
		KeyHelpSuggestion:  "Type 'help' to see the available commands",
		KeyCdNotFound:      "cd: no such file or directory: %s",
		KeyCdUsage:         "usage: cd <path>",
		KeyConfigLoadError: "warning: settings could not be loaded, using defaults: %v",
		KeyLogOpenError:    "warning: command log could not be opened: %v",
	},
	language.Spanish: {
		KeyWelcome:         "Bienvenido a ToTerminal",
		KeyHelpHint:        "Escribe 'help' para ver los comandos disponibles",
		KeyStatusReady:     "Listo",
		KeyHelpTitle:       "Comandos disponibles:",
		KeyHelpHelp:        "  help     - muestra esta ayuda",
		KeyHelpClear:       "  clear    - limpia la pantalla",
		KeyHelpPwd:         "  pwd      - muestra el directorio actual",
		KeyHelpWhoami:      "  whoami   - muestra el usuario actual",
		KeyHelpDate:        "  date     - muestra la fecha y hora actual",
		KeyHelpEcho:        "  echo     - muestra el texto indicado",
		KeyHelpCd:          "  cd       - cambia el directorio actual",
		KeyHelpExit:        "  exit     - cierra la terminal",
		KeyUnknownCommand:  "comando desconocido: %s",
		KeyHelpSuggestion:  "Escribe 'help' para ver los comandos disponibles",
		KeyCdNotFound:      "cd: no existe el archivo o directorio: %s",
		KeyCdUsage:         "uso: cd <ruta>",
		KeyConfigLoadError: "aviso: no se pudo cargar la configuración, se usan los valores por defecto: %v",
		KeyLogOpenError:    "aviso: no se pudo abrir el registro de comandos: %v",
	},
}

var builder = newBuilder()

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range messages {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

var matcher = language.NewMatcher(supported)

// Catalog is a Localizer backed by the built-in message catalog.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a catalog for the closest supported match of lang.
// Unknown or empty values select English.
func New(lang string) *Catalog {
	tag := Match(lang)
	return &Catalog{tag: tag, printer: message.NewPrinter(tag, message.Catalog(builder))}
}

// Match returns the supported language closest to lang.
func Match(lang string) language.Tag {
	requested, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(requested)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Language returns the selected language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Text resolves key. Unknown keys are returned verbatim.
func (c *Catalog) Text(key string, args ...any) string {
	if _, ok := messages[language.English][key]; !ok {
		return key
	}
	return c.printer.Sprintf(key, args...)
}
