package schema

// StyleClass tags an output line so the display can style it.
type StyleClass string

const (
	StyleNormal  StyleClass = "normal"
	StyleOutput  StyleClass = "output"
	StyleError   StyleClass = "error"
	StyleInfo    StyleClass = "info"
	StyleWelcome StyleClass = "welcome"
	StyleCommand StyleClass = "command"
)

// OutputLine is one line emitted towards the display.
type OutputLine struct {
	Text  string     `json:"text"`
	Style StyleClass `json:"style"`
}

// Line builds an output line.
func Line(style StyleClass, text string) OutputLine {
	return OutputLine{Text: text, Style: style}
}

// BlankLine is the separator emitted after every interpreted command.
func BlankLine() OutputLine {
	return OutputLine{Style: StyleNormal}
}

// StyleClasses returns every known style class in display order.
func StyleClasses() []StyleClass {
	return []StyleClass{StyleNormal, StyleOutput, StyleError, StyleInfo, StyleWelcome, StyleCommand}
}
