// Package console defines the markup tokens denbox embeds in formatted
// output and the renderer that resolves them for a terminal. Formatting
// code never emits raw ANSI, so its output stays stable in tests and can
// be stripped for non-terminal sinks.
package console

// Icon tokens understood by the renderer.
const (
	IconFire  = ":fire:"
	IconCheck = ":white_check_mark:"
	IconCross = ":cross_mark:"
)

// StateColor returns the opening and closing style tags for a feature
// line: green when the feature is on, orange when it is off.
func StateColor(enabled bool) (string, string) {
	if enabled {
		return "[green]", "[/green]"
	}
	return "[orange3]", "[/orange3]"
}

// Bool renders a toggle state as an icon token, the off state in red.
func Bool(enabled bool) string {
	if enabled {
		return IconCheck
	}
	return "[red]" + IconCross + "[/red]"
}
