package cli

import "github.com/fatih/color"

// ConsoleNotifier renders transient core notifications to the terminal.
type ConsoleNotifier struct{}

// Success prints a green confirmation.
func (ConsoleNotifier) Success(msg string) {
	color.Green("✔ %s", msg)
}

// Info prints a cyan notice.
func (ConsoleNotifier) Info(msg string) {
	color.Cyan("• %s", msg)
}

// Error prints a red failure message.
func (ConsoleNotifier) Error(msg string) {
	color.Red("✘ %s", msg)
}
