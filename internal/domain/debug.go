package domain

import "time"

// DebugSession records one debugging-assistant interaction.
type DebugSession struct {
	ID           string
	Engine       string
	ErrorMessage string
	Analysis     string
	Solutions    []string
	CreatedAt    time.Time
}
