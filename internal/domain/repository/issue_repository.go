package repository

import "context"

// IssueRepository publishes the report as a tracking issue.
type IssueRepository interface {
	// PublishClosed creates an issue and closes it right away. It returns the issue URL.
	PublishClosed(ctx context.Context, title, body string) (string, error)
}

// OutputRepository exposes the workflow runner: inputs, outputs and annotations.
type OutputRepository interface {
	GetInput(name string) string
	SetOutput(name, value string)
	Errorf(format string, a ...interface{})
}
