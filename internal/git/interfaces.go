package git

import "context"

// LogReader reads one repository's commit history for the configured author and year.
// This abstraction allows for easier testing and an alternative go-git implementation.
type LogReader interface {
	// ReadLog returns the commits newest first.
	ReadLog(ctx context.Context) ([]CommitRecord, error)
}

// RemoteResolver looks up the repository's remote URL.
type RemoteResolver interface {
	RemoteURL(ctx context.Context) (string, error)
}

// Repository combines both lookups performed for each repository.
type Repository interface {
	LogReader
	RemoteResolver
}

// Compile-time interface conformance checks.
var (
	_ Repository = (*CLIReader)(nil)
	_ Repository = (*GoGitReader)(nil)
	_ Repository = (*MockLogReader)(nil)
)

// NewRepository creates the reader selected by kind.
func NewRepository(kind ReaderKind, opts ReadOptions) (Repository, error) {
	switch kind {
	case ReaderGoGit:
		return NewGoGitReader(opts)
	default:
		return NewCLIReader(opts), nil
	}
}
