package git

import "context"

// MockLogReader is a test double for the log readers.
// It allows tests to provide predefined commits without needing a real Git repository.
type MockLogReader struct {
	Records   []CommitRecord
	Remote    string
	Error     error
	RemoteErr error
}

// NewMockLogReader creates a new MockLogReader with the given data.
func NewMockLogReader(records []CommitRecord, remote string, err error) *MockLogReader {
	return &MockLogReader{
		Records: records,
		Remote:  remote,
		Error:   err,
	}
}

// ReadLog returns the predefined records or error.
func (m *MockLogReader) ReadLog(_ context.Context) ([]CommitRecord, error) {
	return m.Records, m.Error
}

// RemoteURL returns the predefined remote or error.
func (m *MockLogReader) RemoteURL(_ context.Context) (string, error) {
	return m.Remote, m.RemoteErr
}
