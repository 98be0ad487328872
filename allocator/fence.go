package allocator

import "golang.org/x/exp/slog"

// Fence is a device synchronization primitive issued by allocators whose devices
// require explicit ordering between producers and consumers of a buffer. Most
// allocators never issue one; CreateFence returns nil for them.
type Fence interface {
	BeforeUsingAsInput(provider string, queueID int)
	BeforeUsingAsOutput(provider string, queueID int)
	AfterUsedAsInput(queueID int)
	AfterUsedAsOutput(queueID int)

	// CanRelease reports whether all queued work guarded by this fence has retired.
	CanRelease() bool
}

// SessionState is an opaque handle to the surrounding execution session. This
// package only passes it through to CreateFence; fence-producing allocators in
// execution providers interpret it.
type SessionState struct {
	logger *slog.Logger
}

func NewSessionState(logger *slog.Logger) *SessionState {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionState{logger: logger}
}

func (s *SessionState) Logger() *slog.Logger {
	if s == nil || s.logger == nil {
		return slog.Default()
	}

	return s.logger
}
