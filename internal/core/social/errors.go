package social

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// PartialWriteError reports a dual-write that committed on one user
// document but failed on the other. Both sides use idempotent set
// operations, so the relation can always be repaired by re-running the
// toggle: the next call re-reads the committed side and issues only
// set-based writes, leaving no durable half-state.
type PartialWriteError struct {
	Action    Action // the toggle direction that was in progress
	Committed string // which side was durably written ("following" or "followers")
	Err       error  // the failure on the other side
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial %s: %s side committed, other side failed: %v", e.Action, e.Committed, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

// IsPartialWrite checks if an error is a partial dual-write failure
func IsPartialWrite(err error) bool {
	var pw *PartialWriteError
	return errors.As(err, &pw)
}
