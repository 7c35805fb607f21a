package generator

import (
	"errors"
	"fmt"
)

// Stage names the step of a run that failed.
type Stage string

const (
	StageDirectories Stage = "ensure directories"
	StageFrames      Stage = "write frame sequence"
	StageFallbacks   Stage = "write fallback images"
)

// StageError wraps the filesystem error that stopped a run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// FailedStage reports the stage recorded in err, if any.
func FailedStage(err error) (Stage, bool) {
	var e *StageError
	if errors.As(err, &e) {
		return e.Stage, true
	}
	return "", false
}
