package domain

import "context"

// SubmissionState is the state of a create-form submission.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)

// ReleaseFunc ends a submission started with SubmissionGuard.Begin.
type ReleaseFunc func(ctx context.Context) error

// SubmissionGuard allows at most one in-flight submission per owner.
type SubmissionGuard interface {
	// Begin marks the owner as submitting. It returns ErrSubmissionInProgress
	// when a submission is already running.
	Begin(ctx context.Context, userID string) (ReleaseFunc, error)
	// State reports SubmissionSubmitting while a submission runs, SubmissionIdle otherwise.
	State(ctx context.Context, userID string) (SubmissionState, error)
}
