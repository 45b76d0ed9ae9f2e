// Package wait implements fixed-interval convergence polling against an
// external resource: poll a read-only fetch function until a caller-supplied
// condition holds, or fail once a deadline passes.
package wait

import (
	"context"
	"fmt"
	"time"
)

// minInterval is the floor applied to non-positive poll intervals so the
// loop cannot spin without sleeping.
const minInterval = 50 * time.Millisecond

// TimeoutError is returned when the deadline passes before the resource
// converged to the expected condition.
type TimeoutError struct {
	// What names the condition that was being waited for.
	What string
	// Timeout is the total wait budget that was exhausted.
	Timeout time.Duration
	// Polls is the number of fetches performed before giving up.
	Polls int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s (%d polls) waiting for %s", e.Timeout, e.Polls, e.What)
}

// UnexpectedStatusError is returned by UntilDeleted when the resource
// reports a status other than the expected transient one while it still
// exists. This fails fast: such a status is not expected to self-correct,
// so continuing to poll would only delay the failure report.
type UnexpectedStatusError struct {
	Expected string
	Actual   string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("resource reported status %q while waiting for deletion, expected %q", e.Actual, e.Expected)
}

// FetchFunc retrieves the current state of one external resource. A nil
// snapshot with a nil error means the resource is absent. The function must
// be read-only and safe to call repeatedly; the identifying handle is
// captured in the closure together with the provider client.
type FetchFunc[S any] func(ctx context.Context) (*S, error)

// Until polls fetch every interval until match returns true for the fetched
// snapshot, the deadline passes, or fetch reports an error.
//
// Matchers are evaluated against whatever fetch returns, including the nil
// absent snapshot, so "wait until status X" keeps polling rather than
// succeeding when the resource disappears. Fetch errors abort the wait
// immediately; they indicate a provider problem, not a state that converges.
func Until[S any](ctx context.Context, fetch FetchFunc[S], match func(*S) bool, timeout, interval time.Duration) error {
	if interval <= 0 {
		interval = minInterval
	}
	deadline := time.Now().Add(timeout)

	polls := 0
	for {
		snapshot, err := fetch(ctx)
		if err != nil {
			return fmt.Errorf("fetching resource state: %w", err)
		}
		polls++
		if match(snapshot) {
			return nil
		}
		if !time.Now().Before(deadline) {
			return &TimeoutError{What: "resource to match condition", Timeout: timeout, Polls: polls}
		}
		time.Sleep(interval)
	}
}

// UntilDeleted polls fetch every interval until the resource is absent.
//
// If expectTransient is non-empty, every poll that still observes the
// resource must report that status (typically "DELETING"); any other status
// returns an UnexpectedStatusError without waiting for the deadline. The
// status function projects a snapshot onto its status field.
func UntilDeleted[S any](ctx context.Context, fetch FetchFunc[S], status func(*S) string, timeout, interval time.Duration, expectTransient string) error {
	if interval <= 0 {
		interval = minInterval
	}
	deadline := time.Now().Add(timeout)

	polls := 0
	for {
		snapshot, err := fetch(ctx)
		if err != nil {
			return fmt.Errorf("fetching resource state: %w", err)
		}
		polls++
		if snapshot == nil {
			return nil
		}
		if expectTransient != "" {
			if actual := status(snapshot); actual != expectTransient {
				return &UnexpectedStatusError{Expected: expectTransient, Actual: actual}
			}
		}
		if !time.Now().Before(deadline) {
			return &TimeoutError{What: "resource to be deleted", Timeout: timeout, Polls: polls}
		}
		time.Sleep(interval)
	}
}
