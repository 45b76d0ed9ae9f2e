// Package awsks reads resource state from the AWS Keyspaces control plane.
package awsks

import (
	"context"
	"time"

	"github.com/c5c3/keyspaces-operator/internal/metrics"
	"github.com/c5c3/keyspaces-operator/internal/wait"
)

// Default wait budgets for keyspace convergence.
const (
	DefaultKeyspaceWaitTimeout  = 60 * time.Second
	DefaultKeyspaceWaitInterval = 5 * time.Second
)

// WaitKeyspace polls the named keyspace until the matcher holds. Use zero
// timeout/interval for the defaults.
func (c *Client) WaitKeyspace(ctx context.Context, keyspaceName string, m Matcher, timeout, interval time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultKeyspaceWaitTimeout
	}
	if interval <= 0 {
		interval = DefaultKeyspaceWaitInterval
	}

	fetch := func(ctx context.Context) (*Snapshot, error) {
		return c.GetKeyspace(ctx, keyspaceName)
	}

	start := time.Now()
	err := wait.Until(ctx, fetch, m.Matches, timeout, interval)
	metrics.RecordWait("keyspace", waitResult(err), time.Since(start))
	return err
}

// WaitKeyspaceExists polls until the keyspace is returned by the service.
func (c *Client) WaitKeyspaceExists(ctx context.Context, keyspaceName string, timeout, interval time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultKeyspaceWaitTimeout
	}
	if interval <= 0 {
		interval = DefaultKeyspaceWaitInterval
	}

	fetch := func(ctx context.Context) (*Snapshot, error) {
		return c.GetKeyspace(ctx, keyspaceName)
	}
	exists := func(s *Snapshot) bool { return s != nil }

	start := time.Now()
	err := wait.Until(ctx, fetch, exists, timeout, interval)
	metrics.RecordWait("keyspace", waitResult(err), time.Since(start))
	return err
}

// WaitKeyspaceDeleted polls until the keyspace is no longer returned by the
// service. Keyspaces report no status while deleting, so there is no
// transient-status check.
func (c *Client) WaitKeyspaceDeleted(ctx context.Context, keyspaceName string, timeout, interval time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultKeyspaceWaitTimeout
	}
	if interval <= 0 {
		interval = DefaultKeyspaceWaitInterval
	}

	fetch := func(ctx context.Context) (*Snapshot, error) {
		return c.GetKeyspace(ctx, keyspaceName)
	}

	start := time.Now()
	err := wait.UntilDeleted(ctx, fetch, snapshotStatus, timeout, interval, "")
	metrics.RecordWait("keyspace", waitResult(err), time.Since(start))
	return err
}

func snapshotStatus(s *Snapshot) string { return s.Status }

// waitResult maps a wait error to a metrics result label.
func waitResult(err error) string {
	switch err.(type) {
	case nil:
		return metrics.ResultConverged
	case *wait.TimeoutError:
		return metrics.ResultTimeout
	case *wait.UnexpectedStatusError:
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
