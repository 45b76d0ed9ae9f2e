// Package awsks reads resource state from the AWS Keyspaces control plane.
package awsks

import (
	"context"
	"time"

	"github.com/c5c3/keyspaces-operator/internal/metrics"
	"github.com/c5c3/keyspaces-operator/internal/wait"
)

// Default wait budgets for table convergence. Tables take longer than
// keyspaces to create and delete, so the budgets are wider.
const (
	DefaultTableWaitTimeout  = 2 * time.Minute
	DefaultTableWaitInterval = 15 * time.Second

	DefaultTableDeleteTimeout  = 2 * time.Minute
	DefaultTableDeleteInterval = 15 * time.Second
)

// WaitTable polls the named table until the matcher holds. Use zero
// timeout/interval for the defaults.
func (c *Client) WaitTable(ctx context.Context, keyspaceName, tableName string, m Matcher, timeout, interval time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTableWaitTimeout
	}
	if interval <= 0 {
		interval = DefaultTableWaitInterval
	}

	fetch := func(ctx context.Context) (*Snapshot, error) {
		return c.GetTable(ctx, keyspaceName, tableName)
	}

	start := time.Now()
	err := wait.Until(ctx, fetch, m.Matches, timeout, interval)
	metrics.RecordWait("table", waitResult(err), time.Since(start))
	return err
}

// WaitTableDeleted polls until the table is no longer returned by the
// service. While the table still exists it must report DELETING; any other
// status fails the wait immediately, because a table that was deleted
// through its custom resource has no legitimate reason to be in another
// state.
func (c *Client) WaitTableDeleted(ctx context.Context, keyspaceName, tableName string, timeout, interval time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTableDeleteTimeout
	}
	if interval <= 0 {
		interval = DefaultTableDeleteInterval
	}

	fetch := func(ctx context.Context) (*Snapshot, error) {
		return c.GetTable(ctx, keyspaceName, tableName)
	}

	start := time.Now()
	err := wait.UntilDeleted(ctx, fetch, snapshotStatus, timeout, interval, StatusDeleting)
	metrics.RecordWait("table", waitResult(err), time.Since(start))
	return err
}
