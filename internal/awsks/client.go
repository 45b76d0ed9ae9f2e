// Package awsks reads resource state from the AWS Keyspaces control plane
// and waits for keyspaces and tables to converge to expected conditions.
package awsks

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/keyspaces"
	"github.com/aws/aws-sdk-go-v2/service/keyspaces/types"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// API is the subset of the Keyspaces control-plane surface the harness
// reads. It is satisfied by *keyspaces.Client and by test fakes.
type API interface {
	GetKeyspace(ctx context.Context, params *keyspaces.GetKeyspaceInput, optFns ...func(*keyspaces.Options)) (*keyspaces.GetKeyspaceOutput, error)
	GetTable(ctx context.Context, params *keyspaces.GetTableInput, optFns ...func(*keyspaces.Options)) (*keyspaces.GetTableOutput, error)
}

// Client wraps a single shared Keyspaces API client. It is constructed once
// per process and injected into every query; queries never build their own
// provider client.
type Client struct {
	api API
}

// NewClient builds a Client from the ambient AWS credential chain for the
// given region.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &Client{api: keyspaces.NewFromConfig(cfg)}, nil
}

// NewClientFromAPI wraps an existing API implementation. Used by tests to
// substitute a fake control plane.
func NewClientFromAPI(api API) *Client {
	return &Client{api: api}
}

// Snapshot is the observed state of a keyspace or table at one poll
// instant. Snapshots are not retained across polls. A nil *Snapshot is the
// absent sentinel: the resource does not exist, or the service cannot yet
// validate that it does.
type Snapshot struct {
	// Name of the keyspace or table.
	Name string
	// ARN of the resource.
	ARN string
	// Status is the service-side resource status. Keyspaces do not report
	// a status; for them this field is empty.
	Status string
	// ThroughputMode of a table ("PAY_PER_REQUEST" or "PROVISIONED").
	ThroughputMode string
	// ReadCapacityUnits of a provisioned table.
	ReadCapacityUnits int64
	// WriteCapacityUnits of a provisioned table.
	WriteCapacityUnits int64
}

// GetKeyspace returns a snapshot of the named keyspace, or nil if it does
// not exist or cannot yet be validated. Errors other than not-found and
// validation failures are returned as-is so the caller can distinguish a
// broken control plane from a deleted resource.
func (c *Client) GetKeyspace(ctx context.Context, keyspaceName string) (*Snapshot, error) {
	out, err := c.api.GetKeyspace(ctx, &keyspaces.GetKeyspaceInput{
		KeyspaceName: aws.String(keyspaceName),
	})
	if err != nil {
		if isAbsent(err) {
			log.FromContext(ctx).V(1).Info("keyspace not found", "keyspace", keyspaceName, "cause", err.Error())
			return nil, nil
		}
		return nil, fmt.Errorf("getting keyspace %q: %w", keyspaceName, err)
	}
	return &Snapshot{
		Name: aws.ToString(out.KeyspaceName),
		ARN:  aws.ToString(out.ResourceArn),
	}, nil
}

// GetTable returns a snapshot of the named table, or nil if it does not
// exist or cannot yet be validated.
func (c *Client) GetTable(ctx context.Context, keyspaceName, tableName string) (*Snapshot, error) {
	out, err := c.api.GetTable(ctx, &keyspaces.GetTableInput{
		KeyspaceName: aws.String(keyspaceName),
		TableName:    aws.String(tableName),
	})
	if err != nil {
		if isAbsent(err) {
			log.FromContext(ctx).V(1).Info("table not found", "keyspace", keyspaceName, "table", tableName, "cause", err.Error())
			return nil, nil
		}
		return nil, fmt.Errorf("getting table %q.%q: %w", keyspaceName, tableName, err)
	}

	snapshot := &Snapshot{
		Name:   aws.ToString(out.TableName),
		ARN:    aws.ToString(out.ResourceArn),
		Status: string(out.Status),
	}
	if cs := out.CapacitySpecification; cs != nil {
		snapshot.ThroughputMode = string(cs.ThroughputMode)
		snapshot.ReadCapacityUnits = aws.ToInt64(cs.ReadCapacityUnits)
		snapshot.WriteCapacityUnits = aws.ToInt64(cs.WriteCapacityUnits)
	}
	return snapshot, nil
}

// isAbsent reports whether err means the resource does not exist from the
// harness's point of view. ResourceNotFoundException is a deleted or
// never-created resource; ValidationException covers names the service
// cannot validate yet (e.g. the keyspace is still propagating).
func isAbsent(err error) bool {
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return true
	}
	var validation *types.ValidationException
	return errors.As(err, &validation)
}
