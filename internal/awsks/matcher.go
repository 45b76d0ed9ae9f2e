// Package awsks reads resource state from the AWS Keyspaces control plane.
package awsks

import "fmt"

// Service-side status values the harness waits on.
const (
	StatusActive   = "ACTIVE"
	StatusCreating = "CREATING"
	StatusDeleting = "DELETING"
)

// matcherKind tags the comparison a Matcher performs.
type matcherKind int

const (
	matchStatus matcherKind = iota
	matchThroughputMode
	matchCapacityUnits
)

// Matcher is a pure condition over a Snapshot, evaluated fresh on each
// poll. The zero Matcher matches a snapshot with an empty status; use the
// constructors. A Matcher never matches the absent (nil) snapshot, so
// waiting for a condition cannot succeed because the resource disappeared.
type Matcher struct {
	kind matcherKind

	status             string
	throughputMode     string
	readCapacityUnits  int64
	writeCapacityUnits int64
}

// StatusEquals matches snapshots whose status equals s exactly.
func StatusEquals(s string) Matcher {
	return Matcher{kind: matchStatus, status: s}
}

// ThroughputModeEquals matches tables whose throughput mode equals mode.
func ThroughputModeEquals(mode string) Matcher {
	return Matcher{kind: matchThroughputMode, throughputMode: mode}
}

// CapacityUnitsEqual matches tables whose provisioned read and write
// capacity units both equal the given values.
func CapacityUnitsEqual(read, write int64) Matcher {
	return Matcher{kind: matchCapacityUnits, readCapacityUnits: read, writeCapacityUnits: write}
}

// Matches evaluates the matcher against a snapshot. Returns false for the
// absent snapshot regardless of kind.
func (m Matcher) Matches(s *Snapshot) bool {
	if s == nil {
		return false
	}
	switch m.kind {
	case matchStatus:
		return s.Status == m.status
	case matchThroughputMode:
		return s.ThroughputMode == m.throughputMode
	case matchCapacityUnits:
		return s.ReadCapacityUnits == m.readCapacityUnits &&
			s.WriteCapacityUnits == m.writeCapacityUnits
	default:
		return false
	}
}

// String describes the condition for wait failure messages.
func (m Matcher) String() string {
	switch m.kind {
	case matchStatus:
		return fmt.Sprintf("status %q", m.status)
	case matchThroughputMode:
		return fmt.Sprintf("throughput mode %q", m.throughputMode)
	case matchCapacityUnits:
		return fmt.Sprintf("capacity %d read / %d write units", m.readCapacityUnits, m.writeCapacityUnits)
	default:
		return "unknown condition"
	}
}
