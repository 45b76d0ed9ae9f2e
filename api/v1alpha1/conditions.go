// Package v1alpha1 contains API Schema definitions for the keyspaces v1alpha1 API group.
package v1alpha1

// Condition type constants following Kubernetes API conventions.
const (
	// ConditionTypeSynced indicates the custom resource has been
	// reconciled against the backing service and matches the desired
	// state.
	ConditionTypeSynced = "Synced"

	// ConditionTypeTerminal indicates the custom resource reached a state
	// the controller cannot recover from without a spec change.
	ConditionTypeTerminal = "Terminal"
)
