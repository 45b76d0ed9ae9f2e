// Package v1alpha1 contains API Schema definitions for the keyspaces v1alpha1 API group.
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ReplicationStrategy defines how a keyspace is replicated across regions.
// +kubebuilder:validation:Enum=SINGLE_REGION;MULTI_REGION
type ReplicationStrategy string

const (
	// ReplicationStrategySingleRegion keeps the keyspace in one region.
	ReplicationStrategySingleRegion ReplicationStrategy = "SINGLE_REGION"
	// ReplicationStrategyMultiRegion replicates the keyspace to the listed regions.
	ReplicationStrategyMultiRegion ReplicationStrategy = "MULTI_REGION"
)

// ReplicationSpecification defines the replication settings for a keyspace.
type ReplicationSpecification struct {
	// ReplicationStrategy selects single-region or multi-region replication.
	// +kubebuilder:default="SINGLE_REGION"
	// +optional
	ReplicationStrategy *ReplicationStrategy `json:"replicationStrategy,omitempty,omitzero"`

	// RegionList names the regions for multi-region replication.
	// +optional
	RegionList []string `json:"regionList,omitempty,omitzero"`
}

// Tag is a key/value label applied to the service-side resource.
type Tag struct {
	// +kubebuilder:validation:MinLength=1
	Key string `json:"key"`
	// +kubebuilder:validation:MinLength=1
	Value string `json:"value"`
}

// KeyspaceSpec defines the desired state of Keyspace.
type KeyspaceSpec struct {
	// KeyspaceName is the name of the keyspace in the backing service.
	// Immutable after creation.
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:MaxLength=48
	// +kubebuilder:validation:Pattern=`^[a-zA-Z0-9][a-zA-Z0-9_]*$`
	KeyspaceName string `json:"keyspaceName"`

	// ReplicationSpecification configures replication for the keyspace.
	// +optional
	ReplicationSpecification *ReplicationSpecification `json:"replicationSpecification,omitempty,omitzero"`

	// Tags are applied to the service-side keyspace.
	// +optional
	Tags []Tag `json:"tags,omitempty,omitzero"`
}

// KeyspaceStatus defines the observed state of Keyspace.
type KeyspaceStatus struct {
	// Conditions represent the latest available observations of the Keyspace's state.
	// +optional
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty,omitzero" patchStrategy:"merge" patchMergeKey:"type" protobuf:"bytes,1,rep,name=conditions"`

	// ResourceARN is the ARN of the keyspace in the backing service.
	// +optional
	ResourceARN string `json:"resourceARN,omitempty"`

	// ObservedGeneration is the most recent generation observed by the controller.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="KeyspaceName",type="string",JSONPath=".spec.keyspaceName",description="Name of the keyspace in the backing service"
// +kubebuilder:printcolumn:name="Synced",type="string",JSONPath=`.status.conditions[?(@.type=="Synced")].status`
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Keyspace is the Schema for the keyspaces API.
type Keyspace struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KeyspaceSpec   `json:"spec,omitempty"`
	Status KeyspaceStatus `json:"status,omitempty"`
}

// GetConditions returns the status conditions of the Keyspace.
func (k *Keyspace) GetConditions() []metav1.Condition {
	return k.Status.Conditions
}

// +kubebuilder:object:root=true

// KeyspaceList contains a list of Keyspace.
type KeyspaceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Keyspace `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Keyspace{}, &KeyspaceList{})
}
