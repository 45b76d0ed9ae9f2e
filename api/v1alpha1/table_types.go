// Package v1alpha1 contains API Schema definitions for the keyspaces v1alpha1 API group.
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ThroughputMode selects how table capacity is provisioned.
// +kubebuilder:validation:Enum=PAY_PER_REQUEST;PROVISIONED
type ThroughputMode string

const (
	// ThroughputModePayPerRequest bills per request with no provisioned capacity.
	ThroughputModePayPerRequest ThroughputMode = "PAY_PER_REQUEST"
	// ThroughputModeProvisioned uses fixed read/write capacity units.
	ThroughputModeProvisioned ThroughputMode = "PROVISIONED"
)

// ColumnDefinition describes one column of a table schema.
type ColumnDefinition struct {
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`
	// Type is the Cassandra data type of the column (e.g. "text", "int").
	// +kubebuilder:validation:MinLength=1
	Type string `json:"type"`
}

// PartitionKey names a column that is part of the partition key.
type PartitionKey struct {
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`
}

// ClusteringKey names a column that orders rows within a partition.
type ClusteringKey struct {
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// OrderBy is the sort order, "ASC" or "DESC".
	// +kubebuilder:validation:Enum=ASC;DESC
	// +kubebuilder:default="ASC"
	// +optional
	OrderBy string `json:"orderBy,omitempty"`
}

// SchemaDefinition describes the full schema of a table.
type SchemaDefinition struct {
	// AllColumns lists every column of the table.
	// +kubebuilder:validation:MinItems=1
	AllColumns []ColumnDefinition `json:"allColumns"`

	// PartitionKeys lists the partition key columns, in order.
	// +kubebuilder:validation:MinItems=1
	PartitionKeys []PartitionKey `json:"partitionKeys"`

	// ClusteringKeys lists the clustering key columns, in order.
	// +optional
	ClusteringKeys []ClusteringKey `json:"clusteringKeys,omitempty,omitzero"`
}

// CapacitySpecification configures the throughput capacity of a table.
type CapacitySpecification struct {
	// ThroughputMode selects on-demand or provisioned capacity.
	// +kubebuilder:default="PAY_PER_REQUEST"
	// +optional
	ThroughputMode *ThroughputMode `json:"throughputMode,omitempty,omitzero"`

	// ReadCapacityUnits is the provisioned read throughput. Required when
	// throughputMode is PROVISIONED.
	// +kubebuilder:validation:Minimum=1
	// +optional
	ReadCapacityUnits *int64 `json:"readCapacityUnits,omitempty,omitzero"`

	// WriteCapacityUnits is the provisioned write throughput. Required when
	// throughputMode is PROVISIONED.
	// +kubebuilder:validation:Minimum=1
	// +optional
	WriteCapacityUnits *int64 `json:"writeCapacityUnits,omitempty,omitzero"`
}

// TableSpec defines the desired state of Table.
type TableSpec struct {
	// KeyspaceName is the keyspace the table belongs to. Immutable after creation.
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:MaxLength=48
	// +kubebuilder:validation:Pattern=`^[a-zA-Z0-9][a-zA-Z0-9_]*$`
	KeyspaceName string `json:"keyspaceName"`

	// TableName is the name of the table in the backing service.
	// Immutable after creation.
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:MaxLength=48
	// +kubebuilder:validation:Pattern=`^[a-zA-Z0-9][a-zA-Z0-9_]*$`
	TableName string `json:"tableName"`

	// SchemaDefinition describes the table schema.
	SchemaDefinition SchemaDefinition `json:"schemaDefinition"`

	// CapacitySpecification configures the table throughput.
	// +optional
	CapacitySpecification *CapacitySpecification `json:"capacitySpecification,omitempty,omitzero"`

	// Tags are applied to the service-side table.
	// +optional
	Tags []Tag `json:"tags,omitempty,omitzero"`
}

// TableStatus defines the observed state of Table.
type TableStatus struct {
	// Conditions represent the latest available observations of the Table's state.
	// +optional
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty,omitzero" patchStrategy:"merge" patchMergeKey:"type" protobuf:"bytes,1,rep,name=conditions"`

	// ResourceARN is the ARN of the table in the backing service.
	// +optional
	ResourceARN string `json:"resourceARN,omitempty"`

	// TableStatus is the most recently observed service-side status
	// (e.g. CREATING, ACTIVE, DELETING).
	// +optional
	TableStatus string `json:"tableStatus,omitempty"`

	// ObservedGeneration is the most recent generation observed by the controller.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Keyspace",type="string",JSONPath=".spec.keyspaceName",description="Keyspace the table belongs to"
// +kubebuilder:printcolumn:name="TableName",type="string",JSONPath=".spec.tableName",description="Name of the table in the backing service"
// +kubebuilder:printcolumn:name="Status",type="string",JSONPath=".status.tableStatus",description="Service-side table status"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Table is the Schema for the tables API.
type Table struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   TableSpec   `json:"spec,omitempty"`
	Status TableStatus `json:"status,omitempty"`
}

// GetConditions returns the status conditions of the Table.
func (t *Table) GetConditions() []metav1.Condition {
	return t.Status.Conditions
}

// +kubebuilder:object:root=true

// TableList contains a list of Table.
type TableList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Table `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Table{}, &TableList{})
}
