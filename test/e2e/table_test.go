// Package e2e verifies the Keyspaces operator end to end.
package e2e

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	keyspacesv1alpha1 "github.com/c5c3/keyspaces-operator/api/v1alpha1"
	"github.com/c5c3/keyspaces-operator/internal/awsks"
	"github.com/c5c3/keyspaces-operator/test/utils"
)

var _ = Describe("Table", func() {
	var keyspaceName string

	BeforeEach(func() {
		keyspaceName = utils.RandomSuffixName("kse2e", 32)
		createKeyspace("keyspace_basic.yaml", keyspaceName)
	})

	It("creates and deletes a table through its custom resource", func() {
		tableName := utils.RandomSuffixName("tbl", 32)

		table := createTable("table_basic.yaml", keyspaceName, tableName)
		Expect(table.Spec.TableName).To(Equal(tableName))

		By("waiting for the table to become ACTIVE in the Keyspaces API")
		Expect(awsClient.WaitTable(ctx, keyspaceName, tableName,
			awsks.StatusEquals(awsks.StatusActive), 0, 0)).To(Succeed())

		snapshot, err := awsClient.GetTable(ctx, keyspaceName, tableName)
		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot).NotTo(BeNil())
		Expect(snapshot.ThroughputMode).To(Equal(string(keyspacesv1alpha1.ThroughputModePayPerRequest)))

		By("deleting the custom resource")
		deleteAndWaitGone(table)

		By("waiting for the table to disappear from the Keyspaces API")
		Expect(awsClient.WaitTableDeleted(ctx, keyspaceName, tableName, 0, 0)).To(Succeed())
	})

	It("switches a table from on-demand to provisioned throughput", func() {
		tableName := utils.RandomSuffixName("tbl", 32)

		table := createTable("table_basic.yaml", keyspaceName, tableName)

		Expect(awsClient.WaitTable(ctx, keyspaceName, tableName,
			awsks.StatusEquals(awsks.StatusActive), 0, 0)).To(Succeed())

		By("updating the capacity specification to PROVISIONED")
		mode := keyspacesv1alpha1.ThroughputModeProvisioned
		updateTable(table, func(t *keyspacesv1alpha1.Table) {
			t.Spec.CapacitySpecification = &keyspacesv1alpha1.CapacitySpecification{
				ThroughputMode:     &mode,
				ReadCapacityUnits:  int64Ptr(5),
				WriteCapacityUnits: int64Ptr(5),
			}
		})

		By("waiting for the throughput mode to converge")
		Expect(awsClient.WaitTable(ctx, keyspaceName, tableName,
			awsks.ThroughputModeEquals(string(mode)), 0, 0)).To(Succeed())
	})

	It("scales the provisioned capacity of a table", func() {
		tableName := utils.RandomSuffixName("tbl", 32)

		table := createTable("table_provisioned.yaml", keyspaceName, tableName)

		By("waiting for the initial capacity to be in effect")
		Expect(awsClient.WaitTable(ctx, keyspaceName, tableName,
			awsks.CapacityUnitsEqual(5, 5), 0, 0)).To(Succeed())

		By("raising read and write capacity units")
		updateTable(table, func(t *keyspacesv1alpha1.Table) {
			t.Spec.CapacitySpecification.ReadCapacityUnits = int64Ptr(10)
			t.Spec.CapacitySpecification.WriteCapacityUnits = int64Ptr(10)
		})

		By("waiting for both capacity fields to converge together")
		Expect(awsClient.WaitTable(ctx, keyspaceName, tableName,
			awsks.CapacityUnitsEqual(10, 10), 0, 0)).To(Succeed())
	})
})

// updateTable applies mutate to the latest version of the table custom
// resource, retrying on conflicts.
func updateTable(table *keyspacesv1alpha1.Table, mutate func(*keyspacesv1alpha1.Table)) {
	GinkgoHelper()
	key := client.ObjectKeyFromObject(table)

	Eventually(func() error {
		latest := &keyspacesv1alpha1.Table{}
		if err := k8sClient.Get(ctx, key, latest); err != nil {
			return err
		}
		mutate(latest)
		err := k8sClient.Update(ctx, latest)
		if errors.IsConflict(err) {
			return err
		}
		Expect(err).NotTo(HaveOccurred())
		return nil
	}, cfg.CreateWait, consumedPollInterval).Should(Succeed())
}

func int64Ptr(v int64) *int64 { return &v }
