// Package e2e verifies the Keyspaces operator end to end.
package e2e

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/c5c3/keyspaces-operator/test/utils"
)

var _ = Describe("Keyspace", func() {
	It("creates and deletes a keyspace through its custom resource", func() {
		keyspaceName := utils.RandomSuffixName("kse2e", 32)

		ks := createKeyspace("keyspace_basic.yaml", keyspaceName)
		Expect(ks.Spec.KeyspaceName).To(Equal(keyspaceName))

		By("verifying the keyspace exists in the Keyspaces API")
		Expect(awsClient.WaitKeyspaceExists(ctx, keyspaceName, 0, 0)).To(Succeed())

		snapshot, err := awsClient.GetKeyspace(ctx, keyspaceName)
		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot).NotTo(BeNil())
		Expect(snapshot.Name).To(Equal(keyspaceName))
		Expect(snapshot.ARN).NotTo(BeEmpty())

		By("deleting the custom resource")
		deleteAndWaitGone(ks)

		By("verifying the keyspace is removed from the Keyspaces API")
		Expect(awsClient.WaitKeyspaceDeleted(ctx, keyspaceName, 0, 0)).To(Succeed())
	})

	It("reports status conditions on the custom resource", func() {
		keyspaceName := utils.RandomSuffixName("kse2e", 32)

		ks := createKeyspace("keyspace_basic.yaml", keyspaceName)

		expectConsumed(ks)
		Expect(ks.Status.ResourceARN).NotTo(BeEmpty(), "controller should record the service-side ARN")
	})
})
