// Package e2e verifies the Keyspaces operator end to end.
package e2e

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	keyspacesv1alpha1 "github.com/c5c3/keyspaces-operator/api/v1alpha1"
)

// conditionedObject is a custom resource carrying status conditions.
type conditionedObject interface {
	client.Object
	GetConditions() []metav1.Condition
}

// expectSynced waits until the controller reports the resource as synced
// with the backing service, failing early if the resource turns terminal.
func expectSynced(obj conditionedObject) {
	GinkgoHelper()
	key := client.ObjectKeyFromObject(obj)

	Eventually(func(g Gomega) {
		g.Expect(k8sClient.Get(ctx, key, obj)).To(Succeed())

		terminal := meta.FindStatusCondition(obj.GetConditions(), keyspacesv1alpha1.ConditionTypeTerminal)
		if terminal != nil && terminal.Status == metav1.ConditionTrue {
			StopTrying("resource reached a terminal state: " + terminal.Message).Now()
		}

		synced := meta.FindStatusCondition(obj.GetConditions(), keyspacesv1alpha1.ConditionTypeSynced)
		g.Expect(synced).NotTo(BeNil(), "controller has not set the Synced condition")
		g.Expect(synced.Status).To(Equal(metav1.ConditionTrue), "Synced condition is %s: %s", synced.Status, synced.Message)
	}, cfg.CreateWait, consumedPollInterval).Should(Succeed(),
		"resource %s was not synced by the controller", key)
}

// expectConsumed waits until the controller has picked up the resource at
// all, i.e. it carries at least one status condition.
func expectConsumed(obj conditionedObject) {
	GinkgoHelper()
	key := client.ObjectKeyFromObject(obj)

	Eventually(func(g Gomega) {
		g.Expect(k8sClient.Get(ctx, key, obj)).To(Succeed())
		g.Expect(obj.GetConditions()).NotTo(BeEmpty(), "controller has not written any condition yet")
	}, cfg.CreateWait, consumedPollInterval).Should(Succeed(),
		"resource %s was not consumed by the controller", key)
}
