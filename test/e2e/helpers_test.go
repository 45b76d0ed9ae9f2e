// Package e2e verifies the Keyspaces operator end to end.
package e2e

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	keyspacesv1alpha1 "github.com/c5c3/keyspaces-operator/api/v1alpha1"
	"github.com/c5c3/keyspaces-operator/test/utils"
)

const (
	// consumedPollInterval is how often the suite re-reads a custom
	// resource while waiting for the controller to act on it.
	consumedPollInterval = 2 * time.Second

	// deleteWaitTimeout bounds how long a custom resource may linger
	// after deletion before the suite gives up on the cluster side.
	deleteWaitTimeout = 60 * time.Second
)

func templatePath(name string) string {
	return filepath.Join("testdata", name)
}

// createKeyspace renders the named template with the given keyspace name,
// creates the custom resource, and waits for the controller to sync it.
// Cleanup of the custom resource is registered automatically.
func createKeyspace(template, keyspaceName string) *keyspacesv1alpha1.Keyspace {
	GinkgoHelper()

	replacements := map[string]string{
		"KEYSPACE_NAME": keyspaceName,
	}

	ks := &keyspacesv1alpha1.Keyspace{}
	Expect(utils.LoadResource(templatePath(template), replacements, ks)).To(Succeed())
	ks.Namespace = cfg.Namespace

	By("creating Keyspace custom resource " + ks.Name)
	Expect(k8sClient.Create(ctx, ks)).To(Succeed())
	DeferCleanup(func() {
		deleteIgnoreNotFound(ks)
	})

	expectSynced(ks)
	return ks
}

// createTable renders the named template with the given names, creates the
// custom resource, and waits for the controller to sync it. Cleanup of the
// custom resource is registered automatically.
func createTable(template, keyspaceName, tableName string) *keyspacesv1alpha1.Table {
	GinkgoHelper()

	replacements := map[string]string{
		"KEYSPACE_NAME": keyspaceName,
		"TABLE_NAME":    tableName,
	}

	table := &keyspacesv1alpha1.Table{}
	Expect(utils.LoadResource(templatePath(template), replacements, table)).To(Succeed())
	table.Namespace = cfg.Namespace

	By("creating Table custom resource " + table.Name)
	Expect(k8sClient.Create(ctx, table)).To(Succeed())
	DeferCleanup(func() {
		deleteIgnoreNotFound(table)
	})

	expectSynced(table)
	return table
}

// deleteAndWaitGone deletes a custom resource and waits until the API
// server no longer returns it, which means finalizers have run.
func deleteAndWaitGone(obj client.Object) {
	GinkgoHelper()
	key := client.ObjectKeyFromObject(obj)

	By("deleting custom resource " + key.Name)
	Expect(client.IgnoreNotFound(k8sClient.Delete(ctx, obj))).To(Succeed())

	Eventually(func() bool {
		err := k8sClient.Get(ctx, key, obj)
		return apierrors.IsNotFound(err)
	}, deleteWaitTimeout, consumedPollInterval).Should(BeTrue(),
		"custom resource %s still exists after deletion", key)
}

// deleteIgnoreNotFound is the cleanup variant of deletion: best effort,
// tolerating resources already removed by the scenario body.
func deleteIgnoreNotFound(obj client.Object) {
	if err := client.IgnoreNotFound(k8sClient.Delete(ctx, obj)); err != nil {
		GinkgoWriter.Printf("cleanup of %s failed: %v\n", obj.GetName(), err)
	}
}
