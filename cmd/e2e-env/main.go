// Package main implements e2e-env, a preflight check for the Keyspaces e2e
// harness: it validates the environment configuration and, optionally, that
// the AWS credential chain can reach the Keyspaces control plane.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/c5c3/keyspaces-operator/internal/awsks"
	"github.com/c5c3/keyspaces-operator/internal/version"
	"github.com/c5c3/keyspaces-operator/test/utils"
)

// probeKeyspace is a name that should never exist; an Absent answer proves
// credentials and connectivity work without touching real resources.
const probeKeyspace = "keyspaces_e2e_preflight_probe"

func main() {
	var checkAWS bool
	var timeout time.Duration

	flag.BoolVar(&checkAWS, "check-aws", false, "Probe the Keyspaces control plane with the ambient credentials.")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Budget for the control-plane probe.")

	opts := zap.Options{
		Development: true,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))
	log := ctrl.Log.WithName("e2e-env")

	log.Info("keyspaces e2e harness", "version", version.String())

	cfg := utils.ConfigFromEnv()
	log.Info("environment configuration",
		"enabled", cfg.Enabled,
		"region", cfg.Region,
		"namespace", cfg.Namespace,
		"createWait", cfg.CreateWait,
	)
	if !cfg.Enabled {
		log.Info("live suite is disabled", "hint", utils.EnvEnabled+"=true enables it")
	}

	if !checkAWS {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := awsks.NewClient(ctx, cfg.Region)
	if err != nil {
		log.Error(err, "unable to build Keyspaces client")
		os.Exit(1)
	}

	snapshot, err := client.GetKeyspace(ctx, probeKeyspace)
	if err != nil {
		log.Error(err, "control-plane probe failed", "region", cfg.Region)
		os.Exit(1)
	}
	if snapshot != nil {
		log.Info("warning: probe keyspace unexpectedly exists", "keyspace", probeKeyspace)
	}
	log.Info("control-plane probe succeeded", "region", cfg.Region)
}
