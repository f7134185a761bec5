package kubernetes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"provider-connection-checker/config"
	"provider-connection-checker/internal/core/domain"

	"github.com/rs/zerolog"
	"k8s.io/apimachinery/pkg/version"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/tools/clientcmd"
)

// DiscoveryFactory builds a discovery client for one kubeconfig context.
type DiscoveryFactory func(kubeContext string, timeout time.Duration) (discovery.ServerVersionInterface, error)

// Tester checks Kubernetes connectivity by asking the API server for its version.
// The provider UID names the kubeconfig context.
type Tester struct {
	newDiscovery DiscoveryFactory
	timeout      time.Duration
	log          zerolog.Logger
}

// NewTester creates a Kubernetes tester reading the configured kubeconfig.
func NewTester(cfg config.KubernetesConfig, log zerolog.Logger) *Tester {
	return NewTesterWithFactory(kubeconfigFactory(cfg.Kubeconfig), cfg.Timeout, log)
}

// NewTesterWithFactory creates a Kubernetes tester that builds discovery clients with factory.
func NewTesterWithFactory(factory DiscoveryFactory, timeout time.Duration, log zerolog.Logger) *Tester {
	return &Tester{
		newDiscovery: factory,
		timeout:      timeout,
		log:          log.With().Str("tester", string(domain.ProviderTypeKubernetes)).Logger(),
	}
}

// Name returns the provider type the tester serves.
func (t *Tester) Name() string {
	return string(domain.ProviderTypeKubernetes)
}

// TestConnection reports whether the API server behind the provider's context answers.
func (t *Tester) TestConnection(ctx context.Context, provider *domain.Provider) (domain.ConnectivityResult, error) {
	if provider.UID == "" {
		return domain.Disconnected(errors.New("empty kubeconfig context")), nil
	}

	client, err := t.newDiscovery(provider.UID, t.timeout)
	if err != nil {
		// An unknown context or unreadable cluster entry is a problem with the
		// provider's configuration, not with the checker.
		return domain.Disconnected(fmt.Errorf("load context %s: %w", provider.UID, err)), nil
	}

	// ServerVersion takes no context; run it aside so ctx cancellation still ends the check.
	type outcome struct {
		info *version.Info
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		info, err := client.ServerVersion()
		done <- outcome{info: info, err: err}
	}()

	select {
	case <-ctx.Done():
		return domain.ConnectivityResult{}, fmt.Errorf("kubernetes version probe: %w", ctx.Err())
	case out := <-done:
		if out.err != nil {
			t.log.Debug().Err(out.err).Str("context", provider.UID).Msg("server version failed")
			return domain.Disconnected(out.err), nil
		}
		t.log.Debug().Str("context", provider.UID).Str("git_version", out.info.GitVersion).Msg("api server reachable")
		return domain.Connected(), nil
	}
}

func kubeconfigFactory(path string) DiscoveryFactory {
	return func(kubeContext string, timeout time.Duration) (discovery.ServerVersionInterface, error) {
		rules := clientcmd.NewDefaultClientConfigLoadingRules()
		if path != "" {
			rules.ExplicitPath = path
		}
		overrides := &clientcmd.ConfigOverrides{CurrentContext: kubeContext}

		restCfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
		if err != nil {
			return nil, err
		}
		restCfg.Timeout = timeout

		return discovery.NewDiscoveryClientForConfig(restCfg)
	}
}
