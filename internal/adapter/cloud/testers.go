// Package cloud wires the vendor connection testers.
package cloud

import (
	"provider-connection-checker/config"
	"provider-connection-checker/internal/adapter/cloud/aws"
	"provider-connection-checker/internal/adapter/cloud/azure"
	"provider-connection-checker/internal/adapter/cloud/gcp"
	"provider-connection-checker/internal/adapter/cloud/kubernetes"
	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/internal/core/ports"

	"github.com/rs/zerolog"
)

// Testers returns one tester per supported provider type, configured from cfg.
func Testers(cfg *config.Config, log zerolog.Logger) map[domain.ProviderType]ports.ConnectionTester {
	return map[domain.ProviderType]ports.ConnectionTester{
		domain.ProviderTypeAWS:        aws.NewTester(cfg.AWS, log),
		domain.ProviderTypeAzure:      azure.NewTester(cfg.Azure, log),
		domain.ProviderTypeGCP:        gcp.NewTester(cfg.GCP, log),
		domain.ProviderTypeKubernetes: kubernetes.NewTester(cfg.Kubernetes, log),
	}
}
