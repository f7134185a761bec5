package gcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"provider-connection-checker/config"
	"provider-connection-checker/internal/core/domain"

	"github.com/rs/zerolog"
	"google.golang.org/api/cloudresourcemanager/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const projectStateActive = "ACTIVE"

// Tester checks GCP connectivity by reading the project the provider points at
// with Application Default Credentials.
type Tester struct {
	opts    []option.ClientOption
	timeout time.Duration
	log     zerolog.Logger
}

// NewTester creates a GCP tester. extra options are appended after the
// configured endpoint.
func NewTester(cfg config.GCPConfig, log zerolog.Logger, extra ...option.ClientOption) *Tester {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	opts = append(opts, extra...)

	return &Tester{
		opts:    opts,
		timeout: cfg.Timeout,
		log:     log.With().Str("tester", string(domain.ProviderTypeGCP)).Logger(),
	}
}

// Name returns the provider type the tester serves.
func (t *Tester) Name() string {
	return string(domain.ProviderTypeGCP)
}

// TestConnection reports whether the project named by the provider UID is
// readable and ACTIVE. Unloadable credentials are reported as disconnected.
func (t *Tester) TestConnection(ctx context.Context, provider *domain.Provider) (domain.ConnectivityResult, error) {
	if provider.UID == "" {
		return domain.Disconnected(errors.New("empty GCP project id")), nil
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	svc, err := cloudresourcemanager.NewService(ctx, t.opts...)
	if err != nil {
		t.log.Debug().Err(err).Msg("build resource manager client failed")
		return domain.Disconnected(fmt.Errorf("load credentials: %w", err)), nil
	}

	project, err := svc.Projects.Get("projects/" + provider.UID).Context(ctx).Do()
	if err != nil {
		t.log.Debug().Err(err).Str("project", provider.UID).Msg("get project failed")
		return domain.Disconnected(describeError(err)), nil
	}

	if project.State != projectStateActive {
		return domain.Disconnected(fmt.Errorf("project %s is %s", provider.UID, project.State)), nil
	}

	return domain.Connected(), nil
}

func describeError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("googleapi %d: %s", apiErr.Code, apiErr.Message)
	}
	return err
}
