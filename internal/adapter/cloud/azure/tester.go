package azure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"provider-connection-checker/config"
	"provider-connection-checker/internal/core/domain"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SubscriptionsClient is the subset of armsubscriptions.Client the tester calls.
type SubscriptionsClient interface {
	Get(ctx context.Context, subscriptionID string, options *armsubscriptions.ClientGetOptions) (armsubscriptions.ClientGetResponse, error)
}

// ClientFactory builds a subscriptions client from the ambient Azure credential.
type ClientFactory func() (SubscriptionsClient, error)

// Tester checks Azure connectivity by reading the subscription the provider points at.
type Tester struct {
	newClient ClientFactory
	timeout   time.Duration
	log       zerolog.Logger
}

// NewTester creates an Azure tester using DefaultAzureCredential.
func NewTester(cfg config.AzureConfig, log zerolog.Logger) *Tester {
	return NewTesterWithFactory(defaultFactory, cfg.Timeout, log)
}

// NewTesterWithFactory creates an Azure tester that builds clients with factory.
func NewTesterWithFactory(factory ClientFactory, timeout time.Duration, log zerolog.Logger) *Tester {
	return &Tester{
		newClient: factory,
		timeout:   timeout,
		log:       log.With().Str("tester", string(domain.ProviderTypeAzure)).Logger(),
	}
}

// Name returns the provider type the tester serves.
func (t *Tester) Name() string {
	return string(domain.ProviderTypeAzure)
}

// TestConnection reports whether the provider's subscription is readable and Enabled.
func (t *Tester) TestConnection(ctx context.Context, provider *domain.Provider) (domain.ConnectivityResult, error) {
	if _, err := uuid.Parse(provider.UID); err != nil {
		return domain.Disconnected(fmt.Errorf("invalid Azure subscription id %q", provider.UID)), nil
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	client, err := t.newClient()
	if err != nil {
		return domain.ConnectivityResult{}, fmt.Errorf("build subscriptions client: %w", err)
	}

	resp, err := client.Get(ctx, provider.UID, nil)
	if err != nil {
		t.log.Debug().Err(err).Str("subscription_id", provider.UID).Msg("get subscription failed")
		return domain.Disconnected(describeError(err)), nil
	}

	state := armsubscriptions.SubscriptionState("Unknown")
	if resp.State != nil {
		state = *resp.State
	}
	if state != armsubscriptions.SubscriptionStateEnabled {
		return domain.Disconnected(fmt.Errorf("subscription %s is %s", provider.UID, state)), nil
	}

	return domain.Connected(), nil
}

func describeError(err error) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		code := respErr.ErrorCode
		if code == "" {
			code = http.StatusText(respErr.StatusCode)
		}
		return fmt.Errorf("%s (HTTP %d)", code, respErr.StatusCode)
	}
	var authErr *azidentity.AuthenticationFailedError
	if errors.As(err, &authErr) {
		return fmt.Errorf("authentication failed: %w", err)
	}
	return err
}

func defaultFactory() (SubscriptionsClient, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("default azure credential: %w", err)
	}
	client, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("new subscriptions client: %w", err)
	}
	return client, nil
}
