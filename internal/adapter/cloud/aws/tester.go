package aws

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"provider-connection-checker/config"
	"provider-connection-checker/internal/core/domain"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
)

var accountIDPattern = regexp.MustCompile(`^\d{12}$`)

// STSClient is the subset of the STS API the tester calls.
type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// ClientFactory builds an STS client scoped to the given account.
type ClientFactory func(ctx context.Context, accountID string) (STSClient, error)

// Tester checks AWS connectivity by asking STS who the credential belongs to.
type Tester struct {
	newClient ClientFactory
	timeout   time.Duration
	log       zerolog.Logger
}

// NewTester creates an AWS tester using the default credential chain.
func NewTester(cfg config.AWSConfig, log zerolog.Logger) *Tester {
	return NewTesterWithFactory(defaultFactory(cfg), cfg.Timeout, log)
}

// NewTesterWithFactory creates an AWS tester that builds STS clients with factory.
func NewTesterWithFactory(factory ClientFactory, timeout time.Duration, log zerolog.Logger) *Tester {
	return &Tester{
		newClient: factory,
		timeout:   timeout,
		log:       log.With().Str("tester", string(domain.ProviderTypeAWS)).Logger(),
	}
}

// Name returns the provider type the tester serves.
func (t *Tester) Name() string {
	return string(domain.ProviderTypeAWS)
}

// TestConnection reports whether the credential resolves to the provider's account.
func (t *Tester) TestConnection(ctx context.Context, provider *domain.Provider) (domain.ConnectivityResult, error) {
	if !accountIDPattern.MatchString(provider.UID) {
		return domain.Disconnected(fmt.Errorf("invalid AWS account id %q: expected 12 digits", provider.UID)), nil
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	client, err := t.newClient(ctx, provider.UID)
	if err != nil {
		return domain.ConnectivityResult{}, fmt.Errorf("build STS client: %w", err)
	}

	out, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		t.log.Debug().Err(err).Str("account_id", provider.UID).Msg("GetCallerIdentity failed")
		return domain.Disconnected(describeError(err)), nil
	}

	account := awssdk.ToString(out.Account)
	if account != provider.UID {
		return domain.Disconnected(fmt.Errorf("credential belongs to account %s, expected %s", account, provider.UID)), nil
	}

	return domain.Connected(), nil
}

// describeError keeps the API error code in the detail.
func describeError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err
}

// RoleARN is the role assumed in the target account when a role name is configured.
func RoleARN(accountID, roleName string) string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", accountID, roleName)
}

func defaultFactory(cfg config.AWSConfig) ClientFactory {
	return func(ctx context.Context, accountID string) (STSClient, error) {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}

		withEndpoint := func(o *sts.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = awssdk.String(cfg.Endpoint)
			}
		}

		if cfg.RoleName != "" {
			base := sts.NewFromConfig(awsCfg, withEndpoint)
			awsCfg.Credentials = awssdk.NewCredentialsCache(
				stscreds.NewAssumeRoleProvider(base, RoleARN(accountID, cfg.RoleName), func(o *stscreds.AssumeRoleOptions) {
					o.RoleSessionName = "provider-connection-check"
					if cfg.ExternalID != "" {
						o.ExternalID = awssdk.String(cfg.ExternalID)
					}
				}),
			)
		}

		return sts.NewFromConfig(awsCfg, withEndpoint), nil
	}
}
