package aws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"provider-connection-checker/config"
	"provider-connection-checker/internal/core/domain"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSTS struct {
	account string
	err     error
	calls   int
}

func (f *fakeSTS) GetCallerIdentity(ctx context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{
		Account: awssdk.String(f.account),
		Arn:     awssdk.String("arn:aws:iam::" + f.account + ":user/checker"),
	}, nil
}

func testerWith(client STSClient, factoryErr error) *Tester {
	return NewTesterWithFactory(func(ctx context.Context, accountID string) (STSClient, error) {
		if factoryErr != nil {
			return nil, factoryErr
		}
		return client, nil
	}, time.Second, zerolog.Nop())
}

func awsProvider(uid string) *domain.Provider {
	return &domain.Provider{Provider: domain.ProviderTypeAWS, UID: uid}
}

func TestTester_Name(t *testing.T) {
	assert.Equal(t, "aws", testerWith(&fakeSTS{}, nil).Name())
}

func TestTester_Connected(t *testing.T) {
	client := &fakeSTS{account: "123456789012"}

	res, err := testerWith(client, nil).TestConnection(context.Background(), awsProvider("123456789012"))

	require.NoError(t, err)
	assert.True(t, res.IsConnected)
	assert.NoError(t, res.Error)
	assert.Equal(t, 1, client.calls)
}

func TestTester_AccountMismatch(t *testing.T) {
	client := &fakeSTS{account: "999999999999"}

	res, err := testerWith(client, nil).TestConnection(context.Background(), awsProvider("123456789012"))

	require.NoError(t, err)
	assert.False(t, res.IsConnected)
	require.Error(t, res.Error)
	assert.Contains(t, res.Error.Error(), "999999999999")
	assert.Contains(t, res.Error.Error(), "expected 123456789012")
}

func TestTester_APIErrorIsResult(t *testing.T) {
	client := &fakeSTS{err: &smithy.GenericAPIError{
		Code:    "InvalidClientTokenId",
		Message: "The security token included in the request is invalid.",
	}}

	res, err := testerWith(client, nil).TestConnection(context.Background(), awsProvider("123456789012"))

	require.NoError(t, err)
	assert.False(t, res.IsConnected)
	assert.EqualError(t, res.Error, "InvalidClientTokenId: The security token included in the request is invalid.")
}

func TestTester_TransportErrorIsResult(t *testing.T) {
	client := &fakeSTS{err: errors.New("dial tcp: connection refused")}

	res, err := testerWith(client, nil).TestConnection(context.Background(), awsProvider("123456789012"))

	require.NoError(t, err)
	assert.False(t, res.IsConnected)
	assert.EqualError(t, res.Error, "dial tcp: connection refused")
}

func TestTester_InvalidAccountID(t *testing.T) {
	client := &fakeSTS{account: "123"}

	for _, uid := range []string{"", "123", "12345678901a", "1234567890123"} {
		res, err := testerWith(client, nil).TestConnection(context.Background(), awsProvider(uid))
		require.NoError(t, err, uid)
		assert.False(t, res.IsConnected, uid)
		assert.Contains(t, res.Error.Error(), "invalid AWS account id", uid)
	}
	assert.Zero(t, client.calls, "no STS call for a malformed account id")
}

func TestTester_FactoryFailureIsFault(t *testing.T) {
	cause := errors.New("failed to load shared config")

	_, err := testerWith(nil, cause).TestConnection(context.Background(), awsProvider("123456789012"))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestRoleARN(t *testing.T) {
	assert.Equal(t, "arn:aws:iam::123456789012:role/ConnectionCheck", RoleARN("123456789012", "ConnectionCheck"))
}

// fakeSTSServer answers the awsquery calls the default factory makes.
type fakeSTSServer struct {
	mu       sync.Mutex
	actions  []string
	roleARN  string
	account  string
	denyCall bool
}

func (s *fakeSTSServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	action := r.Form.Get("Action")

	s.mu.Lock()
	s.actions = append(s.actions, action)
	if action == "AssumeRole" {
		s.roleARN = r.Form.Get("RoleArn")
	}
	deny := s.denyCall
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/xml")
	switch {
	case deny:
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<ErrorResponse xmlns="https://sts.amazonaws.com/doc/2011-06-15/">
  <Error><Type>Sender</Type><Code>InvalidClientTokenId</Code><Message>The security token included in the request is invalid.</Message></Error>
  <RequestId>req-deny</RequestId>
</ErrorResponse>`))
	case action == "AssumeRole":
		_, _ = w.Write([]byte(`<AssumeRoleResponse xmlns="https://sts.amazonaws.com/doc/2011-06-15/">
  <AssumeRoleResult>
    <Credentials>
      <AccessKeyId>ASIAEXAMPLE</AccessKeyId>
      <SecretAccessKey>assumed-secret</SecretAccessKey>
      <SessionToken>assumed-token</SessionToken>
      <Expiration>2099-01-01T00:00:00Z</Expiration>
    </Credentials>
    <AssumedRoleUser>
      <Arn>arn:aws:sts::` + s.account + `:assumed-role/ConnectionCheck/provider-connection-check</Arn>
      <AssumedRoleId>AROAEXAMPLE:provider-connection-check</AssumedRoleId>
    </AssumedRoleUser>
  </AssumeRoleResult>
  <ResponseMetadata><RequestId>req-assume</RequestId></ResponseMetadata>
</AssumeRoleResponse>`))
	default:
		_, _ = w.Write([]byte(`<GetCallerIdentityResponse xmlns="https://sts.amazonaws.com/doc/2011-06-15/">
  <GetCallerIdentityResult>
    <Arn>arn:aws:iam::` + s.account + `:user/checker</Arn>
    <UserId>AIDAEXAMPLE</UserId>
    <Account>` + s.account + `</Account>
  </GetCallerIdentityResult>
  <ResponseMetadata><RequestId>req-identity</RequestId></ResponseMetadata>
</GetCallerIdentityResponse>`))
	}
}

func (s *fakeSTSServer) calls() ([]string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.actions...), s.roleARN
}

func isolateAWSEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
}

func TestNewTester_AgainstEndpoint(t *testing.T) {
	isolateAWSEnv(t)
	fake := &fakeSTSServer{account: "123456789012"}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	tester := NewTester(config.AWSConfig{
		Region:   "us-east-1",
		Endpoint: srv.URL,
		Timeout:  5 * time.Second,
	}, zerolog.Nop())

	res, err := tester.TestConnection(context.Background(), awsProvider("123456789012"))

	require.NoError(t, err)
	assert.True(t, res.IsConnected)
	actions, _ := fake.calls()
	assert.Equal(t, []string{"GetCallerIdentity"}, actions)
}

func TestNewTester_AssumesRoleInTargetAccount(t *testing.T) {
	isolateAWSEnv(t)
	fake := &fakeSTSServer{account: "123456789012"}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	tester := NewTester(config.AWSConfig{
		Region:     "us-east-1",
		Endpoint:   srv.URL,
		RoleName:   "ConnectionCheck",
		ExternalID: "tenant-42",
		Timeout:    5 * time.Second,
	}, zerolog.Nop())

	res, err := tester.TestConnection(context.Background(), awsProvider("123456789012"))

	require.NoError(t, err)
	assert.True(t, res.IsConnected)
	actions, roleARN := fake.calls()
	assert.Equal(t, []string{"AssumeRole", "GetCallerIdentity"}, actions)
	assert.Equal(t, "arn:aws:iam::123456789012:role/ConnectionCheck", roleARN)
}

func TestNewTester_DeniedByEndpoint(t *testing.T) {
	isolateAWSEnv(t)
	fake := &fakeSTSServer{account: "123456789012", denyCall: true}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	tester := NewTester(config.AWSConfig{
		Region:   "us-east-1",
		Endpoint: srv.URL,
		Timeout:  5 * time.Second,
	}, zerolog.Nop())

	res, err := tester.TestConnection(context.Background(), awsProvider("123456789012"))

	require.NoError(t, err)
	assert.False(t, res.IsConnected)
	require.Error(t, res.Error)
	assert.Contains(t, res.Error.Error(), "InvalidClientTokenId")
}
