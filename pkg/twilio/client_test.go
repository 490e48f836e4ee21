package twilio_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/twilio-client/internal/testutil"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
	"github.com/fivetwenty-io/twilio-client/pkg/twilio"
)

const (
	accountPath = "/2010-04-01/Accounts/AC123.json"
	callsPath   = "/2010-04-01/Accounts/AC123/Calls.json"
)

var accountWithCalls = map[string]any{
	"sid":           "AC123",
	"friendly_name": "Robert Paulson",
	"subresource_uris": map[string]any{
		"calls":        "/2010-04-01/Accounts/AC123/Calls.json",
		"sms_messages": "/2010-04-01/Accounts/AC123/SMS/Messages.json",
		"conferences":  "/2010-04-01/Accounts/AC123/Conferences.json",
	},
}

func newClient(t *testing.T, gateway resource.Gateway) *twilio.Client {
	t.Helper()

	client, err := twilio.New(&twilio.Config{
		AccountSID: "AC123",
		Gateway:    gateway,
	})
	require.NoError(t, err)

	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *twilio.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: twilio.ErrConfigRequired,
		},
		{
			name:    "missing account SID",
			config:  &twilio.Config{AuthToken: "token"},
			wantErr: twilio.ErrAccountSIDRequired,
		},
		{
			name:    "missing auth token",
			config:  &twilio.Config{AccountSID: "AC123"},
			wantErr: twilio.ErrAuthTokenRequired,
		},
		{
			name:   "credentials",
			config: &twilio.Config{AccountSID: "AC123", AuthToken: "token"},
		},
		{
			name:   "gateway without token",
			config: &twilio.Config{AccountSID: "AC123", Gateway: testutil.NewGateway()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := twilio.New(tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "AC123", client.Account().ID())
			assert.Equal(t, "Accounts", client.Accounts().Name())
			assert.Equal(t, "2010-04-01", client.Root().Version())
		})
	}
}

func TestNew_APIVersion(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().OnGet("/2008-08-01/Accounts/AC123.json", http.StatusOK, map[string]any{
		"friendly_name": "Old",
	})

	client, err := twilio.New(&twilio.Config{
		AccountSID: "AC123",
		APIVersion: "2008-08-01",
		Gateway:    gateway,
	})
	require.NoError(t, err)

	lookup, err := client.Account().Get(context.Background(), "friendly_name")
	require.NoError(t, err)
	assert.Equal(t, "Old", lookup.String())
}

func TestClient_OverHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || username != "AC123" || password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		assert.Equal(t, accountPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"sid":"AC123","friendly_name":"Robert Paulson"}`))
	}))
	defer server.Close()

	client, err := twilio.New(&twilio.Config{
		AccountSID: "AC123",
		AuthToken:  "secret",
		BaseURL:    server.URL + "/",
	})
	require.NoError(t, err)

	lookup, err := client.Account().Get(context.Background(), "friendly_name")
	require.NoError(t, err)
	assert.Equal(t, "Robert Paulson", lookup.String())
}

func TestClient_OverHTTPUnauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":20003,"message":"Authenticate","status":401}`))
	}))
	defer server.Close()

	client, err := twilio.New(&twilio.Config{
		AccountSID: "AC123",
		AuthToken:  "wrong",
		BaseURL:    server.URL,
	})
	require.NoError(t, err)

	lookup, err := client.Account().Get(context.Background(), "friendly_name")
	require.Error(t, err)
	assert.True(t, resource.IsUnauthorized(err))
	assert.Equal(t, resource.LookupMissing, lookup.State)
	assert.False(t, client.Account().Loaded())

	var transportErr *resource.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 20003, transportErr.Code)
}

func TestClient_Params(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().OnGet(
		"/2010-04-01/Accounts.json?Page=0&PageSize=10&FriendlyName=foo&Status=active",
		http.StatusOK,
		map[string]any{"accounts": []any{}, "total": 0},
	)
	client := newClient(t, gateway)

	page, err := client.Accounts().Page(context.Background(), 0, 10, resource.NewParams(
		"FriendlyName", "foo",
		"Status", "active",
	))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, gateway.Count())
}

func TestAccount_TypedSubresources(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().OnGet(accountPath, http.StatusOK, accountWithCalls)
	client := newClient(t, gateway)
	ctx := context.Background()

	calls, err := client.Account().Calls(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Calls", calls.Schema().PathName)

	sms, err := client.Account().SmsMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SMS/Messages", sms.Schema().PathName)
	assert.Equal(t, "sms_messages", sms.Schema().ListField)

	conferences, err := client.Account().Conferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Conferences", conferences.Name())

	again, err := client.Account().Calls(ctx)
	require.NoError(t, err)
	assert.Same(t, calls, again)
	assert.Equal(t, 1, gateway.Count())
}

func TestAccount_UndeclaredSubresourceFromRegistry(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().OnGet(accountPath, http.StatusOK, accountWithCalls)
	client := newClient(t, gateway)

	shortCodes, err := client.Account().ShortCodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SMS/ShortCodes", shortCodes.Schema().PathName)
	assert.Equal(t, "short_codes", shortCodes.Schema().ListField)
}

func TestAccount_LoadFailure(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().OnError(http.MethodGet, accountPath, testutil.ErrConnectionRefused)
	client := newClient(t, gateway)

	calls, err := client.Account().Calls(context.Background())
	require.ErrorIs(t, err, testutil.ErrConnectionRefused)
	assert.Nil(t, calls)
}

func TestAccount_AsymmetricallyNamedResources(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().
		OnGet(accountPath, http.StatusOK, accountWithCalls).
		OnGet("/2010-04-01/Accounts/AC123/SMS/Messages.json?Page=0&PageSize=10", http.StatusOK, map[string]any{
			"sms_messages": []any{map[string]any{"sid": "SM123", "status": "sent"}},
		})
	client := newClient(t, gateway)
	ctx := context.Background()

	sms, err := client.Account().Collection(ctx, "sms_messages")
	require.NoError(t, err)
	require.IsType(t, &twilio.SmsMessages{}, sms)

	page, err := sms.Page(ctx, 0, 10, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "sent", page.Items[0].String("status"))
	assert.Equal(t, 2, gateway.Count())
}

func TestSmsMessages_Instances(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().
		OnGet(accountPath, http.StatusOK, accountWithCalls).
		OnGet("/2010-04-01/Accounts/AC123/SMS/Messages.json", http.StatusOK, map[string]any{
			"sms_messages": []any{map[string]any{"sid": "SM123", "status": "sent"}},
		})
	client := newClient(t, gateway)
	ctx := context.Background()

	sms, err := client.Account().SmsMessages(ctx)
	require.NoError(t, err)

	messages, err := sms.Instances(ctx, nil)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "SmsMessage", messages[0].Name())
	assert.Equal(t, "SM123", messages[0].ID())

	lookup, err := messages[0].Get(ctx, "status")
	require.NoError(t, err)
	assert.Equal(t, "sent", lookup.String())
	assert.Equal(t, 2, gateway.Count())
}
