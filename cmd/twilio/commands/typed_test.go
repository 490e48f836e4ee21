package commands

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/twilio-client/internal/testutil"
)

const callsPath = "/2010-04-01/Accounts/AC123/Calls.json"

func TestCallsPlaceCommand(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().
		OnGet(accountPath, http.StatusOK, testAccount).
		OnPost(callsPath, http.StatusCreated, map[string]any{"sid": "CA1", "status": "queued"})

	out, err := execute(t, NewCallsCommand(gatewayFactory(gateway)),
		"place", "+15005550006", "+14155551212", "http://example.com", "-p", "Timeout=10")
	require.NoError(t, err)
	assert.Contains(t, out, "CA1")

	last, ok := gateway.Last()
	require.True(t, ok)
	assert.Equal(t, "From=%2B15005550006&To=%2B14155551212&Url=http%3A%2F%2Fexample.com&Timeout=10", last.Form)
}

func TestCallsHangupCommand(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().
		OnGet(accountPath, http.StatusOK, testAccount).
		OnPost("/2010-04-01/Accounts/AC123/Calls/CA1.json", http.StatusOK, map[string]any{"sid": "CA1"})

	out, err := execute(t, NewCallsCommand(gatewayFactory(gateway)), "hangup", "CA1")
	require.NoError(t, err)
	assert.Equal(t, "Hung up call CA1\n", out)

	last, ok := gateway.Last()
	require.True(t, ok)
	assert.Equal(t, "Status=completed", last.Form)
}

func TestCallsRedirectCommand(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().
		OnGet(accountPath, http.StatusOK, testAccount).
		OnPost("/2010-04-01/Accounts/AC123/Calls/CA1.json", http.StatusOK, map[string]any{"sid": "CA1"})

	_, err := execute(t, NewCallsCommand(gatewayFactory(gateway)), "redirect", "CA1", "http://example.com/next", "--method", "GET")
	require.NoError(t, err)

	last, ok := gateway.Last()
	require.True(t, ok)
	assert.Equal(t, "Url=http%3A%2F%2Fexample.com%2Fnext&Method=GET", last.Form)
}

func TestSmsSendCommand(t *testing.T) {
	t.Parallel()

	gateway := testutil.NewGateway().
		OnGet(accountPath, http.StatusOK, testAccount).
		OnPost("/2010-04-01/Accounts/AC123/SMS/Messages.json", http.StatusCreated, map[string]any{
			"sid":    "SM1",
			"status": "queued",
		})

	out, err := execute(t, NewSmsCommand(gatewayFactory(gateway)), "send", "+15005550006", "+14155551212", "hello", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"sid": "SM1"`)

	last, ok := gateway.Last()
	require.True(t, ok)
	assert.Equal(t, "From=%2B15005550006&To=%2B14155551212&Body=hello", last.Form)
}
