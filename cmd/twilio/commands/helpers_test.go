package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

func TestParseParams(t *testing.T) {
	t.Parallel()

	params, err := parseParams([]string{"To=+1415", "Body=a=b", "To=+1416", "Empty="})
	require.NoError(t, err)
	assert.Equal(t, resource.Params{
		{Key: "To", Value: "+1416"},
		{Key: "Body", Value: "a=b"},
		{Key: "Empty", Value: ""},
	}, params)

	params, err = parseParams(nil)
	require.NoError(t, err)
	assert.Empty(t, params)

	_, err = parseParams([]string{"=value"})
	require.ErrorIs(t, err, constants.ErrInvalidParamFormat)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "text", formatValue("text"))
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, "12", formatValue(float64(12)))
	assert.Equal(t, "0.25", formatValue(0.25))
	assert.Equal(t, `{"a":1}`, formatValue(map[string]any{"a": 1}))
	assert.Equal(t, `["x","y"]`, formatValue([]any{"x", "y"}))
}

func TestListColumns(t *testing.T) {
	t.Parallel()

	items := []resource.Representation{{"sid": "CA1", "status": "completed", "to": "+1"}}

	assert.Equal(t, []string{"sid", "status"}, listColumns(nil, "sid", items))
	assert.Equal(t, []string{"call_sid"}, listColumns(nil, "call_sid", nil))
	assert.Equal(t, []string{"to"}, listColumns([]string{"to"}, "sid", items))
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	PrintError(&out, &resource.TransportError{
		Method:     "GET",
		Path:       "/2010-04-01/Accounts/AC123.json",
		StatusCode: 401,
		Message:    "Authenticate",
		Code:       20003,
	}, true)

	assert.Contains(t, out.String(), "Error: GET /2010-04-01/Accounts/AC123.json: 401: Authenticate (code: 20003)")
	assert.Contains(t, out.String(), "Check the account SID and auth token")

	out.Reset()
	PrintError(&out, errors.New("boom"), true)
	assert.Equal(t, "Error: boom\n", out.String())
}

func TestZapLogger(t *testing.T) {
	t.Parallel()

	logger := NewZapLogger(false)
	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET"})
	logger.Info("API Response", nil)
	logger.Warn("retrying", map[string]interface{}{"attempt": 1})
	logger.Error("failed", map[string]interface{}{"error": "boom"})
	logger.Sync()

	fields := zapFields(map[string]interface{}{"b": 2, "a": 1})
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "b", fields[1].Key)
}

func TestCommandTree(t *testing.T) {
	t.Parallel()

	factory := gatewayFactory(nil)

	calls := NewCallsCommand(factory)
	assert.Equal(t, []string{"call"}, calls.Aliases)
	assert.Equal(t, "place FROM TO URL", requireSubcommand(t, calls, "place").Use)
	assert.Equal(t, "hangup CALL_SID", requireSubcommand(t, calls, "hangup").Use)
	assert.NotNil(t, requireSubcommand(t, calls, "redirect").Flags().Lookup("method"))

	sms := NewSmsCommand(factory)
	assert.Equal(t, "send FROM TO BODY", requireSubcommand(t, sms, "send").Use)

	list := NewListCommand(factory)
	for _, name := range []string{paramFlag, pageFlag, pageSizeFlag, columnsFlag} {
		assert.NotNil(t, list.Flags().Lookup(name), "flag %s", name)
	}

	assert.Equal(t, "p", list.Flags().Lookup(paramFlag).Shorthand)
}
