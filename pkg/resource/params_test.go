package resource_test

import (
	"testing"

	"github.com/fivetwenty-io/twilio-client/pkg/resource"
	"github.com/stretchr/testify/assert"
)

func TestParams_EncodeKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	params := resource.NewParams("Page", "0", "PageSize", "10", "FriendlyName", "foo", "Status", "active")

	assert.Equal(t, "Page=0&PageSize=10&FriendlyName=foo&Status=active", params.Encode())
}

func TestParams_EncodeEscapes(t *testing.T) {
	t.Parallel()

	params := resource.NewParams("Url", "http://example.com/a b", "Body", "50% off & more")

	assert.Equal(t, "Url=http%3A%2F%2Fexample.com%2Fa+b&Body=50%25+off+%26+more", params.Encode())
}

func TestParams_EncodeEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, resource.Params(nil).Encode())
	assert.Empty(t, resource.NewParams().Encode())
}

func TestParams_SetReplacesInPlace(t *testing.T) {
	t.Parallel()

	params := resource.NewParams("A", "1", "B", "2").Set("A", "3").Set("C", "4")

	assert.Equal(t, "A=3&B=2&C=4", params.Encode())
	assert.Equal(t, 3, params.Len())

	value, ok := params.Get("B")
	assert.True(t, ok)
	assert.Equal(t, "2", value)

	_, ok = params.Get("Z")
	assert.False(t, ok)
}

func TestParams_MergeLeftWins(t *testing.T) {
	t.Parallel()

	left := resource.NewParams("From", "123", "To", "456")
	merged := left.Merge(resource.NewParams("To", "999", "Url", "http://example.com"))

	assert.Equal(t, "From=123&To=456&Url=http%3A%2F%2Fexample.com", merged.Encode())
	assert.Equal(t, "From=123&To=456", left.Encode())
}

func TestNewParams_OddArguments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Key=", resource.NewParams("Key").Encode())
}
