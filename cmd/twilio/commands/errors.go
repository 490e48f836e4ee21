package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
	"github.com/fivetwenty-io/twilio-client/pkg/twilio"
)

// PrintError writes err to w with a hint for the failures users can fix.
func PrintError(w io.Writer, err error, noColor bool) {
	headerColor := color.New(color.FgRed, color.Bold)
	hintColor := color.New(color.FgCyan)

	if noColor {
		headerColor.DisableColor()
		hintColor.DisableColor()
	}

	_, _ = headerColor.Fprintf(w, "Error: %v\n", err)

	if hint := errorHint(err); hint != "" {
		_, _ = hintColor.Fprintf(w, "  → %s\n", hint)
	}
}

func errorHint(err error) string {
	var transportErr *resource.TransportError

	switch {
	case errors.Is(err, constants.ErrNoAccountSID), errors.Is(err, constants.ErrNoAuthToken):
		return "Set credentials: twilio config set account_sid AC... && twilio config set auth_token ..."
	case resource.IsUnauthorized(err):
		return "Check the account SID and auth token"
	case resource.IsNotFound(err):
		return "Check the path; list the parent collection to see valid identifiers"
	case errors.Is(err, resource.ErrNoSuchSubresource):
		return "Run 'twilio get' on the parent to see its subresources"
	case errors.Is(err, twilio.ErrInvalidResourcePath):
		return "Paths alternate collection names and identifiers, e.g. calls/CA123/notifications"
	case resource.IsProtocolError(err):
		return "The server did not answer with JSON; check --base-url"
	case errors.As(err, &transportErr) && transportErr.MoreInfo != "":
		return fmt.Sprintf("More info: %s", transportErr.MoreInfo)
	default:
		return ""
	}
}
