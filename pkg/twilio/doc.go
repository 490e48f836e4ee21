// Package twilio wires the resource graph to the Twilio REST API.
//
// # Overview
//
// New builds a Client from a Config: an HTTP transport with basic
// authentication and retries, a resource.Root for API version 2010-04-01,
// and a registry of the resources that need more than the generic
// behaviour. The client exposes the Accounts collection and the configured
// Account; everything below the account is discovered from the API itself.
//
//	cli, err := twilio.New(&twilio.Config{
//	  AccountSID: "AC123",
//	  AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
//	})
//	if err != nil { log.Fatal(err) }
//
//	name, err := cli.Account().Get(ctx, "friendly_name")
//
//	calls, err := cli.Account().Calls(ctx)
//	call, err := calls.CreateCall(ctx, "+15005550006", "+14155551212", "http://example.com/twiml", nil)
//	err = call.Hangup(ctx)
//
// # Specialized resources
//
// Calls, SmsMessages, ShortCodes, Conferences and Participants are
// registered by their type name. A sub-resource whose name has no
// registration is served by a generic resource.Collection, so resources the
// API adds later are reachable without a client release.
//
// # Caching
//
// An instance loads at most once. Updates are sent to the API but do not
// refresh the local copy; fetch a new instance through its collection to
// observe the server's state after a mutation.
package twilio
