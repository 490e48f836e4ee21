// Package resource implements a lazy object graph over a hypermedia REST API.
//
// A Root sits on top of a Gateway and turns accumulated paths into requests.
// Collections and Instances hang below it; each node forwards Receive and
// Send to its proxy with its own path segment prepended, so a request for
// an instance three levels down reaches the Root as
// "Accounts/AC123/Calls/CA123".
//
// Instances are born unloaded: only the identifier is known. The first read
// of any other attribute loads the representation once, caches it, and
// attaches one child collection for every key of the representation's
// subresource_uris field. Child types are resolved through a Registry so a
// resource with special behaviour (an irregular path, a custom identifier
// field, extra operations) can be plugged in by name; everything else gets a
// generic Collection.
//
// Basic usage:
//
//	root, err := resource.NewRoot(gateway)
//	if err != nil {
//		return err
//	}
//
//	accounts := resource.NewCollection("Accounts", root, resource.NewRegistry())
//	account := accounts.Get("AC123")
//
//	name, err := account.Get(ctx, "friendly_name") // one GET
//	calls, err := account.Subresource(ctx, "calls") // no further request
//	status, err := calls.Get("CA123").Get(ctx, "status")
package resource
