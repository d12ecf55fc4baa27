// Package browse holds the query and pagination state behind the home screen.
//
// The controller never performs I/O itself. Every state change that needs data
// returns a Ticket describing the request; the caller runs it with Fetch (usually
// inside a tea.Cmd) and hands the Result back to Apply. Apply drops results whose
// ticket no longer matches the controller's current generation and filters, so a
// slow response for an old query can never overwrite a newer one.
//
// Usage:
//
//	ctrl := browse.NewController(logger)
//	for _, t := range ctrl.SetSearchText("alien") {
//		res := browse.Fetch(ctx, client, t)
//		ctrl.Apply(res)
//	}
//	if t, ok := ctrl.LoadMore(); ok {
//		ctrl.Apply(browse.Fetch(ctx, client, t))
//	}
package browse
