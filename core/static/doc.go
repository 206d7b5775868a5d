// Package static provides handlers for serving the web client's assets.
//
// File serves individual assets named by a wildcard route parameter, with
// traversal and dotfile protection. SPA serves the fixed application shell
// for client-routed paths and is meant for the catch-all route at the end of
// the table.
//
//	r.Get("/app/<path...>", static.File[*router.Context](staticDir, "path"))
//	r.Get("/<path...>", static.SPA[*router.Context](staticDir, "index.html"))
//
// Both handlers validate their filesystem configuration at startup and panic
// on a bad root, so a misconfigured deployment fails before the listener
// accepts traffic.
package static
