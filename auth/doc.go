// Package auth implements account signup with email verification and token
// sessions for the flashcard API.
//
// Manager owns the accounts database: it hashes passwords with bcrypt, mints
// account IDs from a webeid generator, and sends verification mail through
// any email.EmailSender. Sessions are opaque tokens carried in the
// x-webe-token header; Manager satisfies middleware.SessionValidator, so the
// same value gates protected routes:
//
//	mgr, err := auth.NewManager(pool, ids, sender)
//	if err != nil {
//		return err
//	}
//
//	r.Post("/account/create", auth.CreateAccountHandler[*router.Context](mgr))
//	r.Get("/decks", listDecks, middleware.Auth[*router.Context, auth.Session](mgr))
//
// The HTTP handlers in this package translate the package sentinels into
// response.HTTPError values, so clients always see a consistent JSON error
// shape.
package auth
