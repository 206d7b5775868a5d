// Package flash implements the flashcard domain: decks of ordered cards and
// the review scores recorded against them.
//
// Manager runs on its own Postgres database, separate from accounts; deck
// rows carry the owning account ID but no cross-database foreign key exists.
// Every operation scopes its SQL to the calling account, so a deck or card
// owned by someone else is indistinguishable from one that does not exist.
//
// Card positions are dense, zero-based, and per deck. Creating a card
// appends it; repositioning and deleting shift the neighbors inside a
// transaction so the invariant holds:
//
//	mgr := flash.NewManager(pool, ids)
//	err := mgr.UpdateCardPosition(ctx, session.AccountID, cardID, 0)
//
// The HTTP handlers read the caller's account from the session the auth gate
// stored, bind JSON bodies, and translate the package sentinels into
// response.HTTPError values.
package flash
