// Package webeid mints 64-bit time-ordered identifiers for accounts, decks,
// cards, and scores.
//
// An ID packs 48 bits of milliseconds since 2019-01-01T00:00:00Z, one node
// byte, and one per-millisecond sequence byte, so a single node can mint 256
// IDs per millisecond and IDs sort by creation time:
//
//	gen := webeid.New(0)
//
//	id, err := gen.Next()
//	if err != nil {
//		return err
//	}
//	fmt.Println(id, id.Time(), id.Node(), id.Seq())
//
// One generator per process per node byte; two generators sharing a node
// byte can collide.
package webeid
