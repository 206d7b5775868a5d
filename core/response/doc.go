// Package response provides HTTP response builders and error handlers that
// plug into the router's handler.Response contract. Responses are functions
// that write to the ResponseWriter and report failures back to the dispatch
// loop instead of writing them inline.
//
// # Basic Usage
//
//	import "github.com/WebeWizard/flashcard-server/core/response"
//
//	func listDecks(ctx *router.Context) handler.Response {
//		decks, err := store.ListDecks(ctx, accountID)
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(decks)
//	}
//
// # Error Responses
//
// HTTPError carries a status code, a machine-readable code, and optional
// details. Predefined values cover the statuses the service produces:
//
//	return response.Error(response.ErrConflict.WithMessage("email already registered"))
//
// Handler errors reach the router's error handler, where ErrorHandler (plain
// text) or JSONErrorHandler (structured JSON) convert them to a response.
// Any error implementing StatusCode() int maps to the matching catalog entry;
// everything else becomes a 500.
package response
