package flash

import "errors"

var (
	// ErrDeckNotFound covers both decks that do not exist and decks owned by
	// another account, so responses do not reveal which.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrCardNotFound covers both cards that do not exist and cards in decks
	// owned by another account.
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidDeckName rejects empty names and names longer than the deck
	// list can sensibly display.
	ErrInvalidDeckName = errors.New("deck name must be between 1 and 200 characters")

	// ErrInvalidCard rejects cards missing a question or an answer.
	ErrInvalidCard = errors.New("card question and answer are required")

	// ErrInvalidScore rejects recall grades outside the 0-5 scale.
	ErrInvalidScore = errors.New("score must be between 0 and 5")
)
