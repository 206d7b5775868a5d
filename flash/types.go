package flash

import (
	"time"

	"github.com/WebeWizard/flashcard-server/pkg/webeid"
)

// Recall grades a player can record for a card, lowest to highest.
const (
	MinScore = 0
	MaxScore = 5
)

// Deck is a named collection of cards owned by one account. CardCount is
// filled on reads, not stored.
type Deck struct {
	ID        webeid.ID
	AccountID webeid.ID
	Name      string
	CardCount int
	CreatedAt time.Time
}

// Card is one question/answer pair. Position orders cards within their deck
// starting at zero; the manager keeps positions dense.
type Card struct {
	ID        webeid.ID
	DeckID    webeid.ID
	Question  string
	Answer    string
	Position  int
	CreatedAt time.Time
}

// Score is one recorded review of a card. Value is the recall grade the
// player picked, between MinScore and MaxScore.
type Score struct {
	ID         webeid.ID
	CardID     webeid.ID
	Value      int
	RecordedAt time.Time
}
