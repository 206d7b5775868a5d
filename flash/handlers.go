package flash

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/WebeWizard/flashcard-server/auth"
	"github.com/WebeWizard/flashcard-server/core/binder"
	"github.com/WebeWizard/flashcard-server/core/handler"
	"github.com/WebeWizard/flashcard-server/core/response"
	"github.com/WebeWizard/flashcard-server/middleware"
	"github.com/WebeWizard/flashcard-server/pkg/webeid"
)

// Service is the slice of Manager the HTTP handlers need. Tests swap in a
// stub.
type Service interface {
	ListDecks(ctx context.Context, accountID webeid.ID) ([]Deck, error)
	GetDeck(ctx context.Context, accountID, deckID webeid.ID) (Deck, []Card, error)
	CreateDeck(ctx context.Context, accountID webeid.ID, name string) (Deck, error)
	RenameDeck(ctx context.Context, accountID, deckID webeid.ID, name string) error
	DeleteDeck(ctx context.Context, accountID, deckID webeid.ID) error

	CreateCard(ctx context.Context, accountID, deckID webeid.ID, question, answer string) (Card, error)
	UpdateCard(ctx context.Context, accountID, cardID webeid.ID, question, answer string) error
	UpdateCardPosition(ctx context.Context, accountID, cardID webeid.ID, position int) error
	DeleteCard(ctx context.Context, accountID, cardID webeid.ID) error

	RecordScore(ctx context.Context, accountID, cardID webeid.ID, value int) (Score, error)
	DeckScores(ctx context.Context, accountID, deckID webeid.ID) ([]Score, error)
}

type createDeckRequest struct {
	Name string `json:"name"`
}

type renameDeckRequest struct {
	DeckID string `json:"deck_id"`
	Name   string `json:"name"`
}

type deckRequest struct {
	DeckID string `json:"deck_id"`
}

type createCardRequest struct {
	DeckID   string `json:"deck_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type updateCardRequest struct {
	CardID   string `json:"card_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type cardPositionRequest struct {
	CardID   string `json:"card_id"`
	Position int    `json:"position"`
}

type cardRequest struct {
	CardID string `json:"card_id"`
}

type scoreRequest struct {
	CardID string `json:"card_id"`
	Value  int    `json:"value"`
}

// IDs travel as decimal strings because JavaScript numbers cannot hold a
// full 64-bit value.
type deckPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CardCount int       `json:"card_count"`
	CreatedAt time.Time `json:"created_at"`
}

type deckDetailPayload struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CardCount int           `json:"card_count"`
	CreatedAt time.Time     `json:"created_at"`
	Cards     []cardPayload `json:"cards"`
}

type cardPayload struct {
	ID        string    `json:"id"`
	DeckID    string    `json:"deck_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type scorePayload struct {
	CardID     string    `json:"card_id"`
	Value      int       `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

func newDeckPayload(d Deck) deckPayload {
	return deckPayload{
		ID:        d.ID.String(),
		Name:      d.Name,
		CardCount: d.CardCount,
		CreatedAt: d.CreatedAt,
	}
}

func newCardPayload(c Card) cardPayload {
	return cardPayload{
		ID:        c.ID.String(),
		DeckID:    c.DeckID.String(),
		Question:  c.Question,
		Answer:    c.Answer,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
	}
}

func newScorePayload(s Score) scorePayload {
	return scorePayload{
		CardID:     s.CardID.String(),
		Value:      s.Value,
		RecordedAt: s.RecordedAt,
	}
}

// ListDecksHandler handles GET /decks.
func ListDecksHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		decks, err := svc.ListDecks(ctx, accountID)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		payload := make([]deckPayload, 0, len(decks))
		for _, d := range decks {
			payload = append(payload, newDeckPayload(d))
		}
		return response.JSON(payload)
	}
}

// GetDeckHandler handles GET /deck/<id>.
func GetDeckHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		deckID, err := parseID(ctx.Param("id"), ErrDeckNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		deck, cards, err := svc.GetDeck(ctx, accountID, deckID)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		detail := deckDetailPayload{
			ID:        deck.ID.String(),
			Name:      deck.Name,
			CardCount: deck.CardCount,
			CreatedAt: deck.CreatedAt,
			Cards:     make([]cardPayload, 0, len(cards)),
		}
		for _, c := range cards {
			detail.Cards = append(detail.Cards, newCardPayload(c))
		}
		return response.JSON(detail)
	}
}

// CreateDeckHandler handles POST /deck/create.
func CreateDeckHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		var req createDeckRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		deck, err := svc.CreateDeck(ctx, accountID, req.Name)
		if err != nil {
			return response.Error(mapFlashError(err))
		}
		return response.JSONWithStatus(newDeckPayload(deck), http.StatusCreated)
	}
}

// RenameDeckHandler handles POST /deck/rename.
func RenameDeckHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		var req renameDeckRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		deckID, err := parseID(req.DeckID, ErrDeckNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		if err := svc.RenameDeck(ctx, accountID, deckID, req.Name); err != nil {
			return response.Error(mapFlashError(err))
		}
		return response.Status(http.StatusOK)
	}
}

// DeleteDeckHandler handles POST /deck/delete.
func DeleteDeckHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		var req deckRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		deckID, err := parseID(req.DeckID, ErrDeckNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		if err := svc.DeleteDeck(ctx, accountID, deckID); err != nil {
			return response.Error(mapFlashError(err))
		}
		return response.Status(http.StatusOK)
	}
}

// CreateCardHandler handles POST /card/create.
func CreateCardHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		var req createCardRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		deckID, err := parseID(req.DeckID, ErrDeckNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		card, err := svc.CreateCard(ctx, accountID, deckID, req.Question, req.Answer)
		if err != nil {
			return response.Error(mapFlashError(err))
		}
		return response.JSONWithStatus(newCardPayload(card), http.StatusCreated)
	}
}

// UpdateCardHandler handles POST /card/update.
func UpdateCardHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		var req updateCardRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		cardID, err := parseID(req.CardID, ErrCardNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		if err := svc.UpdateCard(ctx, accountID, cardID, req.Question, req.Answer); err != nil {
			return response.Error(mapFlashError(err))
		}
		return response.Status(http.StatusOK)
	}
}

// UpdateCardPositionHandler handles POST /card/updatepos.
func UpdateCardPositionHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		var req cardPositionRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		cardID, err := parseID(req.CardID, ErrCardNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		if err := svc.UpdateCardPosition(ctx, accountID, cardID, req.Position); err != nil {
			return response.Error(mapFlashError(err))
		}
		return response.Status(http.StatusOK)
	}
}

// DeleteCardHandler handles POST /card/delete.
func DeleteCardHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		var req cardRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		cardID, err := parseID(req.CardID, ErrCardNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		if err := svc.DeleteCard(ctx, accountID, cardID); err != nil {
			return response.Error(mapFlashError(err))
		}
		return response.Status(http.StatusOK)
	}
}

// RecordScoreHandler handles POST /card/score.
func RecordScoreHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		var req scoreRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		cardID, err := parseID(req.CardID, ErrCardNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		score, err := svc.RecordScore(ctx, accountID, cardID, req.Value)
		if err != nil {
			return response.Error(mapFlashError(err))
		}
		return response.JSONWithStatus(newScorePayload(score), http.StatusCreated)
	}
}

// DeckScoresHandler handles GET /deck/scores/<id>.
func DeckScoresHandler[C handler.Context](svc Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		accountID, ok := sessionAccount(ctx)
		if !ok {
			return response.Error(response.ErrUnauthorized)
		}

		deckID, err := parseID(ctx.Param("id"), ErrDeckNotFound)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		scores, err := svc.DeckScores(ctx, accountID, deckID)
		if err != nil {
			return response.Error(mapFlashError(err))
		}

		payload := make([]scorePayload, 0, len(scores))
		for _, s := range scores {
			payload = append(payload, newScorePayload(s))
		}
		return response.JSON(payload)
	}
}

func sessionAccount(ctx handler.Context) (webeid.ID, bool) {
	session, ok := middleware.GetSession[auth.Session](ctx)
	if !ok {
		return 0, false
	}
	return session.AccountID, true
}

// parseID maps unparseable IDs to the same not-found sentinel a missing row
// would produce, so responses do not reveal which IDs are well formed.
func parseID(raw string, notFound error) (webeid.ID, error) {
	id, err := webeid.ParseID(raw)
	if err != nil {
		return 0, notFound
	}
	return id, nil
}

// mapFlashError converts package sentinels into HTTP error responses;
// anything unrecognized stays a 500.
func mapFlashError(err error) error {
	switch {
	case errors.Is(err, ErrDeckNotFound), errors.Is(err, ErrCardNotFound):
		return response.ErrNotFound.WithMessage(err.Error())
	case errors.Is(err, ErrInvalidDeckName), errors.Is(err, ErrInvalidCard), errors.Is(err, ErrInvalidScore):
		return response.ErrUnprocessableEntity.WithMessage(err.Error())
	default:
		return err
	}
}
