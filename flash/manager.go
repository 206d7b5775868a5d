package flash

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WebeWizard/flashcard-server/core/logger"
	"github.com/WebeWizard/flashcard-server/integration/database/pg"
	"github.com/WebeWizard/flashcard-server/pkg/webeid"
)

const maxDeckNameLen = 200

const (
	listDecksSQL = `SELECT d.id, d.account_id, d.name, d.created_at, COUNT(c.id)
		FROM decks d
		LEFT JOIN cards c ON c.deck_id = d.id
		WHERE d.account_id = $1
		GROUP BY d.id
		ORDER BY d.created_at, d.id`
	selectDeckSQL = `SELECT id, account_id, name, created_at FROM decks
		WHERE id = $1 AND account_id = $2`
	deckExistsSQL      = `SELECT 1 FROM decks WHERE id = $1 AND account_id = $2`
	selectDeckCardsSQL = `SELECT id, deck_id, question, answer, position, created_at
		FROM cards WHERE deck_id = $1 ORDER BY position, id`
	insertDeckSQL = `INSERT INTO decks (id, account_id, name, created_at) VALUES ($1, $2, $3, $4)`
	renameDeckSQL = `UPDATE decks SET name = $1 WHERE id = $2 AND account_id = $3`
	deleteDeckSQL = `DELETE FROM decks WHERE id = $1 AND account_id = $2`

	insertCardSQL = `INSERT INTO cards (id, deck_id, question, answer, position, created_at)
		SELECT $1, d.id, $2, $3, COALESCE((SELECT MAX(position) + 1 FROM cards WHERE deck_id = d.id), 0), $4
		FROM decks d WHERE d.id = $5 AND d.account_id = $6
		RETURNING id, deck_id, question, answer, position, created_at`
	updateCardSQL = `UPDATE cards c SET question = $1, answer = $2
		FROM decks d
		WHERE c.id = $3 AND c.deck_id = d.id AND d.account_id = $4`
	selectCardForUpdateSQL = `SELECT c.deck_id, c.position
		FROM cards c JOIN decks d ON d.id = c.deck_id
		WHERE c.id = $1 AND d.account_id = $2
		FOR UPDATE`
	countDeckCardsSQL = `SELECT COUNT(*) FROM cards WHERE deck_id = $1`
	shiftCardsUpSQL   = `UPDATE cards SET position = position + 1
		WHERE deck_id = $1 AND position >= $2 AND position < $3`
	shiftCardsDownSQL = `UPDATE cards SET position = position - 1
		WHERE deck_id = $1 AND position > $2 AND position <= $3`
	placeCardSQL  = `UPDATE cards SET position = $1 WHERE id = $2`
	deleteCardSQL = `DELETE FROM cards c USING decks d
		WHERE c.id = $1 AND c.deck_id = d.id AND d.account_id = $2
		RETURNING c.deck_id, c.position`
	closeGapSQL = `UPDATE cards SET position = position - 1 WHERE deck_id = $1 AND position > $2`

	insertScoreSQL = `INSERT INTO card_scores (id, card_id, value, recorded_at)
		SELECT $1, c.id, $2, $3
		FROM cards c JOIN decks d ON d.id = c.deck_id
		WHERE c.id = $4 AND d.account_id = $5`
	latestScoresSQL = `SELECT DISTINCT ON (s.card_id) s.id, s.card_id, s.value, s.recorded_at
		FROM card_scores s
		JOIN cards c ON c.id = s.card_id
		WHERE c.deck_id = $1
		ORDER BY s.card_id, s.recorded_at DESC, s.id DESC`
)

// Manager implements decks, cards, and review scores on Postgres. Every
// operation takes the calling account; rows the account does not own behave
// exactly like rows that do not exist.
type Manager struct {
	pool *pgxpool.Pool
	ids  *webeid.Generator
	log  *slog.Logger
	now  func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for deck and card events.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a flashcard manager over the given pool. IDs come from
// the shared generator.
func NewManager(pool *pgxpool.Pool, ids *webeid.Generator, opts ...ManagerOption) *Manager {
	m := &Manager{
		pool: pool,
		ids:  ids,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ListDecks returns the account's decks with card counts, oldest first.
func (m *Manager) ListDecks(ctx context.Context, accountID webeid.ID) ([]Deck, error) {
	q := pg.QuerierFromContext(ctx, m.pool)

	rows, err := q.Query(ctx, listDecksSQL, accountID.Int64())
	if err != nil {
		return nil, fmt.Errorf("listing decks: %w", err)
	}
	defer rows.Close()

	var decks []Deck
	for rows.Next() {
		var (
			deck      Deck
			id, owner int64
		)
		if err := rows.Scan(&id, &owner, &deck.Name, &deck.CreatedAt, &deck.CardCount); err != nil {
			return nil, fmt.Errorf("scanning deck: %w", err)
		}
		deck.ID, deck.AccountID = webeid.ID(id), webeid.ID(owner)
		decks = append(decks, deck)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing decks: %w", err)
	}
	return decks, nil
}

// GetDeck returns one deck and its cards ordered by position.
func (m *Manager) GetDeck(ctx context.Context, accountID, deckID webeid.ID) (Deck, []Card, error) {
	q := pg.QuerierFromContext(ctx, m.pool)

	var (
		deck      Deck
		id, owner int64
	)
	err := q.QueryRow(ctx, selectDeckSQL, deckID.Int64(), accountID.Int64()).
		Scan(&id, &owner, &deck.Name, &deck.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Deck{}, nil, ErrDeckNotFound
		}
		return Deck{}, nil, fmt.Errorf("looking up deck: %w", err)
	}
	deck.ID, deck.AccountID = webeid.ID(id), webeid.ID(owner)

	rows, err := q.Query(ctx, selectDeckCardsSQL, deckID.Int64())
	if err != nil {
		return Deck{}, nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var (
			card           Card
			cardID, inDeck int64
		)
		if err := rows.Scan(&cardID, &inDeck, &card.Question, &card.Answer, &card.Position, &card.CreatedAt); err != nil {
			return Deck{}, nil, fmt.Errorf("scanning card: %w", err)
		}
		card.ID, card.DeckID = webeid.ID(cardID), webeid.ID(inDeck)
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return Deck{}, nil, fmt.Errorf("listing cards: %w", err)
	}

	deck.CardCount = len(cards)
	return deck, cards, nil
}

// CreateDeck creates an empty deck for the account.
func (m *Manager) CreateDeck(ctx context.Context, accountID webeid.ID, name string) (Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxDeckNameLen {
		return Deck{}, ErrInvalidDeckName
	}

	id, err := m.ids.Next()
	if err != nil {
		return Deck{}, fmt.Errorf("minting deck id: %w", err)
	}
	now := m.now()

	q := pg.QuerierFromContext(ctx, m.pool)
	if _, err := q.Exec(ctx, insertDeckSQL, id.Int64(), accountID.Int64(), name, now); err != nil {
		return Deck{}, fmt.Errorf("inserting deck: %w", err)
	}

	m.log.InfoContext(ctx, "deck created", logger.UserID(accountID.String()))
	return Deck{ID: id, AccountID: accountID, Name: name, CreatedAt: now}, nil
}

// RenameDeck changes the deck's name.
func (m *Manager) RenameDeck(ctx context.Context, accountID, deckID webeid.ID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxDeckNameLen {
		return ErrInvalidDeckName
	}

	q := pg.QuerierFromContext(ctx, m.pool)
	tag, err := q.Exec(ctx, renameDeckSQL, name, deckID.Int64(), accountID.Int64())
	if err != nil {
		return fmt.Errorf("renaming deck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDeckNotFound
	}
	return nil
}

// DeleteDeck removes the deck; its cards and their scores go with it.
func (m *Manager) DeleteDeck(ctx context.Context, accountID, deckID webeid.ID) error {
	q := pg.QuerierFromContext(ctx, m.pool)

	tag, err := q.Exec(ctx, deleteDeckSQL, deckID.Int64(), accountID.Int64())
	if err != nil {
		return fmt.Errorf("deleting deck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDeckNotFound
	}

	m.log.InfoContext(ctx, "deck deleted", logger.UserID(accountID.String()))
	return nil
}

// CreateCard appends a card to the end of the deck.
func (m *Manager) CreateCard(ctx context.Context, accountID, deckID webeid.ID, question, answer string) (Card, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return Card{}, ErrInvalidCard
	}

	id, err := m.ids.Next()
	if err != nil {
		return Card{}, fmt.Errorf("minting card id: %w", err)
	}

	q := pg.QuerierFromContext(ctx, m.pool)

	var (
		card           Card
		cardID, inDeck int64
	)
	err = q.QueryRow(ctx, insertCardSQL, id.Int64(), question, answer, m.now(), deckID.Int64(), accountID.Int64()).
		Scan(&cardID, &inDeck, &card.Question, &card.Answer, &card.Position, &card.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Card{}, ErrDeckNotFound
		}
		return Card{}, fmt.Errorf("inserting card: %w", err)
	}
	card.ID, card.DeckID = webeid.ID(cardID), webeid.ID(inDeck)
	return card, nil
}

// UpdateCard replaces the card's question and answer.
func (m *Manager) UpdateCard(ctx context.Context, accountID, cardID webeid.ID, question, answer string) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return ErrInvalidCard
	}

	q := pg.QuerierFromContext(ctx, m.pool)
	tag, err := q.Exec(ctx, updateCardSQL, question, answer, cardID.Int64(), accountID.Int64())
	if err != nil {
		return fmt.Errorf("updating card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCardNotFound
	}
	return nil
}

// UpdateCardPosition moves the card to the given position within its deck,
// shifting the cards in between. Positions outside the deck are clamped.
func (m *Manager) UpdateCardPosition(ctx context.Context, accountID, cardID webeid.ID, position int) error {
	return m.withTx(ctx, func(ctx context.Context) error {
		q := pg.QuerierFromContext(ctx, m.pool)

		var (
			deckID  int64
			current int
		)
		err := q.QueryRow(ctx, selectCardForUpdateSQL, cardID.Int64(), accountID.Int64()).Scan(&deckID, &current)
		if err != nil {
			if pg.IsNotFoundError(err) {
				return ErrCardNotFound
			}
			return fmt.Errorf("looking up card: %w", err)
		}

		var count int
		if err := q.QueryRow(ctx, countDeckCardsSQL, deckID).Scan(&count); err != nil {
			return fmt.Errorf("counting cards: %w", err)
		}

		target := position
		if target < 0 {
			target = 0
		}
		if target > count-1 {
			target = count - 1
		}
		if target == current {
			return nil
		}

		if target < current {
			_, err = q.Exec(ctx, shiftCardsUpSQL, deckID, target, current)
		} else {
			_, err = q.Exec(ctx, shiftCardsDownSQL, deckID, current, target)
		}
		if err != nil {
			return fmt.Errorf("shifting cards: %w", err)
		}

		if _, err := q.Exec(ctx, placeCardSQL, target, cardID.Int64()); err != nil {
			return fmt.Errorf("placing card: %w", err)
		}
		return nil
	})
}

// DeleteCard removes the card and closes the position gap it leaves, so the
// deck's positions stay dense.
func (m *Manager) DeleteCard(ctx context.Context, accountID, cardID webeid.ID) error {
	return m.withTx(ctx, func(ctx context.Context) error {
		q := pg.QuerierFromContext(ctx, m.pool)

		var (
			deckID   int64
			position int
		)
		err := q.QueryRow(ctx, deleteCardSQL, cardID.Int64(), accountID.Int64()).Scan(&deckID, &position)
		if err != nil {
			if pg.IsNotFoundError(err) {
				return ErrCardNotFound
			}
			return fmt.Errorf("deleting card: %w", err)
		}

		if _, err := q.Exec(ctx, closeGapSQL, deckID, position); err != nil {
			return fmt.Errorf("closing position gap: %w", err)
		}
		return nil
	})
}

// RecordScore appends one review result for the card.
func (m *Manager) RecordScore(ctx context.Context, accountID, cardID webeid.ID, value int) (Score, error) {
	if value < MinScore || value > MaxScore {
		return Score{}, ErrInvalidScore
	}

	id, err := m.ids.Next()
	if err != nil {
		return Score{}, fmt.Errorf("minting score id: %w", err)
	}
	now := m.now()

	q := pg.QuerierFromContext(ctx, m.pool)
	tag, err := q.Exec(ctx, insertScoreSQL, id.Int64(), value, now, cardID.Int64(), accountID.Int64())
	if err != nil {
		return Score{}, fmt.Errorf("recording score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Score{}, ErrCardNotFound
	}

	return Score{ID: id, CardID: cardID, Value: value, RecordedAt: now}, nil
}

// DeckScores returns the most recent score for each card in the deck. Cards
// never reviewed do not appear.
func (m *Manager) DeckScores(ctx context.Context, accountID, deckID webeid.ID) ([]Score, error) {
	q := pg.QuerierFromContext(ctx, m.pool)

	var one int
	err := q.QueryRow(ctx, deckExistsSQL, deckID.Int64(), accountID.Int64()).Scan(&one)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("looking up deck: %w", err)
	}

	rows, err := q.Query(ctx, latestScoresSQL, deckID.Int64())
	if err != nil {
		return nil, fmt.Errorf("listing scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var (
			score      Score
			id, cardID int64
		)
		if err := rows.Scan(&id, &cardID, &score.Value, &score.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning score: %w", err)
		}
		score.ID, score.CardID = webeid.ID(id), webeid.ID(cardID)
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing scores: %w", err)
	}
	return scores, nil
}

// withTx runs fn inside a transaction; the queries fn issues through
// QuerierFromContext all land on the same tx.
func (m *Manager) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !pg.IsTxClosedError(err) {
			m.log.ErrorContext(ctx, "transaction rollback failed", logger.Error(err))
		}
	}()

	if err := fn(pg.WithTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
