package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/efuentes/blackjack-go/internal/dependencies/clock"
	"github.com/efuentes/blackjack-go/internal/dependencies/random"
	"github.com/efuentes/blackjack-go/internal/model"
	"github.com/efuentes/blackjack-go/internal/storage"
)

// startingDeal is the number of cards a fresh game needs up front
const startingDeal = 4

// dealerStandsAt is the total at which the dealer stops drawing
const dealerStandsAt = 17

// Engine orchestrates all player actions against player, hand and deck
// state. Each operation is a read-modify-write against storage; a
// per-player mutex serializes concurrent requests for the same player,
// and each player owns an independent deck.
type Engine struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[model.PlayerID]*sync.Mutex
}

// New creates a new game engine
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Engine {
	return &Engine{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
		locks:   make(map[model.PlayerID]*sync.Mutex),
	}
}

// lockPlayer acquires the per-player mutex and returns its release func
func (e *Engine) lockPlayer(id model.PlayerID) func() {
	e.mu.Lock()
	lock, ok := e.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[id] = lock
	}
	e.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// freshDeck generates and shuffles a full deck
func (e *Engine) freshDeck() *model.Deck {
	deck := model.NewDeck()
	e.random.Shuffle(len(deck.Cards), func(i, j int) {
		deck.Cards[i], deck.Cards[j] = deck.Cards[j], deck.Cards[i]
	})
	return deck
}

// loadDeck fetches the player's deck, generating a fresh one if the
// player has never been dealt to
func (e *Engine) loadDeck(ctx context.Context, id model.PlayerID) (*model.Deck, error) {
	deck, err := e.storage.GetDeck(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrDeckNotFound) {
			return e.freshDeck(), nil
		}
		return nil, err
	}
	return deck, nil
}

// ensureCapacity replaces the deck with a fresh shuffled one when fewer
// than n cards remain. Partially dealt state is discarded.
func (e *Engine) ensureCapacity(deck *model.Deck, n int) *model.Deck {
	if deck.Remaining() < n {
		return e.freshDeck()
	}
	return deck
}

// PlaceBet stages a wager for the player's next game
func (e *Engine) PlaceBet(ctx context.Context, id model.PlayerID, amount int) (*BetResult, error) {
	defer e.lockPlayer(id)()

	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := player.PlaceBet(amount); err != nil {
		return nil, err
	}

	if err := e.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	e.logger.Info("bet placed",
		slog.String("player_id", string(id)),
		slog.Int("amount", amount),
		slog.Int("balance", player.Balance),
	)

	return &BetResult{Bet: player.Bet, Balance: player.Balance}, nil
}

// StartGame deals the opening hands: player, dealer face-up, player,
// dealer face-down. A two-card 21 settles immediately as a natural
// blackjack.
func (e *Engine) StartGame(ctx context.Context, id model.PlayerID) (*StartResult, error) {
	defer e.lockPlayer(id)()

	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if player.GameStarted {
		return nil, model.ErrGameInProgress
	}
	if player.Bet == 0 {
		return nil, model.ErrNoBetPlaced
	}

	player.ClearHands()
	player.HasStood = false

	deck, err := e.loadDeck(ctx, id)
	if err != nil {
		return nil, err
	}
	deck = e.ensureCapacity(deck, startingDeal)

	hand := model.Hand{Bet: player.Bet}
	dealer := &player.DealerHand

	// Strict deal order: player, dealer (face-up), player, dealer
	// (face-down)
	for i := 0; i < startingDeal; i++ {
		card, err := deck.DealTop()
		if err != nil {
			return nil, err
		}
		if i%2 == 0 {
			hand.AddCard(card)
		} else {
			dealer.AddCard(card)
		}
	}

	player.Hands = []model.Hand{hand}
	player.ActiveHand = 0

	result := &StartResult{
		PlayerCards:   cardViews(hand.Cards),
		HandValue:     hand.TotalValue(),
		Bet:           player.Bet,
		DealerFaceUp:  cardViews(dealer.Cards[:1])[0],
		DealerUpValue: dealer.Cards[0].Value,
	}

	if hand.IsBlackjack() {
		result.Settlement = e.settle(player)
	} else {
		player.GameStarted = true
	}

	if err := e.storage.SaveDeck(ctx, id, deck); err != nil {
		return nil, err
	}
	if err := e.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	e.logger.Info("game started",
		slog.String("player_id", string(id)),
		slog.Int("bet", result.Bet),
		slog.Int("hand_value", result.HandValue),
		slog.Bool("natural_blackjack", result.Settlement != nil),
	)

	return result, nil
}

// Hit deals one card to the active hand. Busting the last unfinished
// hand ends the game; with a split hand still to play, play advances to
// it instead.
func (e *Engine) Hit(ctx context.Context, id model.PlayerID) (*HitResult, error) {
	defer e.lockPlayer(id)()

	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if !player.GameStarted {
		return nil, model.ErrGameNotStarted
	}

	deck, err := e.loadDeck(ctx, id)
	if err != nil {
		return nil, err
	}

	hand := player.Hand()

	// A depleted deck makes the hit a no-op rather than an error
	if deck.Remaining() > 0 {
		card, err := deck.DealTop()
		if err != nil {
			return nil, err
		}
		hand.AddCard(card)
	}

	result := &HitResult{
		PlayerCards:  cardViews(hand.Cards),
		PlayerValue:  hand.TotalValue(),
		DealerFaceUp: cardViews(player.DealerHand.Cards[:1])[0],
		Bet:          totalBet(player),
		ActiveHand:   player.ActiveHand,
		Status:       StatusContinue,
	}

	if hand.IsBust() {
		if player.AdvanceHand() {
			result.Status = StatusHandBusted
			result.ActiveHand = player.ActiveHand
		} else {
			result.Status = StatusBust
			result.Settlement = e.playDealerAndSettle(player, deck)
		}
	}

	if err := e.storage.SaveDeck(ctx, id, deck); err != nil {
		return nil, err
	}
	if err := e.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	result.NewBalance = player.Balance
	return result, nil
}

// Stand finishes the active hand. Once every hand is played the dealer
// draws to 17 and the game settles.
func (e *Engine) Stand(ctx context.Context, id model.PlayerID) (*StandResult, error) {
	defer e.lockPlayer(id)()

	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if !player.GameStarted {
		return nil, model.ErrGameNotStarted
	}

	player.Hand().Stood = true

	result := &StandResult{}
	if player.AdvanceHand() {
		result.HandPending = true
		result.ActiveHand = player.ActiveHand

		if err := e.storage.SavePlayer(ctx, player); err != nil {
			return nil, err
		}
		return result, nil
	}

	deck, err := e.loadDeck(ctx, id)
	if err != nil {
		return nil, err
	}

	result.Settlement = e.playDealerAndSettle(player, deck)
	result.ActiveHand = player.ActiveHand

	if err := e.storage.SaveDeck(ctx, id, deck); err != nil {
		return nil, err
	}
	if err := e.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return result, nil
}

// DoubleDown doubles the active hand's bet for exactly one more card,
// then plays the hand as stood
func (e *Engine) DoubleDown(ctx context.Context, id model.PlayerID) (*DoubleDownResult, error) {
	defer e.lockPlayer(id)()

	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if !player.GameStarted {
		return nil, model.ErrGameNotStarted
	}

	hand := player.Hand()
	if hand.Bet > player.Balance {
		return nil, model.ErrInsufficientBalance
	}

	deck, err := e.loadDeck(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Balance -= hand.Bet
	hand.Bet *= 2

	result := &DoubleDownResult{}

	if deck.Remaining() > 0 {
		card, err := deck.DealTop()
		if err != nil {
			return nil, err
		}
		hand.AddCard(card)
		view := CardView{Rank: string(card.Rank), Suit: string(card.Suit)}
		result.Card = &view
	}

	hand.Stood = true

	if player.AdvanceHand() {
		result.HandPending = true
		result.ActiveHand = player.ActiveHand
	} else {
		result.Settlement = e.playDealerAndSettle(player, deck)
		result.ActiveHand = player.ActiveHand
	}

	if err := e.storage.SaveDeck(ctx, id, deck); err != nil {
		return nil, err
	}
	if err := e.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return result, nil
}

// Split turns a two-card pair into two hands, each completed with a
// fresh card and carrying its own bet. Hands are then played in order.
func (e *Engine) Split(ctx context.Context, id model.PlayerID) error {
	defer e.lockPlayer(id)()

	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	if !player.GameStarted {
		return model.ErrGameNotStarted
	}

	// No resplitting
	if len(player.Hands) != 1 {
		return model.ErrCannotSplit
	}

	hand := &player.Hands[0]
	if !hand.IsPair() {
		return model.ErrCannotSplit
	}

	// The second hand needs its own stake
	if hand.Bet > player.Balance {
		return model.ErrInsufficientBalance
	}

	deck, err := e.loadDeck(ctx, id)
	if err != nil {
		return err
	}
	deck = e.ensureCapacity(deck, 2)

	player.Balance -= hand.Bet

	first := model.Hand{Cards: []model.Card{hand.Cards[0]}, Bet: hand.Bet}
	second := model.Hand{Cards: []model.Card{hand.Cards[1]}, Bet: hand.Bet}

	card, err := deck.DealTop()
	if err != nil {
		return err
	}
	first.AddCard(card)

	card, err = deck.DealTop()
	if err != nil {
		return err
	}
	second.AddCard(card)

	player.Hands = []model.Hand{first, second}
	player.ActiveHand = 0

	if err := e.storage.SaveDeck(ctx, id, deck); err != nil {
		return err
	}
	if err := e.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	e.logger.Info("hand split",
		slog.String("player_id", string(id)),
		slog.Int("bet_per_hand", first.Bet),
		slog.Int("balance", player.Balance),
	)

	return nil
}

// ResetGame clears all hands and the bet and regenerates the deck.
// Valid from any state.
func (e *Engine) ResetGame(ctx context.Context, id model.PlayerID) error {
	defer e.lockPlayer(id)()

	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	player.ClearHands()
	player.Bet = 0
	player.GameStarted = false
	player.HasStood = false

	if err := e.storage.SaveDeck(ctx, id, e.freshDeck()); err != nil {
		return err
	}
	if err := e.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	e.logger.Info("game reset", slog.String("player_id", string(id)))
	return nil
}

// GameStatus returns an idempotent snapshot of the player's game
func (e *Engine) GameStatus(ctx context.Context, id model.PlayerID) (*StatusResult, error) {
	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &StatusResult{Balance: player.Balance}

	if !player.GameStarted {
		result.Status = StatusNotInSession
		return result, nil
	}

	result.Status = StatusInProgress
	result.PlayerValue = player.Hand().TotalValue()
	result.DealerValue = e.visibleDealerValue(player)
	return result, nil
}

// HandDetails reports the player's hands and the dealer cards the
// visibility rule currently allows
func (e *Engine) HandDetails(ctx context.Context, id model.PlayerID) (*HandDetailsResult, error) {
	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &HandDetailsResult{
		Bet:        totalBet(player),
		ActiveHand: player.ActiveHand,
	}

	if hand := player.Hand(); hand != nil {
		result.PlayerCards = cardViews(hand.Cards)
		result.HandValue = hand.TotalValue()
	}

	if len(player.Hands) > 1 {
		result.Hands = make([]HandView, len(player.Hands))
		for i := range player.Hands {
			h := &player.Hands[i]
			result.Hands[i] = HandView{
				Cards: cardViews(h.Cards),
				Value: h.TotalValue(),
				Bet:   h.Bet,
			}
		}
	}

	if player.DealerHand.Size() > 0 {
		if player.HasStood {
			result.DealerRevealed = true
			result.DealerCards = cardViews(player.DealerHand.Cards)
			result.DealerValue = player.DealerHand.TotalValue()
		} else {
			result.DealerCards = cardViews(player.DealerHand.Cards[:1])
			result.DealerValue = player.DealerHand.Cards[0].Value
		}
	}

	return result, nil
}

// Balance returns the player's balance
func (e *Engine) Balance(ctx context.Context, id model.PlayerID) (*BalanceResult, error) {
	player, err := e.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BalanceResult{Balance: player.Balance}, nil
}

// visibleDealerValue applies the dealer visibility rule: only the
// face-up card counts until the player has stood or the game settled
func (e *Engine) visibleDealerValue(player *model.Player) int {
	if player.DealerHand.Size() == 0 {
		return 0
	}
	if player.HasStood {
		return player.DealerHand.TotalValue()
	}
	return player.DealerHand.Cards[0].Value
}

// totalBet sums the live wagers across all hands, falling back to the
// staged bet before any deal
func totalBet(player *model.Player) int {
	if len(player.Hands) == 0 {
		return player.Bet
	}
	total := 0
	for i := range player.Hands {
		total += player.Hands[i].Bet
	}
	return total
}
