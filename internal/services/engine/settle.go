package engine

import (
	"log/slog"

	"github.com/efuentes/blackjack-go/internal/model"
)

// Settlement messages, one per outcome
const (
	MsgBlackjack  = "Blackjack! Player Wins!"
	MsgPlayerBust = "Player busted!"
	MsgPlayerWins = "Player wins!"
	MsgDealerWins = "Dealer wins."
	MsgPush       = "It's a push!"
)

// playDealerAndSettle runs the dealer's turn and settles every hand.
// The dealer draws to 17 unless all player hands busted, in which case
// the hole card alone decides nothing and drawing is skipped.
func (e *Engine) playDealerAndSettle(player *model.Player, deck *model.Deck) *SettlementResult {
	if !player.AllHandsBust() {
		for player.DealerHand.TotalValue() < dealerStandsAt && deck.Remaining() > 0 {
			card, err := deck.DealTop()
			if err != nil {
				break
			}
			player.DealerHand.AddCard(card)
		}
	}
	return e.settle(player)
}

// settle pays out each hand against the dealer and closes the game.
// A natural blackjack, only possible on the undealt-from single hand,
// pays 3:2 rounded half up; a regular win pays even money; a push
// returns the stake.
func (e *Engine) settle(player *model.Player) *SettlementResult {
	// StartGame settles a natural before flagging the game as started
	natural := !player.GameStarted

	dealerValue := player.DealerHand.TotalValue()
	dealerBust := player.DealerHand.IsBust()

	result := &SettlementResult{
		DealerValue: dealerValue,
		DealerHand:  cardViews(player.DealerHand.Cards),
		Hands:       make([]HandOutcome, len(player.Hands)),
	}

	totalStaked, totalWon := 0, 0

	for i := range player.Hands {
		hand := &player.Hands[i]
		outcome := e.settleHand(player, hand, dealerValue, dealerBust, natural)
		result.Hands[i] = outcome
		totalStaked += hand.Bet
		totalWon += outcome.Winnings
	}

	// Top-level fields mirror the single hand; after a split they
	// aggregate across hands
	if len(player.Hands) == 1 {
		only := result.Hands[0]
		result.PlayerValue = only.Value
		result.PlayerHand = only.Cards
		result.Winner = only.Winner
		result.Message = only.Message
		result.BetAmount = only.Bet
		result.Winnings = only.Winnings
	} else {
		result.PlayerValue = bestHandValue(player)
		if active := player.Hand(); active != nil {
			result.PlayerHand = cardViews(active.Cards)
		}
		result.BetAmount = totalStaked
		result.Winnings = totalWon
		switch {
		case totalWon > 0:
			result.Winner = WinnerPlayer
			result.Message = MsgPlayerWins
		case totalWon < 0:
			result.Winner = WinnerDealer
			result.Message = MsgDealerWins
		default:
			result.Winner = WinnerTie
			result.Message = MsgPush
		}
	}

	player.Bet = 0
	player.GameStarted = false
	player.HasStood = true
	result.NewBalance = player.Balance

	e.logger.Info("game settled",
		slog.String("player_id", string(player.ID)),
		slog.String("winner", string(result.Winner)),
		slog.Int("winnings", result.Winnings),
		slog.Int("balance", player.Balance),
	)

	return result
}

// settleHand resolves one hand against the dealer, crediting the
// player's balance as it goes. Winnings is the net profit on the hand's
// stake.
func (e *Engine) settleHand(player *model.Player, hand *model.Hand, dealerValue int, dealerBust, natural bool) HandOutcome {
	outcome := HandOutcome{
		Cards: cardViews(hand.Cards),
		Value: hand.TotalValue(),
		Bet:   hand.Bet,
	}

	switch {
	case natural && hand.IsBlackjack():
		// 3:2 payout, rounded half up on odd stakes
		bonus := (3*hand.Bet + 1) / 2
		player.Balance += hand.Bet + bonus
		outcome.Winner = WinnerPlayer
		outcome.Winnings = bonus
		outcome.Message = MsgBlackjack

	case hand.IsBust():
		outcome.Winner = WinnerDealer
		outcome.Winnings = -hand.Bet
		outcome.Message = MsgPlayerBust

	case dealerBust || outcome.Value > dealerValue:
		player.Balance += 2 * hand.Bet
		outcome.Winner = WinnerPlayer
		outcome.Winnings = hand.Bet
		outcome.Message = MsgPlayerWins

	case outcome.Value < dealerValue:
		outcome.Winner = WinnerDealer
		outcome.Winnings = -hand.Bet
		outcome.Message = MsgDealerWins

	default:
		player.Balance += hand.Bet
		outcome.Winner = WinnerTie
		outcome.Message = MsgPush
	}

	return outcome
}

// bestHandValue picks the highest non-busting value across a split,
// falling back to the lowest bust
func bestHandValue(player *model.Player) int {
	best, bestBust := 0, 0
	for i := range player.Hands {
		v := player.Hands[i].TotalValue()
		if v <= model.BlackjackTarget {
			if v > best {
				best = v
			}
		} else if bestBust == 0 || v < bestBust {
			bestBust = v
		}
	}
	if best > 0 {
		return best
	}
	return bestBust
}
