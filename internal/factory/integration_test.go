package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/efuentes/blackjack-go/internal/services/engine"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: complete flow from player creation through a split game.
// The unshuffled test deck deals the four aces first, then the kings,
// so every card below is known in advance.
func (s *IntegrationSuite) TestCompleteGameFlow() {
	// Step 1: Create a guest player with the default balance
	player, session, err := s.app.AuthService.CreatePlayer(s.ctx, "alice", 100)
	s.Require().NoError(err)
	s.Require().NotNil(session)
	s.Equal(100, player.Balance)

	// Step 2: Place a bet
	bet, err := s.app.Engine.PlaceBet(s.ctx, player.ID, 10)
	s.Require().NoError(err)
	s.Equal(10, bet.Bet)
	s.Equal(90, bet.Balance)

	// Step 3: Deal. Player draws ace of clubs and ace of hearts (12),
	// the dealer ace of diamonds up and ace of spades down.
	start, err := s.app.Engine.StartGame(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(12, start.HandValue)
	s.Equal("A", start.DealerFaceUp.Rank)
	s.Nil(start.Settlement)

	// Step 4: Split the pair of aces. Each hand catches a king for 21.
	err = s.app.Engine.Split(s.ctx, player.ID)
	s.Require().NoError(err)

	details, err := s.app.Engine.HandDetails(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Require().Len(details.Hands, 2)
	s.Equal(21, details.Hands[0].Value)
	s.Equal(21, details.Hands[1].Value)

	// Step 5: Stand the first hand; play moves to the second
	stand, err := s.app.Engine.Stand(s.ctx, player.ID)
	s.Require().NoError(err)
	s.True(stand.HandPending)
	s.Equal(1, stand.ActiveHand)

	// Step 6: Stand the second hand. The dealer's soft 12 draws two
	// kings and busts at 22; both hands win even money.
	stand, err = s.app.Engine.Stand(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stand.Settlement)
	s.Equal(22, stand.Settlement.DealerValue)
	s.Require().Len(stand.Settlement.Hands, 2)
	s.Equal(engine.WinnerPlayer, stand.Settlement.Hands[0].Winner)
	s.Equal(engine.WinnerPlayer, stand.Settlement.Hands[1].Winner)
	s.Equal(120, stand.Settlement.NewBalance)

	// Step 7: The finished game is idempotently observable
	status, err := s.app.Engine.GameStatus(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(engine.StatusNotInSession, status.Status)
	s.Equal(120, status.Balance)

	balance, err := s.app.Engine.Balance(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(120, balance.Balance)
}

// Test: a registered account can log back in and keep playing
func (s *IntegrationSuite) TestRegisteredPlayerFlow() {
	player, _, err := s.app.AuthService.RegisterPlayer(s.ctx, "bob", "hunter2", 50)
	s.Require().NoError(err)
	s.False(player.IsGuest)

	loggedIn, session, err := s.app.AuthService.Login(s.ctx, "bob", "hunter2")
	s.Require().NoError(err)
	s.Equal(player.ID, loggedIn.ID)

	validated, err := s.app.AuthService.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(player.ID, validated.PlayerID)

	_, err = s.app.Engine.PlaceBet(s.ctx, player.ID, 25)
	s.Require().NoError(err)

	balance, err := s.app.Engine.Balance(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(25, balance.Balance)
}

// Test: reset abandons a game in progress and regenerates the deck
func (s *IntegrationSuite) TestResetAbandonsGame() {
	player, _, err := s.app.AuthService.CreatePlayer(s.ctx, "carol", 100)
	s.Require().NoError(err)

	_, err = s.app.Engine.PlaceBet(s.ctx, player.ID, 10)
	s.Require().NoError(err)
	_, err = s.app.Engine.StartGame(s.ctx, player.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.app.Engine.ResetGame(s.ctx, player.ID))

	// A new bet and deal work immediately after the reset
	_, err = s.app.Engine.PlaceBet(s.ctx, player.ID, 10)
	s.Require().NoError(err)
	start, err := s.app.Engine.StartGame(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(12, start.HandValue)
}
