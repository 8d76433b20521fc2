package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/efuentes/blackjack-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GuestPlayerTTL = time.Hour
	cfg.DeckTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "p_1",
		Username:  "eben",
		Balance:   100,
		CreatedAt: time.Now().UTC(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "p_1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(100, retrieved.Balance)
}

func (s *StorageSuite) TestPlayerRoundTripsGameState() {
	player := &model.Player{
		ID:          "p_1",
		Username:    "eben",
		Balance:     90,
		Bet:         10,
		GameStarted: true,
		Hands: []model.Hand{
			{Cards: []model.Card{model.NewCard("5", model.Spades), model.NewCard("6", model.Hearts)}, Bet: 10},
		},
		DealerHand: model.Hand{Cards: []model.Card{model.NewCard("9", model.Clubs), model.NewCard("K", model.Diamonds)}},
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "p_1")
	s.Require().NoError(err)
	s.True(retrieved.GameStarted)
	s.Require().Len(retrieved.Hands, 1)
	s.Equal(11, retrieved.Hands[0].TotalValue())
	s.Equal(10, retrieved.Hands[0].Bet)
	s.Equal(2, retrieved.DealerHand.Size())
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p_1", Username: "eben"})

	err := s.storage.DeletePlayer(s.ctx, "p_1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "p_1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGuestPlayerHasTTL() {
	player := &model.Player{ID: "p_1", Username: "guest", IsGuest: true}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	ttl := s.mini.TTL(playerKey("p_1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestRegisteredPlayerHasNoTTL() {
	player := &model.Player{ID: "p_1", Username: "eben"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	ttl := s.mini.TTL(playerKey("p_1"))
	s.Equal(time.Duration(0), ttl)
}

// Registered player tests

func (s *StorageSuite) TestRegisteredPlayerUsernameIndex() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "p_1",
		Username:     "eben",
		PasswordHash: "hash",
	}

	s.Require().NoError(s.storage.SaveRegisteredPlayer(s.ctx, rp))

	byID, err := s.storage.GetRegisteredPlayer(s.ctx, "p_1")
	s.Require().NoError(err)
	s.Equal("eben", byID.Username)

	byName, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "eben")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p_1"), byName.PlayerID)
}

func (s *StorageSuite) TestGetRegisteredPlayerByUsernameNotFound() {
	_, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Deck tests

func (s *StorageSuite) TestSaveAndGetDeck() {
	deck := model.NewDeck()
	s.Require().NoError(s.storage.SaveDeck(s.ctx, "p_1", deck))

	retrieved, err := s.storage.GetDeck(s.ctx, "p_1")
	s.Require().NoError(err)
	s.Equal(model.DeckSize, retrieved.Remaining())
	s.Equal(deck.Cards, retrieved.Cards)
}

func (s *StorageSuite) TestDeckPreservesOrderAfterDeals() {
	deck := model.NewDeck()
	_, err := deck.DealTop()
	s.Require().NoError(err)
	_, err = deck.DealTop()
	s.Require().NoError(err)

	s.Require().NoError(s.storage.SaveDeck(s.ctx, "p_1", deck))

	retrieved, err := s.storage.GetDeck(s.ctx, "p_1")
	s.Require().NoError(err)
	s.Equal(model.DeckSize-2, retrieved.Remaining())
	s.Equal(deck.Cards, retrieved.Cards)
}

func (s *StorageSuite) TestGetDeckNotFound() {
	_, err := s.storage.GetDeck(s.ctx, "p_1")
	s.ErrorIs(err, model.ErrDeckNotFound)
}

func (s *StorageSuite) TestDeleteDeck() {
	s.Require().NoError(s.storage.SaveDeck(s.ctx, "p_1", model.NewDeck()))
	s.Require().NoError(s.storage.DeleteDeck(s.ctx, "p_1"))

	_, err := s.storage.GetDeck(s.ctx, "p_1")
	s.ErrorIs(err, model.ErrDeckNotFound)
}
