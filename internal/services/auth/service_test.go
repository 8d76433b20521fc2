package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/efuentes/blackjack-go/internal/dependencies/mocks"
	"github.com/efuentes/blackjack-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreatePlayer() {
	player, session, err := s.service.CreatePlayer(s.ctx, "eben", 100)
	s.Require().NoError(err)

	s.Equal("eben", player.Username)
	s.Equal(100, player.Balance)
	s.True(player.IsGuest)
	s.NotEmpty(session.Token)
	s.Equal(player.ID, session.PlayerID)

	stored, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(100, stored.Balance)
}

func (s *ServiceSuite) TestRegisterAndLogin() {
	player, _, err := s.service.RegisterPlayer(s.ctx, "eben", "secret123", 500)
	s.Require().NoError(err)
	s.False(player.IsGuest)

	loggedIn, session, err := s.service.Login(s.ctx, "eben", "secret123")
	s.Require().NoError(err)
	s.Equal(player.ID, loggedIn.ID)
	s.NotEmpty(session.Token)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	_, _, err := s.service.RegisterPlayer(s.ctx, "eben", "secret123", 100)
	s.Require().NoError(err)

	_, _, err = s.service.RegisterPlayer(s.ctx, "eben", "other", 100)
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, _, err := s.service.RegisterPlayer(s.ctx, "eben", "secret123", 100)
	s.Require().NoError(err)

	_, _, err = s.service.Login(s.ctx, "eben", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownUsername() {
	_, _, err := s.service.Login(s.ctx, "nobody", "pass")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestValidateSession() {
	_, session, err := s.service.CreatePlayer(s.ctx, "eben", 100)
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.PlayerID, validated.PlayerID)
}

func (s *ServiceSuite) TestValidateSessionUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestSessionExpires() {
	_, session, err := s.service.CreatePlayer(s.ctx, "eben", 100)
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	_, session, err := s.service.CreatePlayer(s.ctx, "eben", 100)
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	_, old, err := s.service.CreatePlayer(s.ctx, "old", 100)
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)
	_, fresh, err := s.service.CreatePlayer(s.ctx, "fresh", 100)
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(old.Token)
	s.ErrorIs(err, ErrInvalidSession)
	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
