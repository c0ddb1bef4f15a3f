package usecase

import (
	"context"
	"testing"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/dto/request"
	"cinema-chain/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memUsers struct {
	users map[uuid.UUID]*entity.User
}

func (m *memUsers) Create(ctx context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memUsers) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.users[id], nil
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(ctx context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

type memSessions struct {
	sessions map[string]*entity.Session
}

func (m *memSessions) Create(ctx context.Context, session *entity.Session) error {
	m.sessions[session.Token.String()] = session
	return nil
}

func (m *memSessions) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	s, ok := m.sessions[token]
	if !ok || s.RevokedAt != nil {
		return nil, nil
	}
	return s, nil
}

func (m *memSessions) Revoke(ctx context.Context, token string) error {
	if s, ok := m.sessions[token]; ok {
		now := s.ExpiresAt
		s.RevokedAt = &now
	}
	return nil
}

func newAuthFixture() (AuthService, *memUsers, *memSessions) {
	users := &memUsers{users: make(map[uuid.UUID]*entity.User)}
	sessions := &memSessions{sessions: make(map[string]*entity.Session)}
	repo := &repository.Repository{User: users, Session: sessions}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}

	return NewAuthService(repo, config, zap.NewNop()), users, sessions
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Silva",
		Password:  "correct horse battery",
	}
}

func TestRegisterCreatesCustomer(t *testing.T) {
	svc, users, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleCustomer), user.Role)
	assert.Nil(t, user.CinemaID)

	stored, err := users.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	// Stored hash, not the password itself.
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("correct horse battery", stored.PasswordHash))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	req := registerReq()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoginIssuesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	auth, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct horse battery",
	}, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)

	session, err := sessions.FindValidSession(context.Background(), auth.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong password",
	}, "", "")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1234",
	}, "", "")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	auth, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct horse battery",
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), auth.Token))

	session, err := sessions.FindValidSession(context.Background(), auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	// Logging out twice is harmless.
	require.NoError(t, svc.Logout(context.Background(), auth.Token))
}
