package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUsers keeps accounts keyed by lowered email.
type memoryUsers struct {
	byEmail map[string]*User
	nextID  int64
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*User)}
}

func (m *memoryUsers) Create(_ context.Context, u *User) error {
	m.nextID++
	u.ID = m.nextID
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *memoryUsers) GetByID(_ context.Context, id int64) (*User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type staticIssuer struct{}

func (staticIssuer) GenerateToken(int64, string, string) (string, error) {
	return "token-123", nil
}

func TestCreateUserAndLogin(t *testing.T) {
	svc := NewService(newMemoryUsers(), staticIssuer{})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Admin@Lazer.com", "s3cret", "Administrator", RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin@lazer.com", user.Email)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	result, err := svc.Login(ctx, "admin@lazer.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "token-123", result.AccessToken)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newMemoryUsers(), staticIssuer{})
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin@lazer.com", "s3cret", "Administrator", RoleSuperAdmin)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin@lazer.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newMemoryUsers(), staticIssuer{})

	_, err := svc.Login(context.Background(), "nobody@lazer.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewService(newMemoryUsers(), staticIssuer{})
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin@lazer.com", "s3cret", "Administrator", RoleSuperAdmin)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "admin@lazer.com", "other", "Clone", RoleSalesStaff)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}
