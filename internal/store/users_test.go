package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image_gallery/internal/domain"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	created, err := users.Register("alice", "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.NotEqual(t, "correct horse", created.Password, "plaintext must never be stored")

	got, err := users.Authenticate("alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	_, err := users.Register("alice", "alice@example.com", "password1")
	require.NoError(t, err)

	_, err = users.Register("alice2", "alice@example.com", "password2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count, "no duplicate row may be created")
}

func TestAuthenticateFailures(t *testing.T) {
	users := NewUserStore(newTestDB(t))
	_, err := users.Register("alice", "alice@example.com", "password1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@example.com", "password2"},
		{"unknown email", "bob@example.com", "password1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := users.Authenticate(tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestFindByID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	created := mustUser(t, db, "alice", domain.RoleUser)

	got, err := users.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = users.FindByID(created.ID + 1000)
	assert.ErrorIs(t, err, ErrNotFound)
}
