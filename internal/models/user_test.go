package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "valid user",
			user: User{Email: "test@example.com", DisplayName: "Khan Household"},
		},
		{
			name:    "invalid email",
			user:    User{Email: "invalid-email", DisplayName: "Khan Household"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty email",
			user:    User{DisplayName: "Khan Household"},
			wantErr: ErrEmailRequired,
		},
		{
			name:    "blank display name",
			user:    User{Email: "test@example.com", DisplayName: "   "},
			wantErr: ErrDisplayNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUser_LockAfterFailedLogins(t *testing.T) {
	u := &User{}
	for i := 0; i < MaxFailedLoginAttempts-1; i++ {
		u.RecordFailedLogin()
	}
	assert.False(t, u.IsLocked())

	u.RecordFailedLogin()
	assert.True(t, u.IsLocked())

	u.RecordLogin()
	assert.Equal(t, 0, u.FailedLoginAttempts)
	assert.NotNil(t, u.LastLoginAt)
}
