package services

import (
	"errors"
	"testing"

	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyLogin(t *testing.T) {
	hash, err := auth.HashPassword("right-pass")
	require.NoError(t, err)
	lookupFailure := errors.New("connection reset")

	tests := []struct {
		name      string
		lookupErr error
		hash      string
		password  string
		want      error
	}{
		{name: "match", hash: hash, password: "right-pass"},
		{name: "wrong password", hash: hash, password: "wrong", want: apperrors.ErrInvalidCredentials},
		{name: "unknown account", lookupErr: apperrors.ErrSchoolNotFound, password: "right-pass", want: apperrors.ErrInvalidCredentials},
		{name: "unknown account empty password", lookupErr: apperrors.ErrStudentNotFound, want: apperrors.ErrInvalidCredentials},
		{name: "lookup failure", lookupErr: lookupFailure, password: "right-pass", want: lookupFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verifyLogin(tt.lookupErr, tt.hash, tt.password))
		})
	}
}

func TestUnknownAccountHashIsRealBcrypt(t *testing.T) {
	hash := unknownAccountHash()

	require.NotEmpty(t, hash)
	assert.Equal(t, hash, unknownAccountHash())
	assert.True(t, auth.CheckPassword(hash, "karmachari-unknown-account"))
	assert.False(t, auth.CheckPassword(hash, "right-pass"))
}
