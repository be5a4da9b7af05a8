//go:build unit

package user_test

import (
	"testing"

	"taller-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "cliente@example.com", want: "cliente@example.com"},
		{name: "plus addressing", input: "cliente+taller@example.com", want: "cliente+taller@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  cliente@example.com  ", want: "cliente@example.com"},
		{name: "missing at sign", input: "cliente.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "cliente@", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "cliente@example", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestPassword(t *testing.T) {
	t.Run("eight characters is the minimum", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

		p, err := user.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})
}

func TestPlate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "legacy format", input: "ABC123", want: "ABC123"},
		{name: "mercosur format", input: "AB123CD", want: "AB123CD"},
		{name: "lowercase is normalized", input: "ab123cd", want: "AB123CD"},
		{name: "inner spaces are stripped", input: "AB 123 CD", want: "AB123CD"},
		{name: "legacy with spaces", input: " abc 123 ", want: "ABC123"},
		{name: "too short", input: "AB123", errIs: user.ErrInvalidPlate},
		{name: "too long", input: "ABC1234", errIs: user.ErrInvalidPlate},
		{name: "wrong segment order", input: "123ABC", errIs: user.ErrInvalidPlate},
		{name: "empty", input: "", errIs: user.ErrInvalidPlate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plate, err := user.NewPlate(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, plate.Value())
		})
	}
}

func TestRole(t *testing.T) {
	for _, valid := range []string{"cliente", "negocio"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	for _, invalid := range []string{"", "admin", "Cliente", "NEGOCIO"} {
		_, err := user.NewRole(invalid)
		assert.ErrorIs(t, err, user.ErrInvalidRole, invalid)
	}
}
