//go:build unit

package shared

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure is retried", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock is retried", &pgconn.PgError{Code: "40P01"}, true},
		{"unique violation is not retried", &pgconn.PgError{Code: "23505"}, false},
		{"plain error is not retried", errors.New("boom"), false},
		{"wrapped serialization failure is retried", errors.Join(errors.New("tx"), &pgconn.PgError{Code: "40001"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
