//go:build unit

package customer_test

import (
	"testing"

	"rentafleet/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		ident, err := customer.NewIdentity(
			" Ana ", "Gomez", "ana@example.com", "+507 600-0000", "Casco Viejo", " 8-123-456 ", nil,
		)
		require.NoError(t, err)

		assert.Equal(t, "Ana", ident.FirstName)
		assert.Equal(t, "ana@example.com", ident.Email.Value())
		assert.Equal(t, "8-123-456", ident.NationalID.Value())
	})

	tests := []struct {
		name       string
		email      string
		nationalID string
		errIs      error
	}{
		{name: "空メールNG", email: "", nationalID: "123", errIs: customer.ErrInvalidEmail},
		{name: "形式不正メールNG", email: "not-an-email", nationalID: "123", errIs: customer.ErrInvalidEmail},
		{name: "空の身分証番号NG", email: "a@b.com", nationalID: "  ", errIs: customer.ErrMissingNationalID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := customer.NewIdentity("A", "B", tt.email, "", "", tt.nationalID, nil)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
