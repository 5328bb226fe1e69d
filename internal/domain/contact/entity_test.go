//go:build unit

package contact_test

import (
	"testing"

	"storefront-api/internal/domain/contact"
	"storefront-api/internal/pkg/errs"
	"storefront-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ContactBuilder)
	errIs  error
}

func TestMessage(t *testing.T) {
	t.Run("valid message keeps every field", func(t *testing.T) {
		b := builder.NewContactBuilder()

		actual, err := b.BuildDomain()

		require.NoError(t, err)
		assert.Equal(t, b.Name, actual.Name())
		assert.Equal(t, b.Email, actual.Email())
		assert.Equal(t, b.Subject, actual.Subject())
		assert.Equal(t, b.Message, actual.Body())
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		actual, err := builder.NewContactBuilder().
			With(func(b *builder.ContactBuilder) { b.Name = "  Aziz  " }).
			BuildDomain()

		require.NoError(t, err)
		assert.Equal(t, "Aziz", actual.Name())
	})

	t.Run("required fields", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ContactBuilder) { b.Name = "" },
				errIs:  contact.ErrNameRequired,
			},
			{
				name:   "whitespace email",
				mutate: func(b *builder.ContactBuilder) { b.Email = "   " },
				errIs:  contact.ErrEmailRequired,
			},
			{
				name:   "empty subject",
				mutate: func(b *builder.ContactBuilder) { b.Subject = "" },
				errIs:  contact.ErrSubjectRequired,
			},
			{
				name:   "empty message",
				mutate: func(b *builder.ContactBuilder) { b.Message = "\n\t" },
				errIs:  contact.ErrMessageRequired,
			},
			{
				name: "first missing field wins",
				mutate: func(b *builder.ContactBuilder) {
					b.Name = ""
					b.Message = ""
				},
				errIs: contact.ErrNameRequired,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewContactBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			assert.Nil(t, actual)
			assert.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.IsValidation(err))
		})
	}
}
