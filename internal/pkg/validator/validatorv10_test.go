package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV10Validator_Validate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	type input struct {
		FullName string `validate:"required,alphaspace"`
		Age      int32  `validate:"gte=0,lte=40"`
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(input{FullName: "Mozart the Cat", Age: 4}))
	})

	t.Run("invalid fields are keyed in snake case", func(t *testing.T) {
		err := v.Validate(input{FullName: "M0zart", Age: 41})

		var verr V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "FullName can contain only letters and spaces", verr.Values()["full_name"])
		assert.Contains(t, verr.Values(), "age")
	})
}

func TestV10Validator_ValidateVar(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateVar("name", "mozart", "alpha"))
	})

	t.Run("message is prefixed with the field", func(t *testing.T) {
		err := v.ValidateVar("name", "m0zart", "alpha")

		var verr V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{"name": "name can only contain alphabetic characters"}, verr.Values())
	})

	t.Run("first failing tag wins", func(t *testing.T) {
		err := v.ValidateVar("id", "", "required,uuid4")

		var verr V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Values(), 1)
		assert.Equal(t, "id is a required field", verr.Values()["id"])
	})

	t.Run("custom tag", func(t *testing.T) {
		assert.NoError(t, v.ValidateVar("name", "Tom Cat", "alphaspace"))
		assert.Error(t, v.ValidateVar("name", "Tom_Cat", "alphaspace"))
	})
}
