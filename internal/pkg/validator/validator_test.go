package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewForm struct {
	HouseID int64  `validate:"required"`
	Rating  int    `validate:"required,min=1,max=5"`
	Comment string `validate:"max=2000"`
}

func TestValidate_Passes(t *testing.T) {
	assert.Nil(t, Validate(&reviewForm{HouseID: 1, Rating: 5}))
}

func TestValidate_ReportsFailedRulePerField(t *testing.T) {
	fields := Validate(&reviewForm{Rating: 9})

	require.NotNil(t, fields)
	assert.Equal(t, "required", fields["HouseID"])
	assert.Equal(t, "max", fields["Rating"])
	assert.NotContains(t, fields, "Comment")
}
