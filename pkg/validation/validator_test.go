package validation

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

type nullFieldsPayload struct {
	Name  null.String `validate:"omitempty,min=3"`
	Count null.Int    `validate:"omitempty,min=1"`
	Flag  null.Bool   `validate:"omitempty"`
}

func TestValidate_SkipsUnsetNullFields(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(nullFieldsPayload{}))
}

func TestValidate_ChecksSetNullFields(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(nullFieldsPayload{
		Name:  null.StringFrom("abc"),
		Count: null.IntFrom(5),
		Flag:  null.BoolFrom(false),
	}))

	assert.Error(t, v.Validate(nullFieldsPayload{Name: null.StringFrom("ab")}))
}
