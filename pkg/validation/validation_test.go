package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name    string   `json:"name" validate:"required"`
	Percent *float64 `json:"percent,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type request struct {
	BillID int64  `json:"bill_id" validate:"required,gt=0"`
	Items  []item `json:"items" validate:"required,min=1,dive"`
}

func TestStruct(t *testing.T) {
	half := 0.5
	tooMuch := 1.5

	t.Run("valid request", func(t *testing.T) {
		err := Struct(&request{BillID: 1, Items: []item{{Name: "a", Percent: &half}}})
		assert.NoError(t, err)
	})

	t.Run("reports json field paths", func(t *testing.T) {
		err := Struct(&request{Items: []item{{Name: "", Percent: &tooMuch}}})
		require.Error(t, err)

		var verr *Error
		require.True(t, errors.As(err, &verr))
		fields := map[string]string{}
		for _, f := range verr.Fields {
			fields[f.Field] = f.Rule
		}
		assert.Equal(t, "required", fields["bill_id"])
		assert.Equal(t, "required", fields["items[0].name"])
		assert.Equal(t, "lte", fields["items[0].percent"])
		assert.Contains(t, verr.Error(), "items[0].percent: must satisfy lte=1")
	})

	t.Run("empty list", func(t *testing.T) {
		err := Struct(&request{BillID: 1, Items: []item{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "items: must satisfy min=1")
	})
}
