package office_test

import (
	"testing"

	"logitrack/internal/core/domain/model/office"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffice(t *testing.T) {
	t.Run("trims fields and upper-cases the code", func(t *testing.T) {
		o, err := office.NewOffice(" off_1 ", "Central Hub NY", "New York", "nyc")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "off_1", o.ID())
		assert.Equal(t, "Central Hub NY", o.Name())
		assert.Equal(t, "New York", o.City())
		assert.Equal(t, "NYC", o.Code())
	})

	t.Run("requires every field", func(t *testing.T) {
		_, err := office.NewOffice("", "", "", "")

		require.Error(t, err)
		for _, field := range []string{"officeId", "name", "city", "code"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o office.Office
		require.ErrorIs(t, o.Validate(), office.ErrOfficeIsNotConstructed)
	})
}
