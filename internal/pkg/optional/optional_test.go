package optional_test

import (
	"testing"
	"time"

	"ristorante/internal/pkg/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	t.Run("some holds the value", func(t *testing.T) {
		o := optional.Some("fattorino")

		assert.True(t, o.IsPresent())
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, "fattorino", v)
	})

	t.Run("none holds nothing", func(t *testing.T) {
		o := optional.None[string]()

		assert.False(t, o.IsPresent())
		_, ok := o.Get()
		assert.False(t, ok)
	})

	t.Run("zero value is absent", func(t *testing.T) {
		var o optional.Optional[int]
		assert.False(t, o.IsPresent())
	})
}

func TestMustGet(t *testing.T) {
	t.Run("returns the present value", func(t *testing.T) {
		when := time.Date(2024, 5, 12, 19, 30, 0, 0, time.UTC)
		o := optional.Some(when)

		assert.Equal(t, when, o.MustGet())
	})

	t.Run("panics when absent", func(t *testing.T) {
		o := optional.None[time.Time]()

		assert.Panics(t, func() { _ = o.MustGet() })
	})
}

func TestPtrConversions(t *testing.T) {
	t.Run("FromPtr of nil is absent", func(t *testing.T) {
		assert.False(t, optional.FromPtr[int](nil).IsPresent())
	})

	t.Run("FromPtr copies the pointed-to value", func(t *testing.T) {
		n := 7
		o := optional.FromPtr(&n)

		n = 99
		require.True(t, o.IsPresent())
		assert.Equal(t, 7, o.MustGet())
	})

	t.Run("ToPtr returns nil when absent", func(t *testing.T) {
		assert.Nil(t, optional.None[int]().ToPtr())
	})

	t.Run("ToPtr does not alias the optional", func(t *testing.T) {
		o := optional.Some(3)
		p := o.ToPtr()
		require.NotNil(t, p)

		*p = 42
		assert.Equal(t, 3, o.MustGet())
	})
}
