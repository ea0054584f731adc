package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDubberRefFromForm(t *testing.T) {
	t.Run("absent field keeps the reference", func(t *testing.T) {
		r := DubberRefFromForm(nil)

		assert.True(t, r.IsNoChange())
		assert.False(t, r.IsClear())
		_, ok := r.Name()
		assert.False(t, ok)
	})

	t.Run("empty string clears the reference", func(t *testing.T) {
		empty := ""
		r := DubberRefFromForm(&empty)

		assert.True(t, r.IsClear())
		assert.False(t, r.IsNoChange())
	})

	t.Run("value resolves to a name", func(t *testing.T) {
		name := "LostFilm"
		r := DubberRefFromForm(&name)

		assert.False(t, r.IsNoChange())
		assert.False(t, r.IsClear())
		got, ok := r.Name()
		assert.True(t, ok)
		assert.Equal(t, "LostFilm", got)
	})
}
