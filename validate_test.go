package markterm_test

import (
	"testing"

	"github.com/fwojciec/markterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	t.Run("path only is valid", func(t *testing.T) {
		t.Parallel()
		o := markterm.Options{Path: "README.md", Theme: markterm.DefaultTheme}
		assert.NoError(t, o.Validate())
	})

	t.Run("positive wrap is valid", func(t *testing.T) {
		t.Parallel()
		o := markterm.Options{Path: "README.md", Wrap: intPtr(100)}
		assert.NoError(t, o.Validate())
	})

	t.Run("wrap of one is valid", func(t *testing.T) {
		t.Parallel()
		o := markterm.Options{Path: "README.md", Wrap: intPtr(1)}
		assert.NoError(t, o.Validate())
	})

	t.Run("zero wrap is rejected", func(t *testing.T) {
		t.Parallel()
		o := markterm.Options{Path: "README.md", Wrap: intPtr(0)}
		err := o.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, markterm.ErrValidation)
		assert.Contains(t, err.Error(), "--wrap must be a positive integer")
	})

	t.Run("negative wrap is rejected", func(t *testing.T) {
		t.Parallel()
		o := markterm.Options{Path: "README.md", Wrap: intPtr(-10)}
		err := o.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, markterm.ErrValidation)
		assert.Contains(t, err.Error(), "got -10")
	})

	t.Run("missing path is rejected", func(t *testing.T) {
		t.Parallel()
		err := markterm.Options{}.Validate()
		assert.ErrorIs(t, err, markterm.ErrValidation)
	})

	t.Run("unknown theme is passed through", func(t *testing.T) {
		t.Parallel()
		o := markterm.Options{Path: "README.md", Theme: "no-such-theme"}
		assert.NoError(t, o.Validate())
	})
}

func TestOptions_WrapWidth(t *testing.T) {
	t.Parallel()

	t.Run("explicit wrap wins over fallback", func(t *testing.T) {
		t.Parallel()
		o := markterm.Options{Wrap: intPtr(80)}
		assert.Equal(t, 80, o.WrapWidth(132))
	})

	t.Run("unset wrap defers to fallback", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 132, markterm.Options{}.WrapWidth(132))
	})

	t.Run("unusable fallback uses default width", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, markterm.DefaultWidth, markterm.Options{}.WrapWidth(0))
	})
}
