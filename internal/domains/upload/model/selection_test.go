package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSheetSelectionSelectsEverything(t *testing.T) {
	sheets := []string{"Jan", "Feb", "Mar"}
	sel := NewSheetSelection(sheets)

	assert.Equal(t, 3, sel.Len())
	assert.Equal(t, []string{"Feb", "Jan", "Mar"}, sel.Names())
	for _, name := range sheets {
		assert.True(t, sel.Has(name))
	}
}

func TestToggleFlipsMembership(t *testing.T) {
	sel := NewSheetSelection([]string{"Jan", "Feb"})

	sel.Toggle("Jan")
	assert.False(t, sel.Has("Jan"))
	assert.True(t, sel.Has("Feb"))

	sel.Toggle("Jan")
	assert.True(t, sel.Has("Jan"))
	assert.Equal(t, 2, sel.Len())
}

func TestDoubleToggleRestoresPriorState(t *testing.T) {
	sel := NewSheetSelection([]string{"Jan", "Feb", "Mar"})
	before := sel.Names()

	sel.Toggle("Feb")
	sel.Toggle("Feb")

	assert.Equal(t, before, sel.Names())
}

func TestClearAllAndSelectAll(t *testing.T) {
	sheets := []string{"Jan", "Feb", "Mar"}
	sel := NewSheetSelection(sheets)

	sel.ClearAll()
	assert.Equal(t, 0, sel.Len())
	assert.Empty(t, sel.Names())

	sel.SelectAll(sheets)
	assert.Equal(t, 3, sel.Len())
}

func TestEmptySelectionNames(t *testing.T) {
	sel := NewSheetSelection(nil)
	assert.Equal(t, 0, sel.Len())
	assert.Empty(t, sel.Names())
}
