package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabsOrder(t *testing.T) {
	assert.Equal(t, []Tab{TabHome, TabWorkout, TabMembership, TabShop, TabProfile}, Tabs())

	got := Tabs()
	got[0] = TabShop
	assert.Equal(t, TabHome, Tabs()[0])
}

func TestParseTab(t *testing.T) {
	for _, in := range []string{"shop", "Shop", " SHOP ", "🛒 Shop"} {
		tab, err := ParseTab(in)
		require.NoError(t, err, in)
		assert.Equal(t, TabShop, tab)
	}

	_, err := ParseTab("settings")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestShellSelect(t *testing.T) {
	s := NewShell("")
	assert.Equal(t, RootRoute, s.Route())
	assert.False(t, s.HeaderShown())
	assert.Equal(t, TabHome, s.Active())

	require.NoError(t, s.Select(TabProfile))
	assert.Equal(t, TabProfile, s.Active())

	err := s.Select(Tab("cart"))
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, TabProfile, s.Active())
}

func TestShellCycle(t *testing.T) {
	s := NewShell(TabProfile)
	assert.Equal(t, TabHome, s.Next())
	assert.Equal(t, TabProfile, s.Prev())
	assert.Equal(t, TabShop, s.Prev())
}
