package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseNoOptions(t *testing.T) {
	_, err := Choose("pick", nil)
	assert.Error(t, err)
}

func TestModelSelect(t *testing.T) {
	m := newModel("pick", []string{"bin/app", "bin/tool"})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := updated.(model)
	require.True(t, ok)

	assert.True(t, got.done)
	assert.Equal(t, "bin/app", got.choice)
}

func TestModelSelectSecond(t *testing.T) {
	m := newModel("pick", []string{"bin/app", "bin/tool"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, _ := next.(model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(model)

	assert.Equal(t, "bin/tool", got.choice)
}

func TestModelCancel(t *testing.T) {
	m := newModel("pick", []string{"bin/app"})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	got := updated.(model)

	assert.True(t, got.done)
	assert.Empty(t, got.choice)
}

func TestModelViewAfterDone(t *testing.T) {
	m := newModel("pick", []string{"bin/app"})
	m.done = true
	assert.Empty(t, m.View())
}
