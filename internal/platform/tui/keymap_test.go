package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmgolubev/starblitz/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left", runeKey('a'), core.ActionLeft, false},
		{"right", runeKey('d'), core.ActionRight, false},
		{"fire", tea.KeyMsg(tea.Key{Type: tea.KeySpace}), core.ActionFire, false},
		{"missile", runeKey('m'), core.ActionMissile, false},
		{"special", runeKey('x'), core.ActionSpecial, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"confirm", tea.KeyMsg(tea.Key{Type: tea.KeyEnter}), core.ActionConfirm, false},
		{"back", tea.KeyMsg(tea.Key{Type: tea.KeyEsc}), core.ActionBack, false},
		{"save", tea.KeyMsg(tea.Key{Type: tea.KeyF5}), core.ActionSave, false},
		{"load", tea.KeyMsg(tea.Key{Type: tea.KeyF9}), core.ActionLoad, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('a'), &frame); quit {
		t.Fatal("movement key reported quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Fatal("frame missing mapped action")
	}

	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Fatal("quit key not reported")
	}
}
