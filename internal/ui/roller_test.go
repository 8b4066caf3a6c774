package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"roller/internal/rng"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(adapter tea.Model, s string) tea.Model {
	for _, r := range s {
		adapter, _ = adapter.Update(runeMsg(r))
	}
	return adapter
}

func TestTypingUpdatesLabelAndValue(t *testing.T) {
	app := NewAppModel(&rng.Stub{}, zerolog.Nop())
	adapter := app.AsTeaModel()

	typeString(adapter, "42")

	if got := app.ViewModel().Current().Get(); got != "42" {
		t.Errorf("current value = %q, want 42", got)
	}
	if app.Screen.label != "42" {
		t.Errorf("label = %q, want 42", app.Screen.label)
	}
	if !strings.Contains(adapter.View(), "42") {
		t.Error("rendered view should contain the typed value")
	}
}

func TestEnterRollsAndReflectsIntoField(t *testing.T) {
	app := NewAppModel(&rng.Stub{Values: []int{7}}, zerolog.Nop())
	adapter := app.AsTeaModel()

	adapter.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := app.ViewModel().Current().Get(); got != "7" {
		t.Errorf("current value = %q, want 7", got)
	}
	// The generated value is written back into the text field.
	if got := app.Screen.input.Value(); got != "7" {
		t.Errorf("field content = %q, want 7", got)
	}
	if app.Screen.label != "7" {
		t.Errorf("label = %q, want 7", app.Screen.label)
	}
}

func TestTypedInputSurvivesEmptyField(t *testing.T) {
	app := NewAppModel(&rng.Stub{}, zerolog.Nop())
	adapter := app.AsTeaModel()

	typeString(adapter, "9")
	adapter.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	// Deleting back to empty emits "" on the edits stream, which the view
	// model ignores; the label keeps the last accepted value.
	if app.Screen.input.Value() != "" {
		t.Errorf("field content = %q, want empty", app.Screen.input.Value())
	}
	if app.Screen.label != "9" {
		t.Errorf("label = %q, want 9", app.Screen.label)
	}
}

func TestEscTearsDown(t *testing.T) {
	app := NewAppModel(&rng.Stub{Values: []int{7}}, zerolog.Nop())
	adapter := app.AsTeaModel()

	typeString(adapter, "5")
	_, cmd := adapter.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should produce a quit command")
	}

	// After teardown, neither typing nor tapping reaches the value stream.
	typeString(adapter, "6")
	adapter.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := app.ViewModel().Current().Get(); got != "5" {
		t.Errorf("current value = %q, want 5 (no writes after teardown)", got)
	}
}

func TestViewRendersControls(t *testing.T) {
	app := NewAppModel(&rng.Stub{}, zerolog.Nop())
	out := app.AsTeaModel().View()

	for _, want := range []string{"Random number", "[ Roll ]", "enter: roll"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
