package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roller/internal/stream"
	"roller/internal/viewmodel"
)

// RollerView is the single screen: a text field, a value label, and the
// roll button. It forwards raw field edits into the edits stream, forwards
// Enter into the view model's tap sink, and renders whatever the
// current-value stream says.
type RollerView struct {
	vm    *viewmodel.RandomNumber
	edits *stream.Events[*string]
	input textinput.Model
	label string
	bag   stream.Bag
}

// Ensure RollerView implements View.
var _ View = (*RollerView)(nil)

// NewRollerView creates the screen and establishes its bindings: label and
// field content each track the current-value stream one-way. The edits
// stream is the one supplied to the view model at construction; the view
// keeps ownership of it.
func NewRollerView(vm *viewmodel.RandomNumber, edits *stream.Events[*string]) *RollerView {
	ti := textinput.New()
	ti.Placeholder = "type a number"
	ti.Width = 24
	ti.Focus()

	m := &RollerView{vm: vm, edits: edits, input: ti}

	// Label <- current value.
	m.bag.Add(vm.Current().Watch(func(s string) {
		m.label = s
	}))
	// Field content <- current value. This also re-renders the field when
	// the value changes from either source, including its own input
	// echoed back.
	m.bag.Add(vm.Current().Watch(func(s string) {
		m.input.SetValue(s)
	}))

	return m
}

// Init implements View.
func (m *RollerView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *RollerView) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		m.vm.Taps().Emit(struct{}{})
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.edits.Emit(&after)
	}
	return m, cmd
}

// View implements View.
func (m *RollerView) View() string {
	content := Styles.Title.Render("Random number") + "\n\n"
	content += Styles.Value.Render(m.label) + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Button.Render("[ Roll ]") + "\n\n"
	content += Styles.Hint.Render("enter: roll  esc: quit")
	return Styles.Box.Render(content)
}

// Close tears the screen down: bindings are released, the view model is
// closed, and the edits stream stops delivering. Safe to call once the
// program exits; no callback fires afterwards.
func (m *RollerView) Close() {
	m.bag.Drain()
	m.vm.Close()
	m.edits.Close()
}
