package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"roller/internal/rng"
	"roller/internal/stream"
	"roller/internal/viewmodel"
)

// AppModel is the root model. It owns the screen and handles app-level keys
// (quit + teardown); everything else is delegated to the screen.
type AppModel struct {
	Screen *RollerView
	vm     *viewmodel.RandomNumber
}

// NewAppModel assembles the app: the edits stream, the view model wired to
// it, and the screen bound to both.
func NewAppModel(gen rng.Generator, log zerolog.Logger) *AppModel {
	edits := stream.NewEvents[*string]()
	vm := viewmodel.New(gen, edits, log)
	return &AppModel{
		Screen: NewRollerView(vm, edits),
		vm:     vm,
	}
}

// ViewModel returns the view model, for observers wired up at startup.
func (m *AppModel) ViewModel() *viewmodel.RandomNumber {
	return m.vm
}

// AsTeaModel wraps the AppModel for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Screen.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			a.Screen.Close()
			return a, tea.Quit
		}
	}
	v, cmd := a.Screen.Update(msg)
	if s, ok := v.(*RollerView); ok {
		a.Screen = s
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Screen.View()
}
