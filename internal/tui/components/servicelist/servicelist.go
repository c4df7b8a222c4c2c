package servicelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"fitbook/internal/models"
)

// BookServiceMsg asks the root model to open the booking form for a service
type BookServiceMsg struct {
	Service models.Service
}

// ViewServiceMsg asks the root model to show the service detail screen
type ViewServiceMsg struct {
	Service models.Service
}

// RefreshMsg asks the root model to re-fetch the catalog
type RefreshMsg struct{}

type Item struct {
	Service models.Service
}

func (i Item) Title() string { return i.Service.Name }
func (i Item) Description() string {
	return fmt.Sprintf("%s | ₹%.0f", i.Service.Duration, i.Service.Price)
}
func (i Item) FilterValue() string { return i.Service.Name }

type KeyMap struct {
	Book    key.Binding
	View    key.Binding
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Book: key.NewBinding(
			key.WithKeys("b", "enter"),
			key.WithHelp("b/enter", "book"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "details"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "refresh"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(services []models.Service, width, height int) Model {
	items := make([]list.Item, len(services))
	for i, s := range services {
		items[i] = Item{Service: s}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Services"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally by the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Book, keys.View, keys.Refresh}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Book, keys.View, keys.Refresh}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetServices(services []models.Service) {
	items := make([]list.Item, len(services))
	for i, s := range services {
		items[i] = Item{Service: s}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Book):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return BookServiceMsg{Service: i.Service} }
			}
		case key.Matches(msg, m.keys.View):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ViewServiceMsg{Service: i.Service} }
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No services available.\n  Press 'g' to refresh."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the embedded list is capturing keys for its filter
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
