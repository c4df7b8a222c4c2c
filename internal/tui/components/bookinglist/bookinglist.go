package bookinglist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"fitbook/internal/models"
)

// DeleteBookingMsg asks the root model to confirm deletion of a booking
type DeleteBookingMsg struct {
	ID string
}

// ReloadMsg asks the root model to re-hydrate bookings from storage
type ReloadMsg struct{}

type Item struct {
	Booking models.Booking
}

func (i Item) Title() string { return i.Booking.ServiceName }
func (i Item) Description() string {
	desc := fmt.Sprintf("%s at %s", i.Booking.Date, i.Booking.Time)
	if i.Booking.Notes != "" {
		desc += " | " + i.Booking.Notes
	}
	return desc
}
func (i Item) FilterValue() string { return i.Booking.ServiceName }

type KeyMap struct {
	Delete key.Binding
	Reload key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "cancel booking"),
		),
		Reload: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "reload"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(bookings []models.Booking, width, height int) Model {
	l := list.New(toItems(bookings), list.NewDefaultDelegate(), width, height)
	l.Title = "My Bookings"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete, keys.Reload}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete, keys.Reload}
	}

	return Model{list: l, keys: keys}
}

func toItems(bookings []models.Booking) []list.Item {
	items := make([]list.Item, len(bookings))
	for i, b := range bookings {
		items[i] = Item{Booking: b}
	}
	return items
}

func (m *Model) SetBookings(bookings []models.Booking) {
	m.list.SetItems(toItems(bookings))
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
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteBookingMsg{ID: i.Booking.ID} }
			}
		case key.Matches(msg, m.keys.Reload):
			return m, func() tea.Msg { return ReloadMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No bookings yet.\n  Book a service from the Services tab."
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
