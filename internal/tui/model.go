package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"fitbook/internal/auth"
	"fitbook/internal/constants"
	"fitbook/internal/models"
	"fitbook/internal/store"
	"fitbook/internal/tui/components/bookinglist"
	"fitbook/internal/tui/components/servicelist"
	"fitbook/internal/utils"
)

type Model struct {
	app      *store.Store
	verifier auth.Verifier

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	serviceList servicelist.Model
	bookingList bookinglist.Model

	form        *huh.Form
	loginForm   *LoginFormModel
	bookingForm *BookingFormModel

	selectedService models.Service
	bookingToDelete string

	loginError string
	formError  string // generic alert shown when a booking submit fails
	loadError  string // generic alert shown when hydration fails
	refreshing bool

	quitting bool
	width    int
	height   int
}

func NewModel(app *store.Store, verifier auth.Verifier) Model {
	lf := &LoginFormModel{}

	m := Model{
		app:         app,
		verifier:    verifier,
		state:       constants.StateLogin,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		serviceList: servicelist.New(app.Services.All(), 0, 0),
		bookingList: bookinglist.New(app.Bookings.List(), 0, 0),
		loginForm:   lf,
		form:        NewLoginForm(lf),
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit},
		{m.keys.Back, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	// Hydrate bookings from on-device storage on startup
	return tea.Batch(m.form.Init(), m.loadBookingsCmd())
}

// Messages carrying the results of store operations

type bookingsLoadedMsg struct {
	bookings []models.Booking
	err      error
}

type bookingSavedMsg struct {
	booking models.Booking
	err     error
}

type bookingDeletedMsg struct {
	id  string
	err error
}

type servicesRefreshedMsg struct {
	services []models.Service
	err      error
}

func (m Model) loadBookingsCmd() tea.Cmd {
	bookings := m.app.Bookings
	return func() tea.Msg {
		list, err := bookings.LoadStored(context.Background())
		return bookingsLoadedMsg{bookings: list, err: err}
	}
}

func (m Model) saveBookingCmd(b models.Booking) tea.Cmd {
	bookings := m.app.Bookings
	return func() tea.Msg {
		err := bookings.AddAndSave(context.Background(), b)
		return bookingSavedMsg{booking: b, err: err}
	}
}

func (m Model) deleteBookingCmd(id string) tea.Cmd {
	bookings := m.app.Bookings
	return func() tea.Msg {
		err := bookings.DeleteAndSave(context.Background(), id)
		return bookingDeletedMsg{id: id, err: err}
	}
}

func (m Model) refreshServicesCmd() tea.Cmd {
	services := m.app.Services
	return func() tea.Msg {
		list, err := services.Refresh(context.Background())
		return servicesRefreshedMsg{services: list, err: err}
	}
}

// newBookingFormModel seeds the form with the current moment in the fixed
// booking zone, matching what the date/time pickers would emit.
func newBookingFormModel() *BookingFormModel {
	now := time.Now()
	return &BookingFormModel{
		Date: utils.FormatBookingDate(now),
		Time: utils.FormatBookingTime(now),
	}
}
