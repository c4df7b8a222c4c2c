package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"fitbook/internal/constants"
	"fitbook/internal/logger"
	"fitbook/internal/models"
	"fitbook/internal/tui/components/bookinglist"
	"fitbook/internal/tui/components/servicelist"
	"fitbook/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.serviceList.SetSize(msg.Width-4, msg.Height-6)
		m.bookingList.SetSize(msg.Width-4, msg.Height-6)

	case bookingsLoadedMsg:
		if msg.err != nil {
			logger.Error("Failed to load stored bookings", "error", msg.err)
			m.loadError = "Could not load bookings. Press 'g' to retry."
			m.bookingList.SetBookings([]models.Booking{})
		} else {
			m.loadError = ""
			m.bookingList.SetBookings(msg.bookings)
		}
		return m, nil

	case bookingSavedMsg:
		if msg.err != nil {
			logger.Error("Failed to save booking", "error", msg.err, "id", msg.booking.ID)
			// Leave the form populated for resubmission
			m.formError = "Booking failed. Please try again!"
			m.form = NewBookingForm(m.bookingForm)
			m.state = constants.StateBookingForm
			return m, m.form.Init()
		}
		m.formError = ""
		m.bookingList.SetBookings(m.app.Bookings.List())
		m.state = constants.StateBookings
		return m, nil

	case bookingDeletedMsg:
		if msg.err != nil {
			logger.Error("Failed to delete booking", "error", msg.err, "id", msg.id)
		}
		m.bookingList.SetBookings(m.app.Bookings.List())
		m.state = constants.StateBookings
		return m, nil

	case servicesRefreshedMsg:
		m.refreshing = false
		if msg.err != nil {
			logger.Error("Failed to refresh services", "error", msg.err)
			return m, nil
		}
		m.serviceList.SetServices(msg.services)
		return m, nil

	case servicelist.BookServiceMsg:
		m.selectedService = msg.Service
		m.bookingForm = newBookingFormModel()
		m.formError = ""
		m.form = NewBookingForm(m.bookingForm)
		m.state = constants.StateBookingForm
		return m, m.form.Init()

	case servicelist.ViewServiceMsg:
		m.selectedService = msg.Service
		m.state = constants.StateServiceDetail
		return m, nil

	case servicelist.RefreshMsg:
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.refreshServicesCmd()

	case bookinglist.DeleteBookingMsg:
		m.bookingToDelete = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case bookinglist.ReloadMsg:
		return m, m.loadBookingsCmd()
	}

	switch m.state {
	case constants.StateLogin:
		return m.updateLogin(msg)
	case constants.StateBookingForm:
		return m.updateBookingForm(msg)
	case constants.StateServiceDetail:
		return m.updateServiceDetail(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	filtering := (m.state == constants.StateServices && m.serviceList.Filtering()) ||
		(m.state == constants.StateBookings && m.bookingList.Filtering())

	if msg, ok := msg.(tea.KeyMsg); ok && !filtering {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateServices {
				m.state = constants.StateBookings
			} else {
				m.state = constants.StateServices
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateServices:
		m.serviceList, cmd = m.serviceList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		email := m.loginForm.Email
		password := m.loginForm.Password

		if errs := validation.ValidateLogin(email, password); len(errs) > 0 {
			m.loginError = "Invalid credentials"
			m.loginForm.Password = ""
			m.form = NewLoginForm(m.loginForm)
			return m, m.form.Init()
		}

		if err := m.verifier.Verify(email, password); err != nil {
			logger.Warn("Login rejected", "email", email)
			m.loginError = "Invalid credentials"
			m.loginForm.Password = ""
			m.form = NewLoginForm(m.loginForm)
			return m, m.form.Init()
		}

		m.app.Session.Login(email)
		m.loginError = ""
		m.state = constants.StateServices
		return m, nil
	}

	return m, cmd
}

func (m Model) updateBookingForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateServices
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		booking := models.Booking{
			ID:          uuid.New().String(),
			ServiceID:   m.selectedService.ID,
			ServiceName: m.selectedService.Name,
			Date:        m.bookingForm.Date,
			Time:        m.bookingForm.Time,
			Notes:       m.bookingForm.Notes,
		}
		return m, m.saveBookingCmd(booking)
	case huh.StateAborted:
		m.state = constants.StateServices
		return m, nil
	}

	return m, cmd
}

func (m Model) updateServiceDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q":
			m.state = constants.StateServices
			return m, nil
		case "b", "enter":
			m.bookingForm = newBookingFormModel()
			m.formError = ""
			m.form = NewBookingForm(m.bookingForm)
			m.state = constants.StateBookingForm
			return m, m.form.Init()
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			id := m.bookingToDelete
			m.bookingToDelete = ""
			return m, m.deleteBookingCmd(id)
		case "n", "esc":
			m.bookingToDelete = ""
			m.state = constants.StateBookings
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}
