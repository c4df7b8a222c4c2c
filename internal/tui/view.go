package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"fitbook/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateLogin:
		return m.viewLogin()
	case constants.StateBookingForm:
		return m.viewBookingForm()
	case constants.StateServiceDetail:
		return m.viewServiceDetail()
	case constants.StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	var content string
	switch m.state {
	case constants.StateServices:
		content = m.viewServices()
	case constants.StateBookings:
		content = m.viewBookings()
	}

	var status string
	if m.refreshing && m.state == constants.StateServices {
		status = statusStyle.Render("Refreshing services…")
	}
	if m.loadError != "" && m.state == constants.StateBookings {
		status = errorStyle.Render(m.loadError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		status,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Services", "Bookings"} {
		state := constants.StateServices
		if i == 1 {
			state = constants.StateBookings
		}
		if m.state == state {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewLogin() string {
	header := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("Welcome Back"),
		labelStyle.Render("Login to continue"),
	)

	parts := []string{header, "", m.form.View()}
	if m.loginError != "" {
		parts = append(parts, errorStyle.Render(m.loginError))
	}

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...),
	)
}

func (m Model) viewServices() string {
	return docStyle.Render(m.serviceList.View())
}

func (m Model) viewBookings() string {
	return docStyle.Render(m.bookingList.View())
}

func (m Model) viewServiceDetail() string {
	s := m.selectedService
	if s.ID == "" {
		return docStyle.Render("Service not found.")
	}

	detail := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(s.Name),
		"",
		labelStyle.Render("Duration: ")+s.Duration,
		labelStyle.Render("Price:    ")+fmt.Sprintf("₹%.0f", s.Price),
		"",
		s.Description,
		"",
		labelStyle.Render("[b] Book   [esc] Back"),
	)
	return docStyle.Render(detail)
}

func (m Model) viewBookingForm() string {
	header := titleStyle.Render("Book " + m.selectedService.Name)
	parts := []string{header, "", m.form.View()}
	if m.formError != "" {
		parts = append(parts, errorStyle.Render(m.formError))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Cancel this booking?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
