package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/courierapp/internal/record"
)

func (a *App) visibleDrivers() []record.Driver {
	if a.services.Drivers == nil {
		return nil
	}
	return a.services.Drivers.Visible(a.onlyAvailable)
}

func (a *App) handleDriversKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	drivers := a.visibleDrivers()
	switch {
	case key.Matches(m, k.Up):
		if a.driverCursor > 0 {
			a.driverCursor--
		}
	case key.Matches(m, k.Down):
		if a.driverCursor < len(drivers)-1 {
			a.driverCursor++
		}
	case key.Matches(m, k.OnlyAvailable):
		a.onlyAvailable = !a.onlyAvailable
		a.driverCursor = 0
	case key.Matches(m, k.ToggleDriver):
		if a.driverCursor >= len(drivers) {
			return a, nil
		}
		d, err := a.services.Drivers.ToggleAvailability(drivers[a.driverCursor].ID)
		if err != nil {
			a.fail(err)
			return a, nil
		}
		state := "offline"
		if d.Available {
			state = "available"
		}
		a.setStatus(fmt.Sprintf("%s is now %s", d.Name, state), statusPlain)
		if n := len(a.visibleDrivers()); a.driverCursor >= n {
			a.driverCursor = max(n-1, 0)
		}
	}
	return a, nil
}

func (a *App) renderDrivers() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Drivers"))
	toggle := mutedStyle.Render("[ ] Only Available")
	if a.onlyAvailable {
		toggle = activeStyle.Render("[x] Only Available")
	}
	b.WriteString("    " + toggle + "\n\n")

	drivers := a.visibleDrivers()
	if len(drivers) == 0 {
		b.WriteString(mutedStyle.Render("No drivers to show."))
		return b.String()
	}
	cards := make([]string, 0, len(drivers))
	for i, d := range drivers {
		style := cardStyle.Width(36)
		marker := "  "
		if i == a.driverCursor {
			style = selectedCardStyle.Width(36)
			marker = cursorStyle.Render("▶ ")
		}
		state := statusErrStyle.Render("❌ Offline")
		if d.Available {
			state = activeStyle.Render("✅ Available")
		}
		body := marker + lipgloss.NewStyle().Bold(true).Render(d.Name) + "\n  " +
			mutedStyle.Render("Driver") + "  " + state
		cards = append(cards, style.Render(body))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	return b.String()
}

func (a *App) renderOrders() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Orders"))
	b.WriteString("\n")
	if a.services.Orders == nil {
		return b.String()
	}
	counts := a.services.Orders.CountByStatus()
	parts := make([]string, 0, len(record.OrderStatuses))
	for _, s := range record.OrderStatuses {
		parts = append(parts, fmt.Sprintf("%s %d", s, counts[s]))
	}
	b.WriteString(mutedStyle.Render(strings.Join(parts, " · ")))
	b.WriteString("\n\n")

	orders := a.services.Orders.List()
	cards := make([]string, 0, len(orders))
	for _, o := range orders {
		status := lipgloss.NewStyle().Foreground(orderStatusColor(string(o.Status))).Render(string(o.Status))
		body := lipgloss.NewStyle().Bold(true).Render("#"+o.ID) + "\n" +
			o.Address + "\n" +
			"Status: " + status
		cards = append(cards, cardStyle.Width(36).Render(body))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	return b.String()
}
