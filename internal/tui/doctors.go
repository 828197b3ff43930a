package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/courierapp/internal/record"
	"github.com/jask/courierapp/internal/service"
)

// refreshDoctors reloads the visible list, the stats cards and the
// empty-search hint from the store.
func (a *App) refreshDoctors() {
	dir := a.services.Directory
	if dir == nil || dir.Store == nil {
		return
	}
	query := a.search.Value()
	docs, err := dir.Store.Filter(a.ctx, query)
	if err != nil {
		a.fail(err)
		return
	}
	stats, err := dir.Store.Stats(a.ctx)
	if err != nil {
		a.fail(err)
		return
	}
	a.doctors = docs
	a.stats = stats
	a.hint = ""
	if len(docs) == 0 && query != "" {
		if hint, err := dir.Store.Suggest(a.ctx, query); err == nil {
			a.hint = hint
		}
	}
	if a.cursor >= len(a.doctors) {
		a.cursor = max(len(a.doctors)-1, 0)
	}
}

func (a *App) selectedDoctor() (record.Doctor, bool) {
	if a.cursor < 0 || a.cursor >= len(a.doctors) {
		return record.Doctor{}, false
	}
	return a.doctors[a.cursor], true
}

func (a *App) handleDoctorsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	switch {
	case key.Matches(m, k.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, k.Down):
		if a.cursor < len(a.doctors)-1 {
			a.cursor++
		}
	case key.Matches(m, k.Search):
		a.searching = true
		return a, a.search.Focus()
	case key.Matches(m, k.Clear):
		if a.search.Value() != "" {
			a.search.SetValue("")
			a.refreshDoctors()
		}
	case key.Matches(m, k.New):
		a.session.BeginCreate()
		return a, a.openForm()
	case key.Matches(m, k.Edit):
		if doc, ok := a.selectedDoctor(); ok {
			a.session.BeginEdit(doc)
			return a, a.openForm()
		}
	case key.Matches(m, k.Delete):
		if doc, ok := a.selectedDoctor(); ok {
			prompt, err := a.services.Directory.DeletePrompt(a.ctx, doc.ID)
			if err != nil {
				a.fail(err)
				a.refreshDoctors()
				return a, nil
			}
			a.targetID = doc.ID
			a.prompt = prompt
			a.modal = modalConfirmDelete
		}
	case key.Matches(m, k.Status):
		if doc, ok := a.selectedDoctor(); ok {
			n, err := a.services.Directory.ToggleStatus(a.ctx, doc.ID)
			if err != nil {
				a.fail(err)
			} else {
				a.noticeStatus(n)
			}
			a.refreshDoctors()
		}
	case key.Matches(m, k.View):
		if doc, ok := a.selectedDoctor(); ok {
			text, err := a.services.Directory.Details(a.ctx, doc.ID)
			if err != nil {
				a.fail(err)
				return a, nil
			}
			a.details = text
			a.modal = modalDetails
		}
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEnter:
		a.searching = false
		a.search.Blur()
		return a, nil
	case tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.cursor = 0
		a.refreshDoctors()
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.cursor = 0
	a.refreshDoctors()
	return a, cmd
}

func (a *App) deleteDoctor(confirmed bool) {
	id := a.targetID
	a.targetID = ""
	a.prompt = ""
	n, err := a.services.Directory.Delete(a.ctx, id, confirmed)
	switch {
	case service.IsDeclined(err):
		a.setStatus("delete cancelled", statusPlain)
	case err != nil:
		a.fail(err)
	default:
		a.noticeStatus(n)
	}
	a.refreshDoctors()
}

func statCard(label, value string) string {
	return cardStyle.Width(22).Render(statLabelStyle.Render(label) + "\n" + statValueStyle.Render(value))
}

func (a *App) renderDoctors() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Doctor Management"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Create, Read, Update, Delete doctors in your courier network"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("📊 Total Doctors", strconv.Itoa(a.stats.Total)),
		statCard("✅ Active Doctors", strconv.Itoa(a.stats.Active)),
		statCard("📦 Total Orders", strconv.Itoa(a.stats.TotalOrders)),
		statCard("📈 Avg Orders/Doctor", strconv.Itoa(a.stats.AvgOrders)),
	))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("📋 Doctors List"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  showing %d of %d", len(a.doctors), a.stats.Total)))
	b.WriteString("\n")
	b.WriteString(a.search.View())
	b.WriteString("\n\n")

	if len(a.doctors) == 0 {
		if a.search.Value() != "" {
			b.WriteString(mutedStyle.Render("🔍 No doctors found matching your search."))
			if a.hint != "" {
				b.WriteString("\n")
				b.WriteString(hintStyle.Render(fmt.Sprintf("Did you mean %q?", a.hint)))
			}
		} else {
			b.WriteString(mutedStyle.Render("📝 No doctors available. Add your first doctor!"))
		}
		return b.String()
	}

	cards := make([]string, 0, len(a.doctors))
	for i, doc := range a.doctors {
		cards = append(cards, a.renderDoctorCard(doc, i == a.cursor))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	return b.String()
}

func (a *App) renderDoctorCard(doc record.Doctor, selected bool) string {
	marker := "  "
	style := cardStyle
	if selected {
		marker = cursorStyle.Render("▶ ")
		style = selectedCardStyle
	}
	status := activeStyle.Render("✅ active")
	if doc.Status != record.StatusActive {
		status = inactiveStyle.Render("❌ " + string(doc.Status))
	}

	lines := []string{
		marker + lipgloss.NewStyle().Bold(true).Render("👨‍⚕️ "+doc.Name),
		"📧 " + doc.Email + "   📞 " + doc.Phone,
	}
	if doc.Address != "" {
		lines = append(lines, "📍 "+doc.Address)
	}
	lines = append(lines,
		badgeStyle.Render("🏥 "+doc.Specialization)+"  "+status+
			mutedStyle.Render(fmt.Sprintf("  📦 Orders: %d  📅 Joined: %s", doc.TotalOrders, doc.JoinDate.Format(a.dateFormat))),
		mutedStyle.Render("ID: "+doc.ID),
	)
	return style.Render(strings.Join(lines, "\n"))
}
