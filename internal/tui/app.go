package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/courierapp/internal/form"
	"github.com/jask/courierapp/internal/record"
	"github.com/jask/courierapp/internal/service"
	"github.com/jask/courierapp/internal/store"
)

// App ties together views.
type App struct {
	ctx      context.Context
	services Services
	keys     keyMap
	help     help.Model

	state      appState
	modal      modalState
	status     string
	statusKind statusKind
	width      int
	dateFormat string

	// doctors page
	doctors   []record.Doctor
	stats     record.Stats
	hint      string
	cursor    int
	search    textinput.Model
	searching bool

	// form modal
	session form.Session
	inputs  []textinput.Model
	focus   int

	// confirm / details modals
	targetID string
	prompt   string
	details  string

	// drivers page
	onlyAvailable bool
	driverCursor  int
}

// Services are the collections the pages read and mutate.
type Services struct {
	Directory *service.DirectoryService
	Drivers   *store.Roster
	Orders    *store.Board
}

// Options tune presentation.
type Options struct {
	StartPage  string
	DateFormat string
}

type appState string

const (
	viewHome    appState = "home"
	viewOrders  appState = "orders"
	viewDrivers appState = "drivers"
	viewDoctors appState = "doctors"
)

// pages in navbar order
var pages = []appState{viewHome, viewOrders, viewDrivers, viewDoctors}

var pageTitles = map[appState]string{
	viewHome:    "Home",
	viewOrders:  "Orders",
	viewDrivers: "Drivers",
	viewDoctors: "Doctors",
}

type modalState string

const (
	modalNone          modalState = ""
	modalForm          modalState = "form"
	modalConfirmDelete modalState = "confirmDelete"
	modalDetails       modalState = "details"
)

type statusKind int

const (
	statusPlain statusKind = iota
	statusOK
	statusErr
)

func New(ctx context.Context, services Services, opts Options) *App {
	search := textinput.New()
	search.Placeholder = "Search doctors by name, email, or specialization..."
	search.Prompt = "🔍 "
	search.CharLimit = 80
	search.Width = 50

	a := &App{
		ctx:        ctx,
		services:   services,
		keys:       defaultKeys(),
		help:       help.New(),
		state:      viewHome,
		dateFormat: opts.DateFormat,
		search:     search,
	}
	a.help.Styles.ShortKey = helpKeyStyle
	a.help.Styles.ShortDesc = helpDescStyle
	a.help.Styles.ShortSeparator = helpSepStyle
	a.help.Styles.FullKey = helpKeyStyle
	a.help.Styles.FullDesc = helpDescStyle
	a.help.Styles.FullSeparator = helpSepStyle
	if a.dateFormat == "" {
		a.dateFormat = "01/02/2006"
	}
	for _, p := range pages {
		if string(p) == strings.ToLower(opts.StartPage) {
			a.state = p
		}
	}
	a.refreshDoctors()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	switch {
	case key.Matches(m, k.Quit):
		return a, tea.Quit
	case key.Matches(m, k.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(m, k.Home):
		a.switchPage(viewHome)
		return a, nil
	case key.Matches(m, k.Orders):
		a.switchPage(viewOrders)
		return a, nil
	case key.Matches(m, k.Drivers):
		a.switchPage(viewDrivers)
		return a, nil
	case key.Matches(m, k.Doctors):
		a.switchPage(viewDoctors)
		return a, nil
	case key.Matches(m, k.NextPage):
		a.switchPage(pages[(a.pageIndex()+1)%len(pages)])
		return a, nil
	case key.Matches(m, k.PrevPage):
		a.switchPage(pages[(a.pageIndex()+len(pages)-1)%len(pages)])
		return a, nil
	}
	switch a.state {
	case viewDoctors:
		return a.handleDoctorsKey(m)
	case viewDrivers:
		return a.handleDriversKey(m)
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalForm:
		return a.handleFormKey(m)
	case modalConfirmDelete:
		switch {
		case key.Matches(m, a.keys.Confirm):
			a.modal = modalNone
			a.deleteDoctor(true)
		case key.Matches(m, a.keys.Decline):
			a.modal = modalNone
			a.deleteDoctor(false)
		}
	case modalDetails:
		if key.Matches(m, a.keys.CloseDetail) {
			a.modal = modalNone
			a.details = ""
		}
	}
	return a, nil
}

func (a *App) switchPage(p appState) {
	a.state = p
	a.status = ""
	if p == viewDoctors {
		a.refreshDoctors()
	}
}

func (a *App) pageIndex() int {
	for i, p := range pages {
		if p == a.state {
			return i
		}
	}
	return 0
}

func (a *App) setStatus(text string, kind statusKind) {
	a.status = text
	a.statusKind = kind
}

func (a *App) fail(err error) {
	a.setStatus(err.Error(), statusErr)
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewOrders:
		body = a.renderOrders()
	case viewDrivers:
		body = a.renderDrivers()
	case viewDoctors:
		body = a.renderDoctors()
	default:
		body = a.renderHome()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}

	var b strings.Builder
	b.WriteString(a.renderNavbar())
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	if a.status != "" {
		b.WriteString(a.renderStatus())
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(a.help.View(a.helpKeys())))
	return b.String()
}

func (a *App) renderNavbar() string {
	name := headerAppStyle.Render("CourierApp")
	tabs := make([]string, 0, len(pages))
	for i, p := range pages {
		label := fmt.Sprintf("%d %s", i+1, pageTitles[p])
		if p == a.state {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	line := name + "  " + tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	if a.width <= 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(a.width).Render(line)
}

func (a *App) renderStatus() string {
	switch a.statusKind {
	case statusErr:
		return statusErrStyle.Render("error: " + a.status)
	case statusOK:
		return statusOKStyle.Render(a.status)
	default:
		return statusStyle.Render(a.status)
	}
}

func (a *App) renderHome() string {
	title := titleStyle.Render("Courier Dashboard")
	available := 0
	drivers := 0
	if a.services.Drivers != nil {
		available = a.services.Drivers.AvailableCount()
		drivers = len(a.services.Drivers.List())
	}
	orders := 0
	if a.services.Orders != nil {
		orders = len(a.services.Orders.List())
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Orders", strconv.Itoa(orders)),
		statCard("Drivers available", fmt.Sprintf("%d/%d", available, drivers)),
		statCard("Doctors", strconv.Itoa(a.stats.Total)),
	)
	shortcuts := strings.Join([]string{
		helpKeyStyle.Render("[2]") + " View Orders",
		helpKeyStyle.Render("[3]") + " View Drivers",
		helpKeyStyle.Render("[4]") + " Manage Doctors",
	}, "   ")
	return title + "\n\n" + cards + "\n\n" + shortcuts
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalForm:
		return a.renderForm()
	case modalConfirmDelete:
		body := titleStyle.Render("Delete doctor?") + "\n" + a.prompt + "\n" +
			helpKeyStyle.Render("[y]") + " Yes  " + helpKeyStyle.Render("[n]") + " No"
		return dangerModalStyle.Render(body)
	case modalDetails:
		return modalStyle.Render(a.details + "\n\n" + mutedStyle.Render("[esc] Close"))
	default:
		return ""
	}
}

// noticeStatus shows a completed operation.
func (a *App) noticeStatus(n service.Notice) {
	kind := statusPlain
	if n.Kind == service.NoticeSuccess {
		kind = statusOK
	}
	a.setStatus(n.Text, kind)
}
