package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Home     key.Binding
	Orders   key.Binding
	Drivers  key.Binding
	Doctors  key.Binding
	Up       key.Binding
	Down     key.Binding

	// doctors page
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Status key.Binding
	View   key.Binding
	Search key.Binding
	Clear  key.Binding

	// drivers page
	ToggleDriver  key.Binding
	OnlyAvailable key.Binding

	// modals
	Confirm     key.Binding
	Decline     key.Binding
	Submit      key.Binding
	Cancel      key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	FlipStatus  key.Binding
	CloseDetail key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		NextPage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Home:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Orders:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "orders")),
		Drivers:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "drivers")),
		Doctors:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "doctors")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add doctor")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Status: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle status")),
		View:   key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter", "details")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),

		ToggleDriver:  key.NewBinding(key.WithKeys(" ", "t"), key.WithHelp("space", "toggle availability")),
		OnlyAvailable: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "only available")),

		Confirm:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Decline:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		FlipStatus:  key.NewBinding(key.WithKeys(" ", "left", "right"), key.WithHelp("space", "active/inactive")),
		CloseDetail: key.NewBinding(key.WithKeys("esc", "enter", "q"), key.WithHelp("esc", "close")),
	}
}

// bindings implements help.KeyMap for whatever the user is looking at.
type bindings struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindings) ShortHelp() []key.Binding  { return b.short }
func (b bindings) FullHelp() [][]key.Binding { return b.full }

func (a *App) helpKeys() bindings {
	k := a.keys
	nav := []key.Binding{k.Home, k.Orders, k.Drivers, k.Doctors, k.NextPage, k.PrevPage}
	switch {
	case a.modal == modalForm:
		row := []key.Binding{k.Submit, k.Cancel, k.NextField, k.PrevField, k.FlipStatus}
		return bindings{short: row, full: [][]key.Binding{row}}
	case a.modal == modalConfirmDelete:
		row := []key.Binding{k.Confirm, k.Decline}
		return bindings{short: row, full: [][]key.Binding{row}}
	case a.modal == modalDetails:
		row := []key.Binding{k.CloseDetail}
		return bindings{short: row, full: [][]key.Binding{row}}
	case a.searching:
		row := []key.Binding{k.Submit, k.Clear}
		return bindings{short: row, full: [][]key.Binding{row}}
	}
	var page []key.Binding
	switch a.state {
	case viewDoctors:
		page = []key.Binding{k.Up, k.Down, k.New, k.Edit, k.Delete, k.Status, k.View, k.Search}
	case viewDrivers:
		page = []key.Binding{k.Up, k.Down, k.ToggleDriver, k.OnlyAvailable}
	}
	short := append(append([]key.Binding{}, page...), k.Help, k.Quit)
	return bindings{short: short, full: [][]key.Binding{page, nav, {k.Help, k.Quit}}}
}
