package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/courierapp/internal/form"
	"github.com/jask/courierapp/internal/record"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldSpecialization
	fieldAddress
	fieldStatus
	fieldCount
)

type formField struct {
	label       string
	placeholder string
	required    bool
}

var formFields = [fieldStatus]formField{
	{label: "Full Name", placeholder: "Dr. John Doe", required: true},
	{label: "Email", placeholder: "john.doe@hospital.com", required: true},
	{label: "Phone", placeholder: "+1 (555) 123-4567", required: true},
	{label: "Specialization", placeholder: "e.g., Cardiology, Pediatrics", required: true},
	{label: "Address", placeholder: "123 Medical Center Dr, City, State 12345"},
}

// openForm builds the inputs from the session draft and shows the modal.
func (a *App) openForm() tea.Cmd {
	d := a.session.Draft
	values := [fieldStatus]string{d.Name, d.Email, d.Phone, d.Specialization, d.Address}
	a.inputs = make([]textinput.Model, fieldStatus)
	for i, f := range formFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Prompt = ""
		in.CharLimit = 120
		in.Width = 44
		in.SetValue(values[i])
		a.inputs[i] = in
	}
	a.modal = modalForm
	a.status = ""
	return a.focusField(fieldName)
}

func (a *App) focusField(i int) tea.Cmd {
	a.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range a.inputs {
		if j == a.focus {
			cmd = a.inputs[j].Focus()
		} else {
			a.inputs[j].Blur()
		}
	}
	return cmd
}

func (a *App) closeForm() {
	a.modal = modalNone
	a.inputs = nil
	a.focus = 0
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	switch {
	case key.Matches(m, k.Cancel):
		a.session.Cancel()
		a.closeForm()
		return a, nil
	case key.Matches(m, k.Submit):
		a.submitForm()
		return a, nil
	case key.Matches(m, k.NextField):
		return a, a.focusField(a.focus + 1)
	case key.Matches(m, k.PrevField):
		return a, a.focusField(a.focus - 1)
	}
	if a.focus == fieldStatus {
		if key.Matches(m, k.FlipStatus) {
			if a.session.Draft.Status == record.StatusInactive {
				a.session.Draft.Status = record.StatusActive
			} else {
				a.session.Draft.Status = record.StatusInactive
			}
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(m)
	return a, cmd
}

func (a *App) submitForm() {
	d := &a.session.Draft
	d.Name = a.inputs[fieldName].Value()
	d.Email = a.inputs[fieldEmail].Value()
	d.Phone = a.inputs[fieldPhone].Value()
	d.Specialization = a.inputs[fieldSpecialization].Value()
	d.Address = a.inputs[fieldAddress].Value()

	creating := a.session.Mode() == form.Creating
	n, err := a.services.Directory.Submit(a.ctx, &a.session)
	if err != nil {
		a.fail(err)
		return
	}
	a.closeForm()
	a.noticeStatus(n)
	a.refreshDoctors()
	if creating && a.search.Value() == "" {
		a.cursor = max(len(a.doctors)-1, 0)
	}
}

func (a *App) renderForm() string {
	var b strings.Builder
	style := modalStyle
	if a.session.Mode() == form.Editing {
		style = editModalStyle
		b.WriteString(titleStyle.Render("✏️ Edit Doctor"))
		b.WriteString("  ")
		b.WriteString(editingStyle.Render("Editing: " + a.session.EditingName()))
	} else {
		b.WriteString(titleStyle.Render("➕ Add New Doctor"))
	}
	b.WriteString("\n")

	for i, f := range formFields {
		label := f.label
		ls := labelStyle
		if f.required {
			label += " *"
			if strings.TrimSpace(a.inputs[i].Value()) == "" {
				ls = requiredLabelStyle
			}
		}
		marker := "  "
		if a.focus == i {
			marker = cursorStyle.Render("▶ ")
		}
		b.WriteString("\n" + marker + ls.Render(label) + "\n  " + a.inputs[i].View())
	}

	marker := "  "
	if a.focus == fieldStatus {
		marker = cursorStyle.Render("▶ ")
	}
	active := mutedStyle.Render("[ ] Active")
	inactive := mutedStyle.Render("[ ] Inactive")
	if a.session.Draft.Status == record.StatusInactive {
		inactive = statusErrStyle.Render("[x] Inactive")
	} else {
		active = activeStyle.Render("[x] Active")
	}
	b.WriteString("\n" + marker + labelStyle.Render("Status") + "\n  " + active + "  " + inactive)

	action := "[enter] Create Doctor"
	if a.session.Mode() == form.Editing {
		action = "[enter] Update Doctor"
	}
	b.WriteString("\n\n" + helpKeyStyle.Render(action) + "  " + mutedStyle.Render("[esc] Cancel"))
	return style.Render(b.String())
}
