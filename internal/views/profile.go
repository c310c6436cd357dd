package views

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/audit"
	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/utils"
	"tundeajayi/vendaterm/internal/validation"
)

type ProfilePane int

const (
	PaneDetails ProfilePane = iota
	PanePassword
)

const (
	profileFieldBusinessName = iota
	profileFieldWhatsApp
	profileFieldDescription
	profileFieldLocation
	profileFieldCurrency
	profileFieldCount
)

const (
	passwordFieldCurrent = iota
	passwordFieldNew
	passwordFieldConfirm
	passwordFieldCount
)

var profileRules = map[string][]validation.Rule{
	"business_name": {
		validation.Required("Business name is required"),
		validation.MinLength(2, "Business name must be at least 2 characters"),
		validation.MaxLength(60, "Business name must be at most 60 characters"),
	},
	"whatsapp_number": {
		validation.Required("WhatsApp number is required"),
		validation.Custom(validation.PredicatePhone, "Enter a valid phone number"),
	},
	"description": {
		validation.MaxLength(300, "Description must be at most 300 characters"),
	},
	"location": {
		validation.MaxLength(80, "Location must be at most 80 characters"),
	},
	"currency": {
		validation.Required("Currency is required"),
		validation.MinLength(3, "Use a 3-letter code like NGN or KES"),
		validation.MaxLength(3, "Use a 3-letter code like NGN or KES"),
	},
}

var passwordRules = map[string][]validation.Rule{
	"current": {
		validation.Required("Current password is required"),
	},
	"new": {
		validation.Required("New password is required"),
		validation.MinLength(8, "Password must be at least 8 characters"),
	},
}

type ProfileModel struct {
	client  *api.Client
	toasts  *notify.Store
	auditor *audit.Auditor
	vendor  *models.Vendor

	pane ProfilePane

	profileInputs  [profileFieldCount]textinput.Model
	passwordInputs [passwordFieldCount]textinput.Model
	focusIndex     int

	profileCtrl  *validation.Controller[tea.Cmd]
	passwordCtrl *validation.Controller[tea.Cmd]
	confirmErr   string
	submitErr    string

	loading bool
	spinner *utils.Spinner
}

type profileLoadedMsg struct {
	vendor *models.Vendor
	err    error
}

type profileSavedMsg struct {
	vendor *models.Vendor
	err    error
}

type passwordChangedMsg struct {
	err error
}

func NewProfileModel(client *api.Client, toasts *notify.Store, auditor *audit.Auditor, vendor *models.Vendor) *ProfileModel {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Blue))
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))
		return in
	}

	m := &ProfileModel{
		client:  client,
		toasts:  toasts,
		auditor: auditor,
		vendor:  vendor,
		spinner: utils.NewSpinner("Loading profile..."),
	}

	m.profileInputs[profileFieldBusinessName] = newInput("Business name", 60)
	m.profileInputs[profileFieldWhatsApp] = newInput("+234 801 234 5678", 20)
	m.profileInputs[profileFieldDescription] = newInput("What do you sell?", 300)
	m.profileInputs[profileFieldLocation] = newInput("Lagos, Nigeria", 80)
	m.profileInputs[profileFieldCurrency] = newInput("NGN", 3)
	m.profileInputs[profileFieldBusinessName].Focus()

	m.passwordInputs[passwordFieldCurrent] = newInput("current password", 100)
	m.passwordInputs[passwordFieldNew] = newInput("min 8 characters", 100)
	m.passwordInputs[passwordFieldConfirm] = newInput("repeat new password", 100)
	for i := range m.passwordInputs {
		m.passwordInputs[i].EchoMode = textinput.EchoPassword
		m.passwordInputs[i].EchoCharacter = '*'
	}

	m.profileCtrl = validation.NewController(profileRules, m.saveProfile)
	m.passwordCtrl = validation.NewController(passwordRules, m.changePassword)

	return m
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(textinput.Blink, m.loadProfile())
}

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			if m.pane == PaneDetails {
				m.pane = PanePassword
			} else {
				m.pane = PaneDetails
			}
			m.focusIndex = 0
			m.confirmErr = ""
			m.submitErr = ""
			return m, m.focusField()

		case "tab", "down":
			m.focusIndex = (m.focusIndex + 1) % m.fieldCount()
			return m, m.focusField()

		case "shift+tab", "up":
			m.focusIndex = (m.focusIndex + m.fieldCount() - 1) % m.fieldCount()
			return m, m.focusField()

		case "enter":
			if m.focusIndex < m.fieldCount()-1 {
				m.focusIndex++
				return m, m.focusField()
			}
			return m.handleSubmit()
		}

	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.submitErr = api.Classify(msg.err).UserMessage()
			return m, nil
		}
		m.vendor = msg.vendor
		m.profileInputs[profileFieldBusinessName].SetValue(msg.vendor.BusinessName)
		m.profileInputs[profileFieldWhatsApp].SetValue(msg.vendor.ContactNumber())
		m.profileInputs[profileFieldDescription].SetValue(msg.vendor.Description)
		m.profileInputs[profileFieldLocation].SetValue(msg.vendor.Location)
		m.profileInputs[profileFieldCurrency].SetValue(msg.vendor.Currency)
		return m, nil

	case profileSavedMsg:
		m.profileCtrl.Finish()
		if msg.err != nil {
			m.submitErr = api.Classify(msg.err).UserMessage()
			return m, nil
		}
		m.vendor = msg.vendor
		m.auditor.Record(audit.ActionProfileUpdate, msg.vendor.ID, "Updated store profile", nil)
		m.toasts.Success("Profile saved")
		return m, nil

	case passwordChangedMsg:
		m.passwordCtrl.Finish()
		if msg.err != nil {
			m.submitErr = api.Classify(msg.err).UserMessage()
			return m, nil
		}
		for i := range m.passwordInputs {
			m.passwordInputs[i].SetValue("")
		}
		m.toasts.Success("Password changed")
		return m, nil
	}

	var cmd tea.Cmd
	if m.pane == PaneDetails {
		m.profileInputs[m.focusIndex], cmd = m.profileInputs[m.focusIndex].Update(msg)
	} else {
		m.passwordInputs[m.focusIndex], cmd = m.passwordInputs[m.focusIndex].Update(msg)
	}
	return m, cmd
}

func (m ProfileModel) handleSubmit() (ProfileModel, tea.Cmd) {
	m.submitErr = ""

	if m.pane == PaneDetails {
		values := map[string]string{
			"business_name":   m.profileInputs[profileFieldBusinessName].Value(),
			"whatsapp_number": m.profileInputs[profileFieldWhatsApp].Value(),
			"description":     m.profileInputs[profileFieldDescription].Value(),
			"location":        m.profileInputs[profileFieldLocation].Value(),
			"currency":        m.profileInputs[profileFieldCurrency].Value(),
		}
		cmd, invoked := m.profileCtrl.Submit(values)
		if invoked {
			return m, cmd
		}
		return m, nil
	}

	// New passwords matching is a cross-field concern checked here
	if m.passwordInputs[passwordFieldNew].Value() != m.passwordInputs[passwordFieldConfirm].Value() {
		m.confirmErr = "Passwords do not match"
		return m, nil
	}
	m.confirmErr = ""

	values := map[string]string{
		"current": m.passwordInputs[passwordFieldCurrent].Value(),
		"new":     m.passwordInputs[passwordFieldNew].Value(),
	}
	cmd, invoked := m.passwordCtrl.Submit(values)
	if invoked {
		return m, cmd
	}
	return m, nil
}

func (m ProfileModel) fieldCount() int {
	if m.pane == PaneDetails {
		return profileFieldCount
	}
	return passwordFieldCount
}

func (m *ProfileModel) focusField() tea.Cmd {
	for i := range m.profileInputs {
		m.profileInputs[i].Blur()
	}
	for i := range m.passwordInputs {
		m.passwordInputs[i].Blur()
	}
	if m.pane == PaneDetails {
		return m.profileInputs[m.focusIndex].Focus()
	}
	return m.passwordInputs[m.focusIndex].Focus()
}

func (m *ProfileModel) loadProfile() tea.Cmd {
	return func() tea.Msg {
		vendor, err := m.client.GetProfile()
		return profileLoadedMsg{vendor: vendor, err: err}
	}
}

func (m *ProfileModel) saveProfile(values map[string]string) tea.Cmd {
	update := api.ProfileUpdate{
		BusinessName:   values["business_name"],
		WhatsAppNumber: values["whatsapp_number"],
		Description:    values["description"],
		Location:       values["location"],
		Currency:       values["currency"],
	}
	return func() tea.Msg {
		vendor, err := m.client.UpdateProfile(update)
		return profileSavedMsg{vendor: vendor, err: err}
	}
}

func (m *ProfileModel) changePassword(values map[string]string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.ChangePassword(values["current"], values["new"])
		return passwordChangedMsg{err: err}
	}
}

func (m ProfileModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Blue)).
		Bold(true).
		Padding(1, 0)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text)).
		Bold(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Red))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Mauve)).
		Bold(true).
		Padding(0, 1).
		Underline(true)

	var content string
	content += titleStyle.Render("Store Profile") + "\n"

	detailsTab, passwordTab := activeTabStyle, tabStyle
	if m.pane == PanePassword {
		detailsTab, passwordTab = tabStyle, activeTabStyle
	}
	content += detailsTab.Render("Details") + passwordTab.Render("Password") + "\n\n"

	if m.loading {
		content += m.spinner.View() + "\n"
		return content
	}

	renderField := func(label string, input textinput.Model, errText string) string {
		out := labelStyle.Render(label) + "\n" + input.View() + "\n"
		if errText != "" {
			out += errorStyle.Render("✗ "+errText) + "\n"
		}
		return out + "\n"
	}

	if m.pane == PaneDetails {
		content += renderField("Business Name:", m.profileInputs[profileFieldBusinessName], m.profileCtrl.FieldError("business_name"))
		content += renderField("WhatsApp Number:", m.profileInputs[profileFieldWhatsApp], m.profileCtrl.FieldError("whatsapp_number"))
		content += renderField("Description:", m.profileInputs[profileFieldDescription], m.profileCtrl.FieldError("description"))
		content += renderField("Location:", m.profileInputs[profileFieldLocation], m.profileCtrl.FieldError("location"))
		content += renderField("Currency:", m.profileInputs[profileFieldCurrency], m.profileCtrl.FieldError("currency"))
		if m.profileCtrl.Submitting() {
			content += utils.NewSpinner("Saving...").View() + "\n"
		}
	} else {
		content += renderField("Current Password:", m.passwordInputs[passwordFieldCurrent], m.passwordCtrl.FieldError("current"))
		content += renderField("New Password:", m.passwordInputs[passwordFieldNew], m.passwordCtrl.FieldError("new"))
		content += renderField("Confirm New Password:", m.passwordInputs[passwordFieldConfirm], m.confirmErr)
		if m.passwordCtrl.Submitting() {
			content += utils.NewSpinner("Changing password...").View() + "\n"
		}
	}

	if m.submitErr != "" {
		content += errorStyle.Render("✗ "+m.submitErr) + "\n"
	}

	content += "\n" + helpStyle.Render("Enter: next / save • Ctrl+T: switch tab • Esc: back")

	return content
}
