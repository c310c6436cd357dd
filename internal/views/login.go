package views

import (
	"regexp"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/storage"
	"tundeajayi/vendaterm/internal/utils"
	"tundeajayi/vendaterm/internal/validation"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type LoginModel struct {
	client  *api.Client
	storage *storage.Storage
	toasts  *notify.Store

	email    textinput.Model
	password textinput.Model

	focusIndex int
	controller *validation.Controller[tea.Cmd]
	spinner    *utils.Spinner
}

type loginResultMsg struct {
	result *api.LoginResult
	err    error
}

func NewLoginModel(client *api.Client, store *storage.Storage, toasts *notify.Store) *LoginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 100
	email.Focus()
	email.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Blue))
	email.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))

	// Prefill with the last email used on this machine
	if cfg, err := store.LoadConfig(); err == nil && cfg.LastEmail != "" {
		email.SetValue(cfg.LastEmail)
	}

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Blue))
	password.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))

	m := &LoginModel{
		client:   client,
		storage:  store,
		toasts:   toasts,
		email:    email,
		password: password,
		spinner:  utils.NewSpinner("Signing in..."),
	}

	rules := map[string][]validation.Rule{
		"email": {
			validation.Required("Email is required"),
			validation.Pattern(emailPattern, "Enter a valid email address"),
		},
		"password": {
			validation.Required("Password is required"),
		},
	}
	m.controller = validation.NewController(rules, m.submit)

	return m
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusIndex = (m.focusIndex + 1) % 2
			return m, m.focusField()

		case "shift+tab", "up":
			m.focusIndex = (m.focusIndex + 1) % 2
			return m, m.focusField()

		case "ctrl+r":
			return m, NavigateTo(ViewRegister, nil)

		case "enter":
			if m.focusIndex == 0 {
				m.focusIndex = 1
				return m, m.focusField()
			}
			values := map[string]string{
				"email":    m.email.Value(),
				"password": m.password.Value(),
			}
			cmd, invoked := m.controller.Submit(values)
			if invoked {
				return m, cmd
			}
			return m, nil
		}

	case loginResultMsg:
		m.controller.Finish()
		if msg.err != nil {
			m.toasts.Error(api.Classify(msg.err).UserMessage())
			return m, nil
		}

		// Remember the email for the next launch, best effort
		if cfg, err := m.storage.LoadConfig(); err == nil {
			cfg.LastEmail = msg.result.Vendor.Email
			m.storage.SaveConfig(cfg)
		}

		vendor := msg.result.Vendor
		return m, func() tea.Msg {
			return LoggedInMsg{Vendor: &vendor, Token: msg.result.Token}
		}
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *LoginModel) focusField() tea.Cmd {
	if m.focusIndex == 0 {
		m.password.Blur()
		return m.email.Focus()
	}
	m.email.Blur()
	return m.password.Focus()
}

func (m *LoginModel) submit(values map[string]string) tea.Cmd {
	creds := api.Credentials{
		Email:    values["email"],
		Password: values["password"],
	}
	return func() tea.Msg {
		result, err := m.client.Login(creds)
		return loginResultMsg{result: result, err: err}
	}
}

func (m LoginModel) View() string {
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

	var content string
	content += titleStyle.Render("vendaterm") + "\n"
	content += helpStyle.Render("Your storefront, in the terminal") + "\n\n"

	content += labelStyle.Render("Email:") + "\n"
	content += m.email.View() + "\n"
	if err := m.controller.FieldError("email"); err != "" {
		content += errorStyle.Render("✗ "+err) + "\n"
	}
	content += "\n"

	content += labelStyle.Render("Password:") + "\n"
	content += m.password.View() + "\n"
	if err := m.controller.FieldError("password"); err != "" {
		content += errorStyle.Render("✗ "+err) + "\n"
	}

	if m.controller.Submitting() {
		content += "\n" + m.spinner.View()
	}

	content += "\n\n" + helpStyle.Render("Enter: sign in • Tab: next field • Ctrl+R: create an account • Ctrl+C: quit")

	return content
}
