package views

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/utils"
	"tundeajayi/vendaterm/internal/validation"
)

type RegisterStep int

const (
	StepDetails RegisterStep = iota
	StepPassword
	StepComplete
)

var registerSteps = []string{"Details", "Password", "Done"}

type RegisterModel struct {
	client *api.Client
	toasts *notify.Store
	step   RegisterStep

	businessName textinput.Model
	email        textinput.Model
	phone        textinput.Model
	password     textinput.Model
	confirm      textinput.Model

	focusIndex int
	controller *validation.Controller[tea.Cmd]
	spinner    *utils.Spinner

	stepErrors validation.Errors
	confirmErr string
}

type registerResultMsg struct {
	result *api.LoginResult
	err    error
}

var registerRules = map[string][]validation.Rule{
	"business_name": {
		validation.Required("Business name is required"),
		validation.MinLength(2, "Business name must be at least 2 characters"),
		validation.MaxLength(60, "Business name must be at most 60 characters"),
	},
	"email": {
		validation.Required("Email is required"),
		validation.Pattern(emailPattern, "Enter a valid email address"),
	},
	"phone": {
		validation.Required("Phone number is required"),
		validation.Custom(validation.PredicatePhone, "Enter a valid phone number"),
	},
	"password": {
		validation.Required("Password is required"),
		validation.MinLength(8, "Password must be at least 8 characters"),
	},
}

func NewRegisterModel(client *api.Client, toasts *notify.Store) *RegisterModel {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Blue))
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))
		return in
	}

	m := &RegisterModel{
		client:       client,
		toasts:       toasts,
		step:         StepDetails,
		businessName: newInput("Mama Tee Fabrics", 60),
		email:        newInput("you@example.com", 100),
		phone:        newInput("+234 801 234 5678", 20),
		password:     newInput("min 8 characters", 100),
		confirm:      newInput("repeat password", 100),
		spinner:      utils.NewSpinner("Creating your account..."),
		stepErrors:   make(validation.Errors),
	}
	m.businessName.Focus()
	m.password.EchoMode = textinput.EchoPassword
	m.password.EchoCharacter = '*'
	m.confirm.EchoMode = textinput.EchoPassword
	m.confirm.EchoCharacter = '*'

	m.controller = validation.NewController(registerRules, m.submit)

	return m
}

func (m RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.step == StepDetails {
				return m, NavigateTo(ViewLogin, nil)
			}
			if m.step == StepPassword {
				m.step = StepDetails
				m.focusIndex = 0
				return m, m.focusField()
			}

		case "tab", "down":
			m.focusIndex = (m.focusIndex + 1) % m.fieldCount()
			return m, m.focusField()

		case "shift+tab", "up":
			m.focusIndex = (m.focusIndex + m.fieldCount() - 1) % m.fieldCount()
			return m, m.focusField()

		case "enter":
			return m.handleEnter()
		}

	case registerResultMsg:
		m.controller.Finish()
		if msg.err != nil {
			m.toasts.Error(api.Classify(msg.err).UserMessage())
			m.step = StepPassword
			return m, nil
		}

		m.step = StepComplete
		vendor := msg.result.Vendor
		token := msg.result.Token
		return m, func() tea.Msg {
			return LoggedInMsg{Vendor: &vendor, Token: token}
		}
	}

	var cmd tea.Cmd
	switch {
	case m.step == StepDetails && m.focusIndex == 0:
		m.businessName, cmd = m.businessName.Update(msg)
	case m.step == StepDetails && m.focusIndex == 1:
		m.email, cmd = m.email.Update(msg)
	case m.step == StepDetails && m.focusIndex == 2:
		m.phone, cmd = m.phone.Update(msg)
	case m.step == StepPassword && m.focusIndex == 0:
		m.password, cmd = m.password.Update(msg)
	case m.step == StepPassword && m.focusIndex == 1:
		m.confirm, cmd = m.confirm.Update(msg)
	}
	return m, cmd
}

func (m RegisterModel) handleEnter() (RegisterModel, tea.Cmd) {
	switch m.step {
	case StepDetails:
		if m.focusIndex < 2 {
			m.focusIndex++
			return m, m.focusField()
		}
		m.stepErrors = validation.ValidateFields([]validation.FieldSpec{
			{Name: "business_name", Value: m.businessName.Value(), Rules: registerRules["business_name"]},
			{Name: "email", Value: m.email.Value(), Rules: registerRules["email"]},
			{Name: "phone", Value: m.phone.Value(), Rules: registerRules["phone"]},
		})
		if m.stepErrors.HasErrors() {
			return m, nil
		}
		m.step = StepPassword
		m.focusIndex = 0
		return m, m.focusField()

	case StepPassword:
		if m.focusIndex == 0 {
			m.focusIndex = 1
			return m, m.focusField()
		}

		// Matching passwords is a cross-field concern checked here at
		// the screen, not a field rule
		if m.password.Value() != m.confirm.Value() {
			m.confirmErr = "Passwords do not match"
			return m, nil
		}
		m.confirmErr = ""

		values := map[string]string{
			"business_name": m.businessName.Value(),
			"email":         m.email.Value(),
			"phone":         m.phone.Value(),
			"password":      m.password.Value(),
		}
		cmd, invoked := m.controller.Submit(values)
		if invoked {
			return m, cmd
		}
		// A field from an earlier step failed; jump back so it is visible
		for _, name := range []string{"business_name", "email", "phone"} {
			if m.controller.FieldError(name) != "" {
				m.step = StepDetails
				m.focusIndex = 0
				return m, m.focusField()
			}
		}
		return m, nil
	}

	return m, nil
}

func (m RegisterModel) fieldCount() int {
	if m.step == StepDetails {
		return 3
	}
	return 2
}

func (m *RegisterModel) focusField() tea.Cmd {
	m.businessName.Blur()
	m.email.Blur()
	m.phone.Blur()
	m.password.Blur()
	m.confirm.Blur()

	switch {
	case m.step == StepDetails && m.focusIndex == 0:
		return m.businessName.Focus()
	case m.step == StepDetails && m.focusIndex == 1:
		return m.email.Focus()
	case m.step == StepDetails && m.focusIndex == 2:
		return m.phone.Focus()
	case m.step == StepPassword && m.focusIndex == 0:
		return m.password.Focus()
	default:
		return m.confirm.Focus()
	}
}

func (m *RegisterModel) submit(values map[string]string) tea.Cmd {
	req := api.RegisterRequest{
		BusinessName: values["business_name"],
		Email:        values["email"],
		Phone:        values["phone"],
		Password:     values["password"],
	}
	return func() tea.Msg {
		result, err := m.client.Register(req)
		return registerResultMsg{result: result, err: err}
	}
}

func (m RegisterModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Blue)).
		Bold(true).
		Padding(1, 0)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text)).
		Bold(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Red))

	successStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Green))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	var content string
	content += titleStyle.Render("Create Your Store") + "\n"
	content += helpStyle.Render(utils.FormatStepIndicator(int(m.step), len(registerSteps), registerSteps)) + "\n\n"

	fieldError := func(name string) string {
		if err := m.controller.FieldError(name); err != "" {
			return err
		}
		return m.stepErrors[name]
	}

	renderField := func(label string, input textinput.Model, errText string) string {
		out := labelStyle.Render(label) + "\n" + input.View() + "\n"
		if errText != "" {
			out += errorStyle.Render("✗ "+errText) + "\n"
		}
		return out + "\n"
	}

	switch m.step {
	case StepDetails:
		content += renderField("Business Name:", m.businessName, fieldError("business_name"))
		content += renderField("Email:", m.email, fieldError("email"))
		content += renderField("WhatsApp Phone:", m.phone, fieldError("phone"))
		content += helpStyle.Render("Buyers will reach you on this number")

	case StepPassword:
		content += renderField("Password:", m.password, fieldError("password"))
		content += renderField("Confirm Password:", m.confirm, m.confirmErr)
		if m.controller.Submitting() {
			content += m.spinner.View() + "\n"
		}

	case StepComplete:
		content += successStyle.Render("✓ Your store is ready!") + "\n\n"
		content += helpStyle.Render("Taking you to your dashboard...")
	}

	content += "\n\n" + helpStyle.Render("Enter: continue • Tab: next field • Esc: back")

	return content
}
