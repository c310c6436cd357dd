package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/audit"
	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/session"
	"tundeajayi/vendaterm/internal/storage"
	"tundeajayi/vendaterm/internal/utils"
)

type ViewState int

const (
	ViewLogin ViewState = iota
	ViewRegister
	ViewDashboard
	ViewProducts
	ViewProductForm
	ViewOrders
	ViewProfile
)

type AppModel struct {
	state  ViewState
	width  int
	height int

	client   *api.Client
	storage  *storage.Storage
	sessions *session.Manager
	toasts   *notify.Store
	auditor  *audit.Auditor

	vendor *models.Vendor

	login       *LoginModel
	register    *RegisterModel
	dashboard   *DashboardModel
	products    *ProductsModel
	productForm *ProductFormModel
	orders      *OrdersModel
	profile     *ProfileModel

	err error
}

type NavigateMsg struct {
	State ViewState
	Data  interface{}
}

type ErrorMsg struct {
	Err error
}

// LoggedInMsg carries a fresh login or a restored session into the app
type LoggedInMsg struct {
	Vendor   *models.Vendor
	Token    string
	Restored bool
}

type LoggedOutMsg struct{}

// ToastsChangedMsg is sent from outside the event loop whenever the
// notification store mutates, so expired toasts disappear on time
type ToastsChangedMsg struct{}

func NewAppModel(client *api.Client, store *storage.Storage, sessions *session.Manager, toasts *notify.Store, auditor *audit.Auditor) *AppModel {
	app := &AppModel{
		state:    ViewLogin,
		client:   client,
		storage:  store,
		sessions: sessions,
		toasts:   toasts,
		auditor:  auditor,
	}

	app.login = NewLoginModel(client, store, toasts)
	app.register = NewRegisterModel(client, toasts)

	return app
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.restoreSession(), m.login.Init())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.vendor != nil {
			m.sessions.Touch()
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.vendor != nil && m.state != ViewDashboard && !m.escBelongsToChild() {
				return m.navigateTo(ViewDashboard, nil)
			}
		}

	case NavigateMsg:
		return m.navigateTo(msg.State, msg.Data)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ToastsChangedMsg:
		return m, nil

	case LoggedInMsg:
		m.vendor = msg.Vendor
		if !msg.Restored {
			if _, err := m.sessions.Create(msg.Token, msg.Vendor); err != nil {
				m.toasts.Warning("Could not save your session; you will need to log in again next time")
			}
			m.auditor.Record(audit.ActionLogin, msg.Vendor.ID, "Logged in", nil)
			m.toasts.Success(fmt.Sprintf("Welcome back, %s", msg.Vendor.BusinessName))
		}
		return m.navigateTo(ViewDashboard, nil)

	case LoggedOutMsg:
		if m.vendor != nil {
			m.auditor.Record(audit.ActionLogout, m.vendor.ID, "Logged out", nil)
		}
		m.vendor = nil
		m.sessions.Close()
		m.dashboard = nil
		m.products = nil
		m.orders = nil
		m.profile = nil
		m.login = NewLoginModel(m.client, m.storage, m.toasts)
		return m.navigateTo(ViewLogin, nil)
	}

	switch m.state {
	case ViewLogin:
		if m.login != nil {
			*m.login, cmd = m.login.Update(msg)
		}
	case ViewRegister:
		if m.register != nil {
			*m.register, cmd = m.register.Update(msg)
		}
	case ViewDashboard:
		if m.dashboard != nil {
			*m.dashboard, cmd = m.dashboard.Update(msg)
		}
	case ViewProducts:
		if m.products != nil {
			*m.products, cmd = m.products.Update(msg)
		}
	case ViewProductForm:
		if m.productForm != nil {
			*m.productForm, cmd = m.productForm.Update(msg)
		}
	case ViewOrders:
		if m.orders != nil {
			*m.orders, cmd = m.orders.Update(msg)
		}
	case ViewProfile:
		if m.profile != nil {
			*m.profile, cmd = m.profile.Update(msg)
		}
	}

	return m, cmd
}

// escBelongsToChild reports whether the active screen uses esc itself
// right now, so the back-to-dashboard shortcut yields to it
func (m AppModel) escBelongsToChild() bool {
	switch m.state {
	case ViewRegister:
		return true
	case ViewProducts:
		return m.products != nil && (m.products.searching || m.products.confirmingID != "")
	case ViewOrders:
		return m.orders != nil && m.orders.advancing
	}
	return false
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content string

	switch m.state {
	case ViewLogin:
		if m.login != nil {
			content = m.login.View()
		}
	case ViewRegister:
		if m.register != nil {
			content = m.register.View()
		}
	case ViewDashboard:
		if m.dashboard != nil {
			content = m.dashboard.View()
		}
	case ViewProducts:
		if m.products != nil {
			content = m.products.View()
		}
	case ViewProductForm:
		if m.productForm != nil {
			content = m.productForm.View()
		}
	case ViewOrders:
		if m.orders != nil {
			content = m.orders.View()
		}
	case ViewProfile:
		if m.profile != nil {
			content = m.profile.View()
		}
	default:
		content = "Unknown view"
	}

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Red)).
			Bold(true).
			Padding(1)
		content += "\n" + errorStyle.Render(fmt.Sprintf("Error: %s", m.err.Error()))
	}

	if overlay := RenderToasts(m.toasts, m.width); overlay != "" {
		content += "\n" + overlay
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m AppModel) navigateTo(state ViewState, data interface{}) (tea.Model, tea.Cmd) {
	m.state = state
	m.err = nil

	var cmd tea.Cmd

	switch state {
	case ViewRegister:
		m.register = NewRegisterModel(m.client, m.toasts)
	case ViewDashboard:
		if m.dashboard == nil {
			m.dashboard = NewDashboardModel(m.client, m.auditor, m.sessions, m.vendor)
		} else {
			m.dashboard.SetVendor(m.vendor)
		}
		cmd = m.dashboard.Init()
	case ViewProducts:
		if m.products == nil {
			m.products = NewProductsModel(m.client, m.toasts, m.auditor, m.vendor)
		}
		cmd = m.products.Init()
	case ViewProductForm:
		product, _ := data.(*models.Product)
		m.productForm = NewProductFormModel(m.client, m.toasts, m.auditor, product)
		cmd = m.productForm.Init()
	case ViewOrders:
		if m.orders == nil {
			m.orders = NewOrdersModel(m.client, m.toasts, m.auditor, m.vendor)
		}
		cmd = m.orders.Init()
	case ViewProfile:
		m.profile = NewProfileModel(m.client, m.toasts, m.auditor, m.vendor)
		cmd = m.profile.Init()
	}

	return m, cmd
}

func (m AppModel) restoreSession() tea.Cmd {
	return func() tea.Msg {
		vs, ok := m.sessions.Restore()
		if !ok {
			return nil
		}
		m.client.SetToken(vs.Token.Reveal())
		return LoggedInMsg{
			Vendor: &models.Vendor{
				ID:           vs.VendorID,
				BusinessName: vs.BusinessName,
				Email:        vs.Email,
			},
			Token:    vs.Token.Reveal(),
			Restored: true,
		}
	}
}

func NavigateTo(state ViewState, data interface{}) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{State: state, Data: data}
	}
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
