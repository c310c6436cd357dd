package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/audit"
	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/session"
	"tundeajayi/vendaterm/internal/utils"
	"tundeajayi/vendaterm/internal/whatsapp"
)

type DashboardModel struct {
	client   *api.Client
	auditor  *audit.Auditor
	sessions *session.Manager
	vendor   *models.Vendor

	catalog *models.Catalog
	orders  *models.OrderList
	recent  []audit.Entry

	loading  bool
	loadErr  error
	spinner  *utils.Spinner
	selected int

	menuItems []string

	width int
}

type dashboardDataMsg struct {
	catalog *models.Catalog
	orders  *models.OrderList
	recent  []audit.Entry
	err     error
}

func NewDashboardModel(client *api.Client, auditor *audit.Auditor, sessions *session.Manager, vendor *models.Vendor) *DashboardModel {
	return &DashboardModel{
		client:   client,
		auditor:  auditor,
		sessions: sessions,
		vendor:   vendor,
		spinner: utils.NewSpinner("Loading your store..."),
		menuItems: []string{
			"Products",
			"Orders",
			"Profile",
			"Log Out",
		},
	}
}

func (m *DashboardModel) SetVendor(vendor *models.Vendor) {
	m.vendor = vendor
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	return m.loadData()
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.menuItems)-1 {
				m.selected++
			}
		case "enter", " ":
			switch m.selected {
			case 0:
				return m, NavigateTo(ViewProducts, nil)
			case 1:
				return m, NavigateTo(ViewOrders, nil)
			case 2:
				return m, NavigateTo(ViewProfile, nil)
			case 3:
				return m, m.logout()
			}
		case "r":
			if !m.loading {
				m.loading = true
				return m, m.loadData()
			}
		case "p":
			return m, NavigateTo(ViewProducts, nil)
		case "o":
			return m, NavigateTo(ViewOrders, nil)
		}

	case dashboardDataMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.catalog = msg.catalog
			m.orders = msg.orders
			m.recent = msg.recent
		}
	}

	return m, nil
}

func (m *DashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		m.client.CheckConnection()
		catalog, err := m.client.GetProducts()
		if err != nil {
			return dashboardDataMsg{err: err}
		}
		orders, err := m.client.GetOrders()
		if err != nil {
			return dashboardDataMsg{err: err}
		}
		recent, _ := m.auditor.Recent(5)
		return dashboardDataMsg{catalog: catalog, orders: orders, recent: recent}
	}
}

func (m *DashboardModel) logout() tea.Cmd {
	return func() tea.Msg {
		// Best effort; the local session is cleared regardless
		m.client.Logout()
		return LoggedOutMsg{}
	}
}

func (m DashboardModel) View() string {
	containerStyle := lipgloss.NewStyle().
		Padding(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(utils.Colours.Blue))

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Blue)).
		Bold(true)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Red))

	var content strings.Builder

	name := "Your Store"
	if m.vendor != nil {
		name = m.vendor.BusinessName
	}
	content.WriteString(titleStyle.Render(name))
	status := m.client.GetStatus()
	if !status.LastChecked.IsZero() {
		dot := "● offline"
		colour := utils.Colours.Red
		if status.Connected {
			dot = "● online"
			colour = utils.Colours.Green
		}
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colour))
		content.WriteString("  " + statusStyle.Render(dot))
	}
	content.WriteString("\n\n")

	if m.loading {
		content.WriteString(m.spinner.View())
		content.WriteString("\n\n")
	} else if m.loadErr != nil {
		content.WriteString(errorStyle.Render("✗ " + api.Classify(m.loadErr).UserMessage()))
		content.WriteString("\n")
		content.WriteString(helpStyle.Render("Press r to retry"))
		content.WriteString("\n\n")
	} else {
		content.WriteString(m.renderStatCards())
		content.WriteString("\n\n")
	}

	if m.vendor != nil && m.vendor.ContactNumber() != "" {
		linkStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Teal)).
			Underline(true)
		content.WriteString(helpStyle.Render("Share your storefront:"))
		content.WriteString("\n")
		content.WriteString(linkStyle.Render(whatsapp.Storefront(m.vendor)))
		content.WriteString("\n\n")
	}

	content.WriteString(m.renderMenu())
	content.WriteString("\n\n")

	if len(m.recent) > 0 {
		content.WriteString(m.renderRecentActivity())
		content.WriteString("\n\n")
	}

	if m.sessions != nil && m.sessions.Status() == session.StatusExpiring {
		warnStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Yellow)).
			Bold(true)
		content.WriteString(warnStyle.Render(fmt.Sprintf("Session expires in %s; any keypress extends it",
			utils.FormatDuration(m.sessions.TimeRemaining()))))
		content.WriteString("\n\n")
	}

	content.WriteString(helpStyle.Render("↑/↓: navigate • Enter: select • p: products • o: orders • r: refresh"))

	return containerStyle.Render(content.String())
}

func (m DashboardModel) renderStatCards() string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Align(lipgloss.Center)

	card := func(label, value, colour string) string {
		valueStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colour)).
			Bold(true)
		labelStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Subtext0))
		return cardStyle.BorderForeground(lipgloss.Color(colour)).
			Render(valueStyle.Render(value) + "\n" + labelStyle.Render(label))
	}

	productCount := 0
	lowStock := 0
	if m.catalog != nil {
		productCount = len(m.catalog.Products)
		lowStock = m.catalog.LowStockCount()
	}
	pending := 0
	if m.orders != nil {
		pending = m.orders.PendingCount()
	}

	lowStockColour := utils.Colours.Green
	if lowStock > 0 {
		lowStockColour = utils.Colours.Peach
	}
	pendingColour := utils.Colours.Green
	if pending > 0 {
		pendingColour = utils.Colours.Yellow
	}

	cards := []string{
		card("products", fmt.Sprintf("%d", productCount), utils.Colours.Blue),
		card("low stock", fmt.Sprintf("%d", lowStock), lowStockColour),
		card("pending orders", fmt.Sprintf("%d", pending), pendingColour),
	}

	if m.width > 0 && m.width < 60 {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m DashboardModel) renderMenu() string {
	itemStyle := lipgloss.NewStyle().Padding(0, 2)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Green)).
		Background(lipgloss.Color(utils.Colours.Surface0)).
		Padding(0, 2).
		Bold(true)

	var b strings.Builder
	for i, item := range m.menuItems {
		cursor := " "
		style := itemStyle
		if m.selected == i {
			cursor = ">"
			style = selectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s", cursor, item)))
		if i < len(m.menuItems)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m DashboardModel) renderRecentActivity() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Mauve)).
		Bold(true)
	entryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext1))
	timeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Recent Activity"))
	for _, e := range m.recent {
		b.WriteString("\n")
		b.WriteString(entryStyle.Render("• " + e.Describe()))
		b.WriteString(" ")
		b.WriteString(timeStyle.Render(utils.FormatRelativeTime(e.Timestamp)))
	}
	return b.String()
}
