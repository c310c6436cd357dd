package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/audit"
	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/utils"
	"tundeajayi/vendaterm/internal/whatsapp"
)

// status filter cycle for the f key, "" shows everything
var orderFilters = []models.OrderStatus{
	"",
	models.OrderPending,
	models.OrderConfirmed,
	models.OrderShipped,
	models.OrderDelivered,
	models.OrderCancelled,
}

type OrdersModel struct {
	client  *api.Client
	toasts  *notify.Store
	auditor *audit.Auditor
	vendor  *models.Vendor

	orders      *models.OrderList
	filtered    []models.Order
	filterIndex int
	selected    int

	showDetails bool
	advancing   bool
	advanceOpts []models.OrderStatus
	advanceIdx  int

	loading bool
	loadErr error
	spinner *utils.Spinner
}

type ordersLoadedMsg struct {
	orders *models.OrderList
	err    error
}

type orderAdvancedMsg struct {
	order *models.Order
	err   error
}

func NewOrdersModel(client *api.Client, toasts *notify.Store, auditor *audit.Auditor, vendor *models.Vendor) *OrdersModel {
	return &OrdersModel{
		client:  client,
		toasts:  toasts,
		auditor: auditor,
		vendor:  vendor,
		spinner: utils.NewSpinner("Loading orders..."),
	}
}

func (m *OrdersModel) Init() tea.Cmd {
	m.loading = true
	return m.loadOrders()
}

func (m OrdersModel) Update(msg tea.Msg) (OrdersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.advancing {
			switch msg.String() {
			case "up", "k":
				if m.advanceIdx > 0 {
					m.advanceIdx--
				}
			case "down", "j":
				if m.advanceIdx < len(m.advanceOpts)-1 {
					m.advanceIdx++
				}
			case "enter":
				m.advancing = false
				if o := m.selectedOrder(); o != nil {
					return m, m.advanceOrder(o.ID, m.advanceOpts[m.advanceIdx])
				}
			case "esc", "q":
				m.advancing = false
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
		case "f":
			m.filterIndex = (m.filterIndex + 1) % len(orderFilters)
			m.applyFilter()
		case "enter":
			m.showDetails = !m.showDetails
		case "s":
			if o := m.selectedOrder(); o != nil {
				opts := o.NextStatuses()
				if len(opts) == 0 {
					m.toasts.Warning(fmt.Sprintf("Order is already %s", o.Status))
					return m, nil
				}
				m.advancing = true
				m.advanceOpts = opts
				m.advanceIdx = 0
			}
		case "r":
			if !m.loading {
				m.loading = true
				return m, m.loadOrders()
			}
		}

	case ordersLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.orders = msg.orders
			m.applyFilter()
		}

	case orderAdvancedMsg:
		if msg.err != nil {
			m.toasts.Error(api.Classify(msg.err).UserMessage())
			return m, nil
		}
		m.auditor.Record(audit.ActionOrderStatus, msg.order.ID,
			fmt.Sprintf("Order from %s marked %s", msg.order.CustomerName, msg.order.Status), nil)
		m.toasts.Success(fmt.Sprintf("Order marked %s", msg.order.Status))
		m.loading = true
		return m, m.loadOrders()
	}

	return m, nil
}

func (m *OrdersModel) applyFilter() {
	if m.orders == nil {
		m.filtered = nil
		return
	}
	m.filtered = m.orders.FilterByStatus(orderFilters[m.filterIndex])
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

func (m *OrdersModel) selectedOrder() *models.Order {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return nil
	}
	o := m.filtered[m.selected]
	return &o
}

func (m *OrdersModel) loadOrders() tea.Cmd {
	return func() tea.Msg {
		orders, err := m.client.GetOrders()
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (m *OrdersModel) advanceOrder(id string, to models.OrderStatus) tea.Cmd {
	return func() tea.Msg {
		order, err := m.client.UpdateOrderStatus(id, to)
		return orderAdvancedMsg{order: order, err: err}
	}
}

func (m OrdersModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Blue)).
		Bold(true)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Red))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Orders"))

	filter := orderFilters[m.filterIndex]
	if filter != "" {
		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.OrderStatusColour(string(filter)))).
			Bold(true)
		content.WriteString("  " + badge.Render("["+string(filter)+"]"))
	}
	content.WriteString("\n\n")

	switch {
	case m.loading:
		content.WriteString(m.spinner.View())
	case m.loadErr != nil:
		content.WriteString(errorStyle.Render("✗ " + api.Classify(m.loadErr).UserMessage()))
		content.WriteString("\n" + helpStyle.Render("Press r to retry"))
	case len(m.filtered) == 0 && filter != "":
		content.WriteString(helpStyle.Render(fmt.Sprintf("No %s orders", filter)))
	case len(m.filtered) == 0:
		content.WriteString(helpStyle.Render("No orders yet. Share your storefront link to get your first one."))
	default:
		content.WriteString(m.renderList())
	}

	if m.advancing {
		content.WriteString("\n\n")
		content.WriteString(m.renderAdvanceMenu())
	} else if m.showDetails {
		if o := m.selectedOrder(); o != nil {
			content.WriteString("\n\n")
			content.WriteString(m.renderDetails(o))
		}
	}

	content.WriteString("\n\n")
	content.WriteString(helpStyle.Render("Enter: details • s: update status • f: filter • r: refresh • Esc: back"))

	return content.String()
}

func (m OrdersModel) renderList() string {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Green)).
		Background(lipgloss.Color(utils.Colours.Surface0)).
		Bold(true)
	totalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Subtext1))
	timeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	var b strings.Builder
	for i, o := range m.filtered {
		cursor := "  "
		style := nameStyle
		if i == m.selected {
			cursor = "> "
			style = selectedStyle
		}

		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.OrderStatusColour(string(o.Status)))).
			Bold(true).
			Render("● " + string(o.Status))

		line := cursor + style.Render(utils.TruncateText(o.CustomerName, 24))
		line += "  " + totalStyle.Render(o.DisplayTotal())
		line += "  " + totalStyle.Render(utils.FormatCount(o.ItemCount(), "item", "items"))
		line += "  " + badge
		line += "  " + timeStyle.Render(utils.FormatRelativeTime(o.CreatedAt))

		b.WriteString(line)
		if i < len(m.filtered)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m OrdersModel) renderDetails(o *models.Order) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(utils.OrderStatusColour(string(o.Status)))).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0))
	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text))
	linkStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Teal)).
		Underline(true)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Customer: "))
	b.WriteString(valueStyle.Render(o.CustomerName))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(utils.FormatPhone(o.CustomerPhone)))
	b.WriteString("\n")

	for _, item := range o.Items {
		b.WriteString(valueStyle.Render(fmt.Sprintf("  %dx %s", item.Quantity, item.ProductName)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(models.FormatPrice(item.UnitPrice * int64(item.Quantity))))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Total: "))
	b.WriteString(valueStyle.Render(o.DisplayTotal()))
	if o.Note != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Note: "))
		b.WriteString(valueStyle.Render(o.Note))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Follow up: "))
	b.WriteString(linkStyle.Render(whatsapp.OrderFollowUp(o)))

	return boxStyle.Render(b.String())
}

func (m OrdersModel) renderAdvanceMenu() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Mauve)).
		Bold(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Move order to:"))
	for i, s := range m.advanceOpts {
		b.WriteString("\n")
		cursor := "  "
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.OrderStatusColour(string(s))))
		if i == m.advanceIdx {
			cursor = "> "
			style = style.Bold(true)
		}
		b.WriteString(cursor + style.Render(string(s)))
	}
	return b.String()
}
