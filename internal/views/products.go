package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/audit"
	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/utils"
	"tundeajayi/vendaterm/internal/whatsapp"
)

type ProductsModel struct {
	client  *api.Client
	toasts  *notify.Store
	auditor *audit.Auditor
	vendor  *models.Vendor

	catalog  *models.Catalog
	filtered []models.Product
	selected int

	searchInput  textinput.Model
	searching    bool
	showLink     bool
	confirmingID string

	loading bool
	loadErr error
	spinner *utils.Spinner

	width  int
	height int
}

type productsLoadedMsg struct {
	catalog *models.Catalog
	err     error
}

type productDeletedMsg struct {
	id   string
	name string
	err  error
}

func NewProductsModel(client *api.Client, toasts *notify.Store, auditor *audit.Auditor, vendor *models.Vendor) *ProductsModel {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.CharLimit = 50
	search.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Blue))

	return &ProductsModel{
		client:      client,
		toasts:      toasts,
		auditor:     auditor,
		vendor:      vendor,
		searchInput: search,
		spinner:     utils.NewSpinner("Loading products..."),
	}
}

func (m *ProductsModel) Init() tea.Cmd {
	m.loading = true
	return m.loadProducts()
}

func (m ProductsModel) Update(msg tea.Msg) (ProductsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter", "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		if m.confirmingID != "" {
			switch msg.String() {
			case "y", "Y":
				id := m.confirmingID
				m.confirmingID = ""
				return m, m.deleteProduct(id)
			default:
				m.confirmingID = ""
				return m, nil
			}
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
		case "/":
			m.searching = true
			return m, m.searchInput.Focus()
		case "n":
			return m, NavigateTo(ViewProductForm, nil)
		case "e", "enter":
			if p := m.selectedProduct(); p != nil {
				return m, NavigateTo(ViewProductForm, p)
			}
		case "d":
			if p := m.selectedProduct(); p != nil {
				m.confirmingID = p.ID
			}
		case "w":
			m.showLink = !m.showLink
		case "r":
			if !m.loading {
				m.loading = true
				return m, m.loadProducts()
			}
		}

	case productsLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.catalog = msg.catalog
			m.applyFilter()
			if m.selected >= len(m.filtered) {
				m.selected = 0
			}
		}

	case productDeletedMsg:
		if msg.err != nil {
			m.toasts.Error(api.Classify(msg.err).UserMessage())
			return m, nil
		}
		m.auditor.Record(audit.ActionProductDelete, msg.id, fmt.Sprintf("Deleted %q", msg.name), nil)
		m.toasts.Success(fmt.Sprintf("Deleted %q", msg.name))
		m.loading = true
		return m, m.loadProducts()
	}

	return m, nil
}

func (m *ProductsModel) applyFilter() {
	if m.catalog == nil {
		m.filtered = nil
		return
	}
	m.filtered = m.catalog.Search(m.searchInput.Value())
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

func (m *ProductsModel) selectedProduct() *models.Product {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return nil
	}
	p := m.filtered[m.selected]
	return &p
}

func (m *ProductsModel) loadProducts() tea.Cmd {
	return func() tea.Msg {
		catalog, err := m.client.GetProducts()
		return productsLoadedMsg{catalog: catalog, err: err}
	}
}

func (m *ProductsModel) deleteProduct(id string) tea.Cmd {
	name := id
	if m.catalog != nil {
		if p := m.catalog.FindByID(id); p != nil {
			name = p.Name
		}
	}
	return func() tea.Msg {
		err := m.client.DeleteProduct(id)
		return productDeletedMsg{id: id, name: name, err: err}
	}
}

func (m ProductsModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Blue)).
		Bold(true)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Red))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Yellow)).
		Bold(true)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Products"))
	if m.catalog != nil {
		countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Subtext0))
		content.WriteString("  " + countStyle.Render(utils.FormatCount(len(m.catalog.Products), "product", "products")))
	}
	content.WriteString("\n\n")

	if m.searching || m.searchInput.Value() != "" {
		content.WriteString(m.searchInput.View())
		content.WriteString("\n\n")
	}

	switch {
	case m.loading:
		content.WriteString(m.spinner.View())
	case m.loadErr != nil:
		content.WriteString(errorStyle.Render("✗ " + api.Classify(m.loadErr).UserMessage()))
		content.WriteString("\n" + helpStyle.Render("Press r to retry"))
	case len(m.filtered) == 0 && m.searchInput.Value() != "":
		content.WriteString(helpStyle.Render("No products match your search"))
	case len(m.filtered) == 0:
		content.WriteString(helpStyle.Render("No products yet. Press n to add your first one."))
	default:
		content.WriteString(m.renderList())
	}

	if m.confirmingID != "" {
		name := m.confirmingID
		if m.catalog != nil {
			if p := m.catalog.FindByID(m.confirmingID); p != nil {
				name = p.Name
			}
		}
		content.WriteString("\n\n")
		content.WriteString(warningStyle.Render(fmt.Sprintf("Delete %q? This cannot be undone. (y/N)", name)))
	}

	if m.showLink {
		if p := m.selectedProduct(); p != nil && m.vendor != nil {
			linkStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(utils.Colours.Teal)).
				Underline(true)
			content.WriteString("\n\n")
			content.WriteString(helpStyle.Render("Enquiry link for buyers:"))
			content.WriteString("\n")
			content.WriteString(linkStyle.Render(whatsapp.ProductEnquiry(m.vendor, p)))
		}
	}

	content.WriteString("\n\n")
	content.WriteString(helpStyle.Render("n: new • e: edit • d: delete • w: share link • /: search • r: refresh • Esc: back"))

	return content.String()
}

func (m ProductsModel) renderList() string {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Green)).
		Background(lipgloss.Color(utils.Colours.Surface0)).
		Bold(true)
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Subtext1))
	categoryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Lavender)).
		Italic(true)

	var b strings.Builder
	for i, p := range m.filtered {
		cursor := "  "
		style := nameStyle
		if i == m.selected {
			cursor = "> "
			style = selectedStyle
		}

		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.StockColour(p.IsOutOfStock(), p.IsLowStock()))).
			Render("● " + p.StockLabel())

		line := cursor + style.Render(utils.TruncateText(p.Name, 30))
		line += "  " + priceStyle.Render(p.DisplayPrice())
		line += "  " + badge
		if p.Category != "" {
			line += "  " + categoryStyle.Render(p.Category)
		}

		b.WriteString(line)
		if i < len(m.filtered)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
