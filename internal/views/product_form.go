package views

import (
	"fmt"
	"strconv"
	"strings"

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

// field order on the product form
const (
	productFieldName = iota
	productFieldDescription
	productFieldPrice
	productFieldStock
	productFieldThreshold
	productFieldCategory
	productFieldCount
)

var productRules = map[string][]validation.Rule{
	"name": {
		validation.Required("Product name is required"),
		validation.MinLength(2, "Name must be at least 2 characters"),
		validation.MaxLength(80, "Name must be at most 80 characters"),
	},
	"description": {
		validation.MaxLength(500, "Description must be at most 500 characters"),
	},
	"price": {
		validation.Required("Price is required"),
		validation.Custom(validation.PredicatePrice, "Enter a positive amount like 1500 or 1500.50"),
	},
	"stock": {
		validation.Required("Stock is required"),
		validation.Custom(validation.PredicateQuantity, "Enter a whole number, 0 or more"),
	},
	"threshold": {
		validation.Custom(validation.PredicateQuantity, "Enter a whole number, 0 or more"),
	},
	"category": {
		validation.MaxLength(40, "Category must be at most 40 characters"),
	},
}

type ProductFormModel struct {
	client  *api.Client
	toasts  *notify.Store
	auditor *audit.Auditor

	// nil means creating, otherwise editing this product
	editing *models.Product

	inputs     [productFieldCount]textinput.Model
	focusIndex int
	controller *validation.Controller[tea.Cmd]
	spinner    *utils.Spinner
	submitErr  string
}

type productSavedMsg struct {
	product *models.Product
	created bool
	err     error
}

func NewProductFormModel(client *api.Client, toasts *notify.Store, auditor *audit.Auditor, editing *models.Product) *ProductFormModel {
	m := &ProductFormModel{
		client:  client,
		toasts:  toasts,
		auditor: auditor,
		editing: editing,
		spinner: utils.NewSpinner("Saving..."),
	}

	placeholders := [productFieldCount]string{
		"Ankara tote bag",
		"Optional description",
		"1500.00",
		"10",
		fmt.Sprintf("low-stock alert, default %d", models.DefaultLowStockThreshold),
		"Bags",
	}
	limits := [productFieldCount]int{80, 500, 15, 6, 6, 40}

	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = limits[i]
		in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Blue))
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))
		m.inputs[i] = in
	}
	m.inputs[productFieldName].Focus()

	if editing != nil {
		m.inputs[productFieldName].SetValue(editing.Name)
		m.inputs[productFieldDescription].SetValue(editing.Description)
		// Plain decimal, no thousands separators, so it re-parses as typed
		m.inputs[productFieldPrice].SetValue(fmt.Sprintf("%d.%02d", editing.Price/100, editing.Price%100))
		m.inputs[productFieldStock].SetValue(strconv.Itoa(editing.Stock))
		if editing.LowStockThreshold > 0 {
			m.inputs[productFieldThreshold].SetValue(strconv.Itoa(editing.LowStockThreshold))
		}
		m.inputs[productFieldCategory].SetValue(editing.Category)
	}

	m.controller = validation.NewController(productRules, m.submit)

	return m
}

func (m ProductFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ProductFormModel) Update(msg tea.Msg) (ProductFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusIndex = (m.focusIndex + 1) % productFieldCount
			return m, m.focusField()

		case "shift+tab", "up":
			m.focusIndex = (m.focusIndex + productFieldCount - 1) % productFieldCount
			return m, m.focusField()

		case "enter":
			if m.focusIndex < productFieldCount-1 {
				m.focusIndex++
				return m, m.focusField()
			}
			m.submitErr = ""
			cmd, invoked := m.controller.Submit(m.values())
			if invoked {
				return m, cmd
			}
			return m, nil
		}

	case productSavedMsg:
		m.controller.Finish()
		if msg.err != nil {
			m.submitErr = api.Classify(msg.err).UserMessage()
			return m, nil
		}

		action := audit.ActionProductUpdate
		verb := "Updated"
		if msg.created {
			action = audit.ActionProductCreate
			verb = "Added"
		}
		m.auditor.Record(action, msg.product.ID, fmt.Sprintf("%s %q", verb, msg.product.Name), nil)
		m.toasts.Success(fmt.Sprintf("%s %q", verb, msg.product.Name))
		return m, NavigateTo(ViewProducts, nil)
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *ProductFormModel) focusField() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[m.focusIndex].Focus()
}

func (m *ProductFormModel) values() map[string]string {
	// Blank threshold means "use the default", sent as 0
	threshold := m.inputs[productFieldThreshold].Value()
	if strings.TrimSpace(threshold) == "" {
		threshold = "0"
	}
	return map[string]string{
		"name":        m.inputs[productFieldName].Value(),
		"description": m.inputs[productFieldDescription].Value(),
		"price":       m.inputs[productFieldPrice].Value(),
		"stock":       m.inputs[productFieldStock].Value(),
		"threshold":   threshold,
		"category":    m.inputs[productFieldCategory].Value(),
	}
}

func (m *ProductFormModel) submit(values map[string]string) tea.Cmd {
	// Values passed validation; coercion happens here at the boundary
	price, err := models.ParsePrice(values["price"])
	if err != nil {
		// No save is in flight on this branch, so unlock the form before
		// surfacing the error
		m.controller.Finish()
		return ShowError(fmt.Errorf("invalid price: %w", err))
	}
	stock, _ := strconv.Atoi(values["stock"])
	threshold := 0
	if values["threshold"] != "" {
		threshold, _ = strconv.Atoi(values["threshold"])
	}

	input := api.ProductInput{
		Name:              values["name"],
		Description:       values["description"],
		Price:             price,
		Stock:             stock,
		LowStockThreshold: threshold,
		Category:          values["category"],
	}

	editing := m.editing
	client := m.client
	return func() tea.Msg {
		if editing != nil {
			input.Currency = editing.Currency
			product, err := client.UpdateProduct(editing.ID, input)
			return productSavedMsg{product: product, err: err}
		}
		product, err := client.CreateProduct(input)
		return productSavedMsg{product: product, created: true, err: err}
	}
}

func (m ProductFormModel) View() string {
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

	title := "New Product"
	if m.editing != nil {
		title = fmt.Sprintf("Edit %s", utils.TruncateText(m.editing.Name, 30))
	}

	labels := [productFieldCount]string{
		"Name:", "Description:", "Price:", "Stock:", "Low Stock Alert:", "Category:",
	}
	errorKeys := [productFieldCount]string{
		"name", "description", "price", "stock", "threshold", "category",
	}

	var content string
	content += titleStyle.Render(title) + "\n\n"

	for i := range m.inputs {
		content += labelStyle.Render(labels[i]) + "\n"
		content += m.inputs[i].View() + "\n"
		if err := m.controller.FieldError(errorKeys[i]); err != "" {
			content += errorStyle.Render("✗ "+err) + "\n"
		}
		content += "\n"
	}

	if m.controller.Submitting() {
		content += m.spinner.View() + "\n"
	}

	if m.submitErr != "" {
		content += errorStyle.Render("✗ "+m.submitErr) + "\n"
	}

	content += "\n" + helpStyle.Render("Enter: next / save • Tab: next field • Esc: cancel")

	return content
}
