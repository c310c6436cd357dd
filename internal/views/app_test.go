package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/audit"
	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/session"
	"tundeajayi/vendaterm/internal/storage"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()

	store, err := storage.NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorageAt: %v", err)
	}

	client, err := api.NewClient(api.Config{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	auditDir, err := store.AuditDir()
	if err != nil {
		t.Fatalf("AuditDir: %v", err)
	}
	auditor, err := audit.NewAuditor(auditDir)
	if err != nil {
		t.Fatalf("NewAuditor: %v", err)
	}
	t.Cleanup(func() { _ = auditor.Shutdown() })

	sessions := session.NewManager(store)
	t.Cleanup(sessions.Shutdown)

	toasts := notify.NewStore()
	t.Cleanup(toasts.Shutdown)

	return *NewAppModel(client, store, sessions, toasts, auditor)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	app, ok := model.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", model)
	}
	return app, cmd
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func TestEscOnRegisterStaysLoggedOut(t *testing.T) {
	app := newTestApp(t)

	app, _ = update(t, app, NavigateMsg{State: ViewRegister})
	if app.state != ViewRegister {
		t.Fatalf("state = %v, want ViewRegister", app.state)
	}

	app, cmd := update(t, app, escKey())

	if app.state == ViewDashboard {
		t.Fatal("esc on the register screen opened the dashboard with nobody logged in")
	}
	if cmd == nil {
		t.Fatal("register screen should handle esc itself")
	}
	msg := cmd()
	nav, ok := msg.(NavigateMsg)
	if !ok || nav.State != ViewLogin {
		t.Errorf("esc on the details step should return to login, got %#v", msg)
	}
}

func TestEscReturnsToDashboardWhenLoggedIn(t *testing.T) {
	app := newTestApp(t)

	vendor := &models.Vendor{ID: "v1", BusinessName: "Ada Store", Email: "ada@example.com"}
	app, _ = update(t, app, LoggedInMsg{Vendor: vendor, Token: "tok", Restored: true})
	if app.state != ViewDashboard {
		t.Fatalf("state after login = %v, want ViewDashboard", app.state)
	}

	app, _ = update(t, app, NavigateMsg{State: ViewOrders})
	app, _ = update(t, app, escKey())

	if app.state != ViewDashboard {
		t.Errorf("state after esc = %v, want ViewDashboard", app.state)
	}
}

func TestEscYieldsToProductSearch(t *testing.T) {
	app := newTestApp(t)

	vendor := &models.Vendor{ID: "v1", BusinessName: "Ada Store", Email: "ada@example.com"}
	app, _ = update(t, app, LoggedInMsg{Vendor: vendor, Token: "tok", Restored: true})
	app, _ = update(t, app, NavigateMsg{State: ViewProducts})

	app.products.searching = true
	app, _ = update(t, app, escKey())

	if app.state != ViewProducts {
		t.Fatalf("esc while searching left the products screen, state = %v", app.state)
	}
	if app.products.searching {
		t.Error("esc should close the search box")
	}

	app, _ = update(t, app, escKey())
	if app.state != ViewDashboard {
		t.Errorf("second esc should return to the dashboard, state = %v", app.state)
	}
}
