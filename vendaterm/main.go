package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tundeajayi/vendaterm/internal/api"
	"tundeajayi/vendaterm/internal/audit"
	"tundeajayi/vendaterm/internal/config"
	"tundeajayi/vendaterm/internal/notify"
	"tundeajayi/vendaterm/internal/session"
	"tundeajayi/vendaterm/internal/storage"
	"tundeajayi/vendaterm/internal/views"
)

func main() {
	if config.IsDebugEnabled() {
		f, err := tea.LogToFile("vendaterm-debug.log", "debug")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	store, err := storage.NewStorage()
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	apiConfig, err := config.LoadAPIConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	client, err := api.NewClient(apiConfig.ToClientConfig())
	if err != nil {
		fmt.Printf("Error initializing API client: %v\n", err)
		os.Exit(1)
	}

	auditDir, err := store.AuditDir()
	if err != nil {
		fmt.Printf("Error preparing activity log: %v\n", err)
		os.Exit(1)
	}
	auditor, err := audit.NewAuditor(auditDir)
	if err != nil {
		fmt.Printf("Error initializing activity log: %v\n", err)
		os.Exit(1)
	}
	defer auditor.Shutdown()

	sessions := session.NewManager(store)
	defer sessions.Shutdown()

	toasts := notify.NewStore()
	defer toasts.Shutdown()

	app := views.NewAppModel(client, store, sessions, toasts, auditor)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Toast timers fire off the event loop; poke the program so expired
	// ones leave the screen without waiting for a keypress
	toasts.SetOnChange(func() {
		p.Send(views.ToastsChangedMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
