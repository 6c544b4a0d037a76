package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/llmgate/promptcheck/chat"
	"github.com/llmgate/promptcheck/checkclient"
	"github.com/llmgate/promptcheck/internal/config"
	"github.com/llmgate/promptcheck/tui"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "default"
	}

	config, err := config.LoadConfig(env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	serviceUrl := config.Client.ServiceUrl
	if len(os.Args) > 1 {
		serviceUrl = os.Args[1]
	}

	// the alt screen owns the terminal; keep log output out of it
	if logPath := os.Getenv("PROMPTCHECK_TUI_LOG"); logPath != "" {
		f, err := tea.LogToFile(logPath, "promptcheck")
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client := checkclient.NewClient(serviceUrl, time.Duration(config.Client.TimeoutSeconds)*time.Second)
	session := chat.NewSession(client)

	p := tea.NewProgram(tui.NewModel(context.Background(), session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
