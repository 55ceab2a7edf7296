package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"redemption-index/internal/domain"
	"redemption-index/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

var (
	loadEnvFunc    = godotenv.Load
	runProgramFunc = func(m tea.Model, opts ...tea.ProgramOption) error {
		_, err := tea.NewProgram(m, opts...).Run()
		return err
	}
)

func fetchReport(client *http.Client, baseURL string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Get(baseURL + "/api/index")
		if err != nil {
			return watch.ReportLoaded{Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return watch.ReportLoaded{Err: fmt.Errorf("unexpected status %d from %s", resp.StatusCode, baseURL)}
		}

		var report domain.IndexReport
		if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
			return watch.ReportLoaded{Err: err}
		}
		return watch.ReportLoaded{Report: report}
	}
}

func main() {
	loadEnvFunc()

	baseURL := strings.TrimRight(os.Getenv("INDEX_API_URL"), "/")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &http.Client{Timeout: 10 * time.Second}
	model := watch.NewModel(func() tea.Cmd {
		return fetchReport(client, baseURL)
	})

	if err := runProgramFunc(model, tea.WithAltScreen()); err != nil {
		log.Fatalf("watch exited with error: %v", err)
	}
}
