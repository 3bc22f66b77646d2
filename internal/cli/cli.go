package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal/internal/service"
)

// CLI is the interactive presentation layer. It collects raw form
// input, routes it into the core services and renders the derived
// views. All domain rules live in the services; the CLI only prompts,
// confirms and prints.
type CLI struct {
	scanner      *bufio.Scanner
	scholarships *service.ScholarshipService
	applications *service.ApplicationService
	analytics    *service.AnalyticsService
	auth         *service.AuthService
	exports      *service.ExportService
	logger       *zap.Logger
}

// New wires the CLI to the core services.
func New(scholarships *service.ScholarshipService, applications *service.ApplicationService, analytics *service.AnalyticsService, auth *service.AuthService, exports *service.ExportService, logger *zap.Logger) *CLI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLI{
		scanner:      bufio.NewScanner(os.Stdin),
		scholarships: scholarships,
		applications: applications,
		analytics:    analytics,
		auth:         auth,
		exports:      exports,
		logger:       logger,
	}
}

// Run drives the menu loop until the user exits.
func (c *CLI) Run() {
	color.Cyan("\n=== Scholarship Portal ===")
	for {
		if c.auth.IsAdmin() {
			if done := c.adminMenu(); done {
				return
			}
			continue
		}
		if done := c.studentMenu(); done {
			return
		}
	}
}

func (c *CLI) readLine(prompt string) string {
	fmt.Print(prompt)
	if c.scanner.Scan() {
		return strings.TrimSpace(c.scanner.Text())
	}
	return ""
}

// confirm asks a yes/no question; anything other than y/yes declines.
func (c *CLI) confirm(prompt string) bool {
	answer := strings.ToLower(c.readLine(prompt + " (y/N): "))
	return answer == "y" || answer == "yes"
}

// promptLogin is where admin-gated actions redirect when the viewer is
// not authenticated.
func (c *CLI) promptLogin() bool {
	color.Cyan("\n--- Admin Login ---")
	username := c.readLine("Username: ")
	password := c.readLine("Password: ")
	if _, err := c.auth.Login(username, password); err != nil {
		color.Red("Invalid username or password")
		return false
	}
	return true
}
