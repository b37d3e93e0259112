// Package main is the entry point for the todo-cli application.
// It initializes the root command and registers the administrative
// sub-commands (company, user and token management), then executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "todo_service/cmd/todo-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "todo-cli",
		Short: "Administrative CLI for the todo service",
		Long: `todo-cli is a command-line tool for administering the todo service
database directly. It can bootstrap companies and users and issue access
tokens without going through the REST API.

Configuration is read from the file referenced by CONFIG_PATH
(default: configs/rest-app.yaml).`,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
