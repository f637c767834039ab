package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"reelstudio/tui"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	serverURL := flag.String("url", "http://localhost:8080", "Studio server URL")
	prompt := flag.String("prompt", "", "Prompt for a single clip")
	scriptFile := flag.String("script", "", "Path to a script file for a director job")
	aspectRatio := flag.String("aspect", "", "Aspect ratio (16:9 or 9:16)")
	flag.Parse()

	var script string
	if *scriptFile != "" {
		data, err := os.ReadFile(*scriptFile)
		if err != nil {
			fmt.Printf("Error reading script file: %v\n", err)
			os.Exit(1)
		}
		script = string(data)
	}

	if *prompt == "" && script == "" {
		fmt.Println("Provide -prompt or -script")
		os.Exit(1)
	}

	// Create TUI model
	m := tui.NewModel(*serverURL, *prompt, script, *aspectRatio)

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
