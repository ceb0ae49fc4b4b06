package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Soumodip04/MindScope-sub001/internal/commands"
	"github.com/Soumodip04/MindScope-sub001/internal/core/config"
	"github.com/Soumodip04/MindScope-sub001/internal/core/scenario"
)

func main() {
	// Load config with default paths
	configPath := commands.DefaultConfigPath()
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dir := cfg.Scenarios.Dir
	fmt.Printf("Scenario directory: %s\n\n", dir)

	scripts, err := scenario.Discover(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error discovering scenarios: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d scenarios:\n\n", len(scripts))

	invalid := 0
	for _, rel := range scripts {
		fmt.Printf("  %s\n", scenario.Name(rel))

		s, err := scenario.Load(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			invalid++
			fmt.Printf("    Error: %v\n", err)
			continue
		}
		fmt.Printf("    Steps: %d, runs for %s\n", len(s.Steps), s.Duration())
	}

	if invalid > 0 {
		fmt.Printf("\n%d invalid scenario(s)\n", invalid)
		os.Exit(1)
	}
}
