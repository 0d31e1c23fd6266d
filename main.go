package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amehran/Multi-Agent-Mobile-UI-Assistant/src"
)

func main() {
	ctx := context.Background()
	fmt.Println("🔮 Starting Mobile UI Assistant...")

	cfg, err := src.LoadConfig()
	if err != nil {
		fmt.Println("❌ Configuration error:", err)
		os.Exit(1)
	}
	fmt.Printf("ℹ️ Backend: %s (%s)\n", cfg.Provider, cfg.Model)

	backend := src.NewBackend(cfg)

	projectDir := os.Getenv("ANDROID_PROJECT_PATH")
	if len(os.Args) > 1 {
		projectDir = os.Args[1]
	}
	if projectDir != "" {
		if src.IsAndroidProject(projectDir) {
			fmt.Println("✅ Android project detected:", projectDir)
		} else {
			fmt.Println("⚠️ No Gradle build files found in:", projectDir)
		}
	}

	m := src.NewModel(ctx, cfg, backend, projectDir)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.Program = p

	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
