package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/video-tracker/internal/config"
	"github.com/ytget/video-tracker/internal/tracker"
	"github.com/ytget/video-tracker/internal/tui"
	"github.com/ytget/video-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.video-tracker"
	AppName = "Video Tracker"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	env, err := config.LoadEnvironment(config.DefaultEnvFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read environment file: %v\n", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	folder, err := config.ResolveFolder(os.Args[1:], env, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	svc, err := tracker.Open(folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", folder, err)
		os.Exit(1)
	}

	if env.Shell() == config.ShellTerminal {
		runTerminal(svc)
		return
	}
	runDesktop(svc)
}

func runTerminal(svc *tracker.Service) {
	if err := tui.Run(svc); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	// q and ctrl+c already saved; ctrl+q quits without saving
}

func runDesktop(svc *tracker.Service) {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(settings.GetWindowSize())

	ui.NewRootUI(myWindow, myApp, svc)

	// Show and run
	myWindow.ShowAndRun()

	// Final save on shutdown
	if err := svc.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "final save failed: %v\n", err)
	}
}
