package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/dooshek/windowctl/internal/config"
	"github.com/dooshek/windowctl/internal/dbus"
	"github.com/dooshek/windowctl/internal/fileops"
	"github.com/dooshek/windowctl/internal/logger"
	"github.com/dooshek/windowctl/internal/state"
	"github.com/dooshek/windowctl/internal/types"
	"github.com/dooshek/windowctl/pkg/geometry"
	"github.com/dooshek/windowctl/pkg/monitor"
	"github.com/dooshek/windowctl/pkg/window"
)

func init() {
	// Set custom usage message to show -- prefix
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [flags] <list|focus|move|daemon>\n", os.Args[0])
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(out, "  --%s", f.Name)
			name, usage := flag.UnquoteUsage(f)
			if len(name) > 0 {
				fmt.Fprintf(out, " %s", name)
			}
			fmt.Fprintf(out, "\n    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(out, " (default %q)", f.DefValue)
			}
			fmt.Fprintf(out, "\n")
		})
	}
}

func main() {
	logLevel := flag.String("log-level", "info", "Set log level (debug|info|warn|error)")
	logFilename := flag.String("log-filename", "", "Log to file instead of stdout")
	flag.Parse()

	logger.SetLevel(*logLevel)
	if *logFilename != "" {
		if err := logger.SetOutputFile(*logFilename); err != nil {
			fmt.Printf("Error setting log file: %v\n", err)
			os.Exit(1)
		}
		defer logger.CloseLogFile()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Error loading config", err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = &types.Config{}
	}
	state.Init(cfg)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	sys, err := newSystem(cfg)
	if err != nil {
		logger.Error("Failed to initialize window system", err)
		os.Exit(1)
	}
	defer sys.Close()

	switch args[0] {
	case "list":
		err = runList(sys)
	case "focus":
		err = runFocus(sys, args[1:])
	case "move":
		err = runMove(sys, args[1:])
	case "daemon":
		err = runDaemon(sys)
	default:
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		logger.Errorf("Command %s failed", err, args[0])
		os.Exit(1)
	}
}

// newSystem builds the window system with movers and monitor order from
// the configuration.
func newSystem(cfg *types.Config) (*window.System, error) {
	move := cfg.GetMoveConfig()
	mover := window.StepMover{
		Duration: time.Duration(move.DurationMs) * time.Millisecond,
		Steps:    move.Steps,
	}

	sys, err := window.New(
		window.WithMover("linear", mover),
	)
	if err != nil {
		return nil, err
	}

	if len(cfg.Monitors.Order) > 0 {
		sys.SetMonitors(monitor.Reorder(sys.Monitors(), cfg.Monitors.Order))
	}

	return sys, nil
}

// runList prints every top-level window, marking the focused one.
func runList(sys *window.System) error {
	windows, err := sys.Windows()
	if err != nil {
		return fmt.Errorf("failed to enumerate windows: %w", err)
	}

	var foreground int
	if fg, err := sys.Foreground(); err == nil {
		foreground = fg.Handle()
	}

	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	bold.Printf("%-12s %-24s %s\n", "HANDLE", "CLASS", "TITLE")
	for _, w := range windows {
		title, err := w.Title()
		if err != nil {
			title = "-"
		}
		class, err := w.ClassName()
		if err != nil {
			class = "-"
		}

		line := fmt.Sprintf("%-12d %-24s %s", w.Handle(), class, title)
		if w.Handle() == foreground {
			green.Println(line + " *")
		} else {
			cyan.Println(line)
		}
	}
	return nil
}

// runFocus brings a window to the foreground, selected by handle or by a
// title substring.
func runFocus(sys *window.System, args []string) error {
	focusCmd := flag.NewFlagSet("focus", flag.ExitOnError)
	handle := focusCmd.Int("handle", -1, "Window handle to focus")
	title := focusCmd.String("title", "", "Focus the first window whose title contains this text")
	if err := focusCmd.Parse(args); err != nil {
		return err
	}

	w, err := findWindow(sys, *handle, *title)
	if err != nil {
		return err
	}
	return w.SetForeground()
}

// runMove repositions a window, optionally animated.
func runMove(sys *window.System, args []string) error {
	moveCmd := flag.NewFlagSet("move", flag.ExitOnError)
	handle := moveCmd.Int("handle", -1, "Window handle to move")
	title := moveCmd.String("title", "", "Move the first window whose title contains this text")
	x := moveCmd.Float64("x", 0, "Target left edge")
	y := moveCmd.Float64("y", 0, "Target top edge")
	width := moveCmd.Float64("width", 0, "Target width (0 keeps current)")
	height := moveCmd.Float64("height", 0, "Target height (0 keeps current)")
	animate := moveCmd.String("animate", state.Get().GetDefaultAnimation(), "Mover name (empty for immediate move)")
	if err := moveCmd.Parse(args); err != nil {
		return err
	}

	w, err := findWindow(sys, *handle, *title)
	if err != nil {
		return err
	}

	current, err := w.Position()
	if err != nil {
		return fmt.Errorf("failed to get window position: %w", err)
	}
	if *width == 0 {
		*width = current.Width
	}
	if *height == 0 {
		*height = current.Height
	}

	return w.Move(geometry.New(*x, *y, *width, *height), *animate)
}

// runDaemon starts the D-Bus control service and blocks until a signal.
func runDaemon(sys *window.System) error {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return fmt.Errorf("failed to initialize file operations: %w", err)
	}
	if err := fileOps.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create necessary directories: %w", err)
	}

	if err := fileOps.CheckPID(); err != nil {
		if errors.Is(err, fileops.ErrProcessAlreadyRunning) {
			return err
		}
	}
	if err := fileOps.SavePID(); err != nil {
		return fmt.Errorf("failed to save PID file: %w", err)
	}
	defer fileOps.HandleExit()

	server := dbus.NewServer(sys)
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start D-Bus service: %w", err)
	}

	logger.Infof("windowctl daemon running on platform %s with %d monitor(s)",
		sys.Platform().Name(), len(sys.Monitors()))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Infof("Received signal %v, shutting down...", sig)
		server.Stop()
	}()

	server.Wait()
	return nil
}

// findWindow resolves the target window from --handle or --title.
func findWindow(sys *window.System, handle int, title string) (*window.Window, error) {
	if handle >= 0 {
		return sys.Window(handle)
	}
	if title == "" {
		return nil, fmt.Errorf("either --handle or --title is required")
	}

	windows, err := sys.Windows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	for _, w := range windows {
		t, err := w.Title()
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(t), strings.ToLower(title)) {
			return w, nil
		}
	}
	return nil, fmt.Errorf("no window with title containing %q", title)
}
