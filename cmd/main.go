// spotkeys - forwards side mouse button, NumLock and Pause to Spotify
// as media commands.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"spotkeys/internal/app"
	"spotkeys/internal/autostart"
	"spotkeys/internal/config"
	"spotkeys/internal/osutils"
	"spotkeys/internal/tray"
	"spotkeys/internal/window"
)

var (
	version    = "0.1.0"
	showVer    = flag.Bool("version", false, "Show version")
	configPath = flag.String("config", "", "Path to config file (default: per-user config dir)")
	autoStart  = flag.String("autostart", "", "Set start on login: on or off")
)

func main() {
	// Hooks are installed on, and delivered to, this thread only.
	runtime.LockOSThread()

	flag.Parse()

	if *showVer {
		fmt.Printf("spotkeys version %s\n", version)
		return
	}

	cfgMgr, err := newConfigManager()
	if err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	if err := cfgMgr.Load(); err != nil {
		log.Printf("Warning: failed to load config: %v", err)
	}

	if *autoStart != "" {
		handleAutostart(cfgMgr, *autoStart)
		return
	}

	cfg := cfgMgr.Get()
	if cfg.StartOnBoot {
		if err := autostart.Sync(true); err != nil {
			log.Printf("Warning: failed to register start on login: %v", err)
		}
	}

	if !osutils.IsElevated() {
		log.Println("Note: not elevated, input sent to elevated windows is not observed")
	}

	deps := app.DefaultDeps(cfg)
	var t *tray.Tray
	deps.OnStarted = func(hwnd window.Handle, quit func()) {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			log.Println("Shutting down...")
			quit()
		}()

		if cfg.TrayEnabled {
			t = tray.New("spotkeys - media keys for " + cfg.TargetExecutable)
			t.AddStatus(fmt.Sprintf("Target: %s (0x%X)", cfg.TargetExecutable, uintptr(hwnd)))
			t.AddSeparator()
			t.AddMenuItem("Quit", quit)
			t.Start()
		}
	}

	log.Println("spotkeys starting...")
	err = app.Run(cfg, deps)
	if t != nil {
		t.Stop()
	}
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	log.Println("spotkeys stopped")
}

func newConfigManager() (*config.Manager, error) {
	if *configPath != "" {
		return config.NewManagerAt(*configPath), nil
	}
	return config.NewManager()
}

func handleAutostart(cfgMgr *config.Manager, value string) {
	var want bool
	switch value {
	case "on":
		want = true
	case "off":
		want = false
	default:
		log.Fatalf("Invalid -autostart value %q, expected on or off", value)
	}

	if err := autostart.Sync(want); err != nil {
		log.Fatalf("Failed to update start on login: %v", err)
	}

	cfg := cfgMgr.Get()
	cfg.StartOnBoot = want
	cfgMgr.Set(cfg)
	if err := cfgMgr.Save(); err != nil {
		log.Fatalf("Failed to save config: %v", err)
	}
	fmt.Printf("Start on login: %s\n", value)
}
