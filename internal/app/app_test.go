package app

import (
	"errors"
	"testing"

	"spotkeys/internal/config"
	"spotkeys/internal/hook"
	"spotkeys/internal/media"
	"spotkeys/internal/window"
)

type fakeHooks struct {
	mouse    hook.Handler[hook.MouseEvent]
	keyboard hook.Handler[hook.KeyEvent]
	runErr   error
	runs     int
	quits    int
	onRun    func()
}

func (h *fakeHooks) Run() error {
	h.runs++
	if h.onRun != nil {
		h.onRun()
	}
	return h.runErr
}

func (h *fakeHooks) Quit() {
	h.quits++
}

type sent struct {
	hwnd window.Handle
	cmd  media.Command
}

type harness struct {
	deps      Deps
	hooks     *fakeHooks
	installs  int
	sends     []sent
	located   string
	installer error
}

func newHarness(found bool) *harness {
	h := &harness{hooks: &fakeHooks{}}
	h.deps = Deps{
		Locate: func(exe string) (window.Handle, bool) {
			h.located = exe
			if !found {
				return 0, false
			}
			return 0xBEEF, true
		},
		NewSender: func(hwnd window.Handle) media.Sender {
			return media.SenderFunc(func(cmd media.Command) {
				h.sends = append(h.sends, sent{hwnd: hwnd, cmd: cmd})
			})
		},
		Install: func(mouse hook.Handler[hook.MouseEvent], keyboard hook.Handler[hook.KeyEvent]) (Hooks, error) {
			h.installs++
			if h.installer != nil {
				return nil, h.installer
			}
			h.hooks.mouse = mouse
			h.hooks.keyboard = keyboard
			return h.hooks, nil
		},
	}
	return h
}

func TestRunTargetNotFoundInstallsNothing(t *testing.T) {
	h := newHarness(false)

	err := Run(*config.DefaultConfig(), h.deps)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("Expected ErrTargetNotFound, got %v", err)
	}
	if h.installs != 0 {
		t.Errorf("Expected no hook installation, got %d", h.installs)
	}
	if h.located != "Spotify.exe" {
		t.Errorf("Expected lookup for 'Spotify.exe', got '%s'", h.located)
	}
}

func TestRunInstallFailurePropagates(t *testing.T) {
	h := newHarness(true)
	h.installer = hook.ErrHookInstall

	err := Run(*config.DefaultConfig(), h.deps)
	if !errors.Is(err, hook.ErrHookInstall) {
		t.Fatalf("Expected ErrHookInstall, got %v", err)
	}
	if h.hooks.runs != 0 {
		t.Error("Message loop must not run after a failed install")
	}
}

func TestRunForwardsToLocatedWindow(t *testing.T) {
	h := newHarness(true)

	var startedWith window.Handle
	h.deps.OnStarted = func(hwnd window.Handle, quit func()) {
		startedWith = hwnd
		quit()
	}

	// Feed events the way the OS would while the loop runs.
	h.hooks.onRun = func() {
		h.hooks.mouse.OnEvent(hook.MouseEvent{Message: hook.WM_XBUTTONDOWN, MouseData: hook.XBUTTON1 << 16})
		h.hooks.keyboard.OnEvent(hook.KeyEvent{Message: hook.WM_KEYDOWN, VKCode: hook.VK_NUMLOCK})
		h.hooks.keyboard.OnEvent(hook.KeyEvent{Message: hook.WM_KEYUP, VKCode: hook.VK_NUMLOCK})
		h.hooks.keyboard.OnEvent(hook.KeyEvent{Message: hook.WM_KEYDOWN, VKCode: hook.VK_PAUSE})
	}

	if err := Run(*config.DefaultConfig(), h.deps); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if startedWith != 0xBEEF {
		t.Errorf("OnStarted got hwnd 0x%X, want 0xBEEF", uintptr(startedWith))
	}
	if h.hooks.quits != 1 {
		t.Errorf("Expected quit to reach the hooks once, got %d", h.hooks.quits)
	}
	if h.hooks.runs != 1 {
		t.Errorf("Expected message loop to run once, got %d", h.hooks.runs)
	}

	want := []media.Command{media.PlayPause, media.Next, media.PlayPause}
	if len(h.sends) != len(want) {
		t.Fatalf("Sent %v, want %v", h.sends, want)
	}
	for i, s := range h.sends {
		if s.hwnd != 0xBEEF {
			t.Errorf("Send %d went to 0x%X, want 0xBEEF", i, uintptr(s.hwnd))
		}
		if s.cmd != want[i] {
			t.Errorf("Send %d = %s, want %s", i, s.cmd, want[i])
		}
	}
}

func TestRunReturnsLoopError(t *testing.T) {
	h := newHarness(true)
	loopErr := errors.New("GetMessageW failed")
	h.hooks.runErr = loopErr

	if err := Run(*config.DefaultConfig(), h.deps); !errors.Is(err, loopErr) {
		t.Errorf("Expected loop error, got %v", err)
	}
}

func TestRunUsesConfiguredTarget(t *testing.T) {
	h := newHarness(false)
	cfg := *config.DefaultConfig()
	cfg.TargetExecutable = "Player.exe"

	Run(cfg, h.deps)
	if h.located != "Player.exe" {
		t.Errorf("Expected lookup for 'Player.exe', got '%s'", h.located)
	}
}
