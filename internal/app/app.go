// Package app sequences startup: find the player window, install the input
// hooks bound to it, then run the hook thread's message loop.
package app

import (
	"errors"
	"fmt"
	"log"

	"spotkeys/internal/config"
	"spotkeys/internal/hook"
	"spotkeys/internal/media"
	"spotkeys/internal/window"
)

// ErrTargetNotFound is returned when no top-level window belongs to the
// target executable
var ErrTargetNotFound = errors.New("target window not found")

// Hooks is an installed pair of input hooks plus the loop that drives them.
type Hooks interface {
	Run() error
	Quit()
}

// Deps are the OS collaborators Run drives. Tests replace them with fakes.
type Deps struct {
	Locate    func(exe string) (window.Handle, bool)
	NewSender func(hwnd window.Handle) media.Sender
	Install   func(mouse hook.Handler[hook.MouseEvent], keyboard hook.Handler[hook.KeyEvent]) (Hooks, error)

	// OnStarted, if set, runs once both hooks are live and before the
	// message loop starts. quit makes the loop return nil; it may be called
	// from any goroutine.
	OnStarted func(hwnd window.Handle, quit func())
}

// DefaultDeps wires Run to the real window manager, WM_APPCOMMAND sender and
// low-level hooks.
func DefaultDeps(cfg config.Config) Deps {
	sys := window.NewSystem()
	return Deps{
		Locate: func(exe string) (window.Handle, bool) {
			return window.Locate(sys, exe)
		},
		NewSender: func(hwnd window.Handle) media.Sender {
			return media.NewWindowSender(uintptr(hwnd), cfg.SendTimeout())
		},
		Install: func(mouse hook.Handler[hook.MouseEvent], keyboard hook.Handler[hook.KeyEvent]) (Hooks, error) {
			h, err := hook.Install(mouse, keyboard)
			if err != nil {
				return nil, err
			}
			return h, nil
		},
	}
}

// Run blocks on the calling thread until the message loop ends. The caller
// must have locked the goroutine to its OS thread.
func Run(cfg config.Config, deps Deps) error {
	hwnd, ok := deps.Locate(cfg.TargetExecutable)
	if !ok {
		return fmt.Errorf("%w: no window owned by %s, start it first", ErrTargetNotFound, cfg.TargetExecutable)
	}

	sender := deps.NewSender(hwnd)
	hooks, err := deps.Install(hook.NewMouseHandler(sender), hook.NewKeyboardHandler(sender))
	if err != nil {
		return fmt.Errorf("install hooks: %w", err)
	}

	if deps.OnStarted != nil {
		deps.OnStarted(hwnd, hooks.Quit)
	}

	log.Printf("App: Forwarding media keys to %s (hwnd 0x%X)", cfg.TargetExecutable, uintptr(hwnd))
	return hooks.Run()
}
