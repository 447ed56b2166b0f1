// Package tray provides the notification area icon using getlantern/systray.
package tray

import (
	"runtime"

	"github.com/getlantern/systray"
)

// MenuItem represents a menu item
type MenuItem struct {
	Title    string
	Disabled bool
	Callback func()
	item     *systray.MenuItem
}

// Tray manages the notification area icon and its menu
type Tray struct {
	tooltip string
	items   []*MenuItem
	quitCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a new tray with the given tooltip
func New(tooltip string) *Tray {
	return &Tray{
		tooltip: tooltip,
		quitCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// AddMenuItem adds a clickable menu item
func (t *Tray) AddMenuItem(title string, callback func()) {
	t.items = append(t.items, &MenuItem{Title: title, Callback: callback})
}

// AddStatus adds a greyed-out informational line
func (t *Tray) AddStatus(title string) {
	t.items = append(t.items, &MenuItem{Title: title, Disabled: true})
}

// AddSeparator adds a separator to the menu
func (t *Tray) AddSeparator() {
	t.items = append(t.items, nil) // nil indicates separator
}

// Start runs the tray loop on its own OS thread and returns immediately.
// The hook thread keeps its own message queue; the two never share one.
func (t *Tray) Start() {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(t.doneCh)
		systray.Run(t.setupMenu, func() { close(t.quitCh) })
	}()
}

// setupMenu is called when systray is ready
func (t *Tray) setupMenu() {
	systray.SetTitle("spotkeys")
	systray.SetTooltip(t.tooltip)
	systray.SetIcon(getIcon())

	for _, menuItem := range t.items {
		if menuItem == nil {
			systray.AddSeparator()
			continue
		}

		item := systray.AddMenuItem(menuItem.Title, "")
		menuItem.item = item
		if menuItem.Disabled {
			item.Disable()
		}

		if menuItem.Callback != nil {
			go func(mi *MenuItem) {
				for {
					select {
					case <-mi.item.ClickedCh:
						mi.Callback()
					case <-t.quitCh:
						return
					}
				}
			}(menuItem)
		}
	}
}

// Stop stops the tray and waits for its loop to exit
func (t *Tray) Stop() {
	systray.Quit()
	<-t.doneCh
}

// getIcon returns a placeholder icon (valid 16x16 ICO)
func getIcon() []byte {
	icon := make([]byte, 1118)
	// ICO header
	copy(icon[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	// Icon directory: 16x16, 32bpp, 1096 bytes at offset 22
	copy(icon[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00,
		0x16, 0x00, 0x00, 0x00,
	})
	// BITMAPINFOHEADER, height doubled for the AND mask
	copy(icon[22:62], []byte{
		0x28, 0x00, 0x00, 0x00,
		0x10, 0x00, 0x00, 0x00,
		0x20, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0x20, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x04, 0x00, 0x00,
	})
	// Green pixels (BGRA) so the icon is visible against the taskbar.
	for i := 62; i+4 <= 62+1024; i += 4 {
		copy(icon[i:i+4], []byte{0x54, 0xB9, 0x1D, 0xFF})
	}
	return icon
}
