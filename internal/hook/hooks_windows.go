//go:build windows

package hook

import (
	"fmt"
	"log"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procGetMessage          = user32.NewProc("GetMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessage     = user32.NewProc("DispatchMessageW")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procGetModuleHandle     = kernel32.NewProc("GetModuleHandleW")
)

const (
	WH_KEYBOARD_LL = 13
	WH_MOUSE_LL    = 14
	WM_QUIT        = 0x0012
)

type KBDLLHOOKSTRUCT struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type MSLLHOOKSTRUCT struct {
	Point       struct{ X, Y int32 }
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type MSG struct {
	Hwnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// Hooks owns one mouse and one keyboard low-level hook. Install, Run and
// the callbacks all happen on the thread that called Install, so the caller
// must hold runtime.LockOSThread for the lifetime of Hooks.
type Hooks struct {
	mouse    Handler[MouseEvent]
	keyboard Handler[KeyEvent]

	mouseHook    uintptr
	keyboardHook uintptr

	mu       sync.Mutex
	threadID uint32
}

// Install registers both hooks on the calling thread. Either both are
// installed or neither is.
func Install(mouse Handler[MouseEvent], keyboard Handler[KeyEvent]) (*Hooks, error) {
	h := &Hooks{
		mouse:    mouse,
		keyboard: keyboard,
		threadID: windows.GetCurrentThreadId(),
	}

	hMod, _, _ := procGetModuleHandle.Call(0)

	var err error
	h.mouseHook, _, err = procSetWindowsHookEx.Call(
		WH_MOUSE_LL,
		syscall.NewCallback(h.mouseProc),
		hMod,
		0,
	)
	if h.mouseHook == 0 {
		return nil, fmt.Errorf("%w: mouse: %v", ErrHookInstall, err)
	}

	h.keyboardHook, _, err = procSetWindowsHookEx.Call(
		WH_KEYBOARD_LL,
		syscall.NewCallback(h.keyboardProc),
		hMod,
		0,
	)
	if h.keyboardHook == 0 {
		procUnhookWindowsHookEx.Call(h.mouseHook)
		h.mouseHook = 0
		return nil, fmt.Errorf("%w: keyboard: %v", ErrHookInstall, err)
	}

	log.Println("Hook: Low-level mouse and keyboard hooks installed")
	return h, nil
}

// Run pumps the thread's message queue until WM_QUIT arrives, then removes
// both hooks. GetMessage is the only place the thread blocks.
func (h *Hooks) Run() error {
	defer h.unhook()

	var msg MSG
	for {
		ret, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		switch int32(ret) {
		case 0:
			log.Println("Hook: WM_QUIT received, leaving message loop")
			return nil
		case -1:
			return fmt.Errorf("GetMessageW failed: %v", err)
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

// Quit asks the hook thread to leave Run. It is safe to call from any
// goroutine and more than once.
func (h *Hooks) Quit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.threadID == 0 {
		return
	}
	ret, _, err := procPostThreadMessage.Call(uintptr(h.threadID), WM_QUIT, 0, 0)
	if ret == 0 {
		log.Printf("Hook: PostThreadMessage(WM_QUIT) failed: %v", err)
	}
}

func (h *Hooks) unhook() {
	if h.keyboardHook != 0 {
		procUnhookWindowsHookEx.Call(h.keyboardHook)
		h.keyboardHook = 0
	}
	if h.mouseHook != 0 {
		procUnhookWindowsHookEx.Call(h.mouseHook)
		h.mouseHook = 0
	}

	h.mu.Lock()
	h.threadID = 0
	h.mu.Unlock()
}

func (h *Hooks) mouseProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	var ev MouseEvent
	if nCode == HC_ACTION {
		ms := (*MSLLHOOKSTRUCT)(unsafe.Pointer(lParam))
		ev = MouseEvent{Message: uint32(wParam), MouseData: ms.MouseData}
	}
	return Relay[MouseEvent](h.mouse, nCode, ev, func() uintptr {
		return callNext(h.mouseHook, nCode, wParam, lParam)
	})
}

func (h *Hooks) keyboardProc(nCode int32, wParam uintptr, lParam uintptr) uintptr {
	var ev KeyEvent
	if nCode == HC_ACTION {
		kbd := (*KBDLLHOOKSTRUCT)(unsafe.Pointer(lParam))
		ev = KeyEvent{Message: uint32(wParam), VKCode: kbd.VkCode}
	}
	return Relay[KeyEvent](h.keyboard, nCode, ev, func() uintptr {
		return callNext(h.keyboardHook, nCode, wParam, lParam)
	})
}

func callNext(hook uintptr, nCode int32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procCallNextHookEx.Call(hook, uintptr(nCode), wParam, lParam)
	return ret
}
