package hook

import (
	"log"

	"spotkeys/internal/media"
)

// MouseHandler sends PlayPause when the first side button goes down.
type MouseHandler struct {
	Sender media.Sender
}

// NewMouseHandler returns a MouseHandler sending through s.
func NewMouseHandler(s media.Sender) *MouseHandler {
	return &MouseHandler{Sender: s}
}

func (h *MouseHandler) OnEvent(ev MouseEvent) ChainAction {
	if ev.Message == WM_XBUTTONDOWN && ev.XButton() == XBUTTON1 {
		h.send(media.PlayPause)
	}
	return Pass
}

func (h *MouseHandler) send(cmd media.Command) {
	log.Printf("Hook: Mouse XButton1 -> %s", cmd)
	h.Sender.Send(cmd)
}

// KeyboardHandler sends Next on NumLock and PlayPause on Pause. Only key-down
// transitions count.
type KeyboardHandler struct {
	Sender media.Sender
}

// NewKeyboardHandler returns a KeyboardHandler sending through s.
func NewKeyboardHandler(s media.Sender) *KeyboardHandler {
	return &KeyboardHandler{Sender: s}
}

func (h *KeyboardHandler) OnEvent(ev KeyEvent) ChainAction {
	if ev.Message != WM_KEYDOWN {
		return Pass
	}

	switch ev.VKCode {
	case VK_NUMLOCK:
		h.send("NUMLOCK", media.Next)
	case VK_PAUSE:
		h.send("PAUSE", media.PlayPause)
	}
	return Pass
}

func (h *KeyboardHandler) send(key string, cmd media.Command) {
	log.Printf("Hook: Key %s -> %s", key, cmd)
	h.Sender.Send(cmd)
}
