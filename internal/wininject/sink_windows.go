//go:build windows

// Package wininject dispatches synthesized pointer events into the OS cursor.
package wininject

import (
	"fmt"
	"unsafe"

	"github.com/lberan7/touchglide/internal/synth"
	"github.com/lxn/win"
)

// WinSink injects pointer events using WinAPI SendInput.
type WinSink struct{}

// New returns a Windows native sink.
func New() (synth.Sink, error) {
	return &WinSink{}, nil
}

// Dispatch applies one synthesized pointer event to the OS cursor.
func (w *WinSink) Dispatch(ev synth.PointerEvent) error {
	switch ev.Type {
	case synth.EventMove:
		return w.moveAbs(int(ev.X), int(ev.Y))
	case synth.EventDown:
		if err := w.moveAbs(int(ev.X), int(ev.Y)); err != nil {
			return err
		}
		return sendMouseInput(downFlag(ev.Button), 0, 0)
	case synth.EventUp:
		return sendMouseInput(upFlag(ev.Button), 0, 0)
	default:
		return nil
	}
}

// moveAbs moves the cursor to an absolute screen coordinate.
func (w *WinSink) moveAbs(x, y int) error {
	dx, dy := mapAbsolute(x, y)
	flags := uint32(win.MOUSEEVENTF_MOVE | win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_VIRTUALDESK)
	if err := sendMouseInput(flags, dx, dy); err != nil {
		if win.SetCursorPos(int32(x), int32(y)) {
			return nil
		}
		return err
	}
	win.SetCursorPos(int32(x), int32(y))
	return nil
}

// downFlag maps a button code to its press flag.
func downFlag(b synth.Button) uint32 {
	if b == synth.ButtonSecondary {
		return win.MOUSEEVENTF_RIGHTDOWN
	}
	return win.MOUSEEVENTF_LEFTDOWN
}

// upFlag maps a button code to its release flag.
func upFlag(b synth.Button) uint32 {
	if b == synth.ButtonSecondary {
		return win.MOUSEEVENTF_RIGHTUP
	}
	return win.MOUSEEVENTF_LEFTUP
}

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, dx, dy int32) error {
	input := win.MOUSE_INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:      dx,
			Dy:      dy,
			DwFlags: flags,
		},
	}
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return fmt.Errorf("SendInput failed: %d", win.GetLastError())
	}
	return nil
}

// mapAbsolute converts screen coordinates to the WinAPI absolute range.
func mapAbsolute(x, y int) (int32, int32) {
	vx := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	vy := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	vw := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	vh := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	if vw <= 1 {
		vw = 2
	}
	if vh <= 1 {
		vh = 2
	}
	dx := (int64(x) - int64(vx)) * 65535 / int64(vw-1)
	dy := (int64(y) - int64(vy)) * 65535 / int64(vh-1)
	return int32(dx), int32(dy)
}
