//go:build js && wasm

package jsdom

import (
	"sync/atomic"
	"syscall/js"
)

// Pointer tracks whether the primary pointer button is held anywhere on the
// page. Hosts that do not expose their own input state can feed Down into
// hframe.Frame.
type Pointer struct {
	down  atomic.Bool
	funcs map[string]js.Func
}

// TrackPointer starts listening to pointer events on the window.
// Call Release to stop.
func TrackPointer() *Pointer {
	p := &Pointer{funcs: make(map[string]js.Func)}
	set := func(down bool) js.Func {
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 && args[0].Get("button").Int() != 0 {
				return nil
			}
			p.down.Store(down)
			return nil
		})
	}
	p.funcs["pointerdown"] = set(true)
	p.funcs["pointerup"] = set(false)
	p.funcs["pointercancel"] = set(false)

	g := js.Global()
	for name, fn := range p.funcs {
		g.Call("addEventListener", name, fn)
	}
	return p
}

// Down reports whether the primary button is held.
func (p *Pointer) Down() bool { return p.down.Load() }

// Release removes the listeners.
func (p *Pointer) Release() {
	g := js.Global()
	for name, fn := range p.funcs {
		g.Call("removeEventListener", name, fn)
		fn.Release()
	}
	clear(p.funcs)
}
