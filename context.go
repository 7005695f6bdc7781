package hframe

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/gogpu/hframe/dom"
	"github.com/gogpu/hframe/mask"
)

// ErrClosed is returned by operations on a closed Context.
var ErrClosed = errors.New("hframe: context closed")

// StylesheetID is the id of the stylesheet a Context installs.
const StylesheetID = "hframe-global-styles"

// ElementClass is the class given to every composed element.
const ElementClass = "hframe-composed-area"

const stylesheet = `.hframe-composed-area {
  position: absolute;
  overflow: hidden;
  box-sizing: border-box;
  mask-repeat: no-repeat;
  -webkit-mask-repeat: no-repeat;
  mask-size: 100% 100%;
  -webkit-mask-size: 100% 100%;
}
.hframe-composed-area > * {
  width: 100%;
  height: 100%;
  border: none;
}
.hframe-mask-svg {
  position: absolute;
  width: 0;
  height: 0;
}
`

// Frame is what the host reports once per frame.
type Frame struct {
	// Layers is the host's layer order, back to front.
	Layers []LayerID

	// PointerDown is true while the primary pointer button is held.
	PointerDown bool
}

// Context tracks the areas of one host GUI context and composes their
// embedded content on a render surface.
//
// A Context is created once per host context and threaded by the host into
// every frame. Each frame the host calls Put for every area it rendered and
// then Sync. A Context is not safe for concurrent use; it belongs to the
// goroutine running the host's update loop.
type Context struct {
	surface  dom.Surface
	strategy mask.Strategy
	engine   mask.Engine
	log      *slog.Logger // set by WithLogger, nil means the package logger

	areas   []Area
	touched map[AreaID]struct{}
	ranks   map[LayerID]int // position of each layer in the last host order
	states  map[AreaID]*areaState

	pointerDown bool
	closed      bool
}

// NewContext creates a Context composing into surface.
//
// It installs the shared stylesheet and sets up the mask strategy.
func NewContext(surface dom.Surface, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		surface: surface,
		log:     o.logger,
		touched: make(map[AreaID]struct{}),
		ranks:   make(map[LayerID]int),
		states:  make(map[AreaID]*areaState),
	}
	c.strategy = o.strategy
	if c.strategy == nil {
		c.strategy = mask.NewAuto(o.probe)
	}
	c.engine = resolveEngine(o, c.strategy)
	if c.engine == mask.EngineUnknown {
		c.logger().Warn("hframe: rendering engine unknown, assuming masks lag a frame")
	}

	if err := surface.InstallStylesheet(StylesheetID, stylesheet); err != nil {
		return nil, fmt.Errorf("hframe: installing stylesheet: %w", err)
	}
	if err := c.strategy.Setup(surface); err != nil {
		return nil, fmt.Errorf("hframe: setting up %s strategy: %w", c.strategy.Meta().Name, err)
	}

	c.logger().Info("hframe: using composition strategy",
		"strategy", c.strategy.Meta().Name,
		"engine", c.engine.String())
	return c, nil
}

// logger returns the Context's own logger, or the package logger at the time
// of the call.
func (c *Context) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// resolveEngine picks the engine from, in order: WithEngine, the engine an
// Auto strategy probed, the probe.
func resolveEngine(o options, s mask.Strategy) mask.Engine {
	if o.engine != nil {
		return *o.engine
	}
	if p, ok := s.(interface{ Engine() mask.Engine }); ok {
		return p.Engine()
	}
	if o.probe != nil {
		return o.probe()
	}
	return mask.EngineUnknown
}

// Put records an area rendered this frame, replacing the area with the same
// id if there is one. It returns the replaced area so callers can tell what
// changed.
//
// Put only does bookkeeping; it is meant to be called by every widget that
// takes part in composition, many times per frame.
func (c *Context) Put(a Area) (prev Area, replaced bool) {
	if c.closed {
		panic("hframe: Put on a closed Context")
	}
	c.touched[a.ID] = struct{}{}
	for i := range c.areas {
		if c.areas[i].ID == a.ID {
			prev = c.areas[i]
			c.areas[i] = a
			return prev, true
		}
	}
	c.areas = append(c.areas, a)
	return Area{}, false
}

// ReconcileOrder sorts the areas to follow the host's layer order, given back
// to front.
//
// Within a layer the whole-layer area comes first, followed by its widgets in
// the order they were first put. Areas whose layer is missing from order are
// kept and sort last in their current order, in front of every ordered area.
// They occlude what lies behind them, and their own content is hidden for the
// frame.
func (c *Context) ReconcileOrder(order []LayerID) {
	clear(c.ranks)
	for i, l := range order {
		if _, dup := c.ranks[l]; !dup {
			c.ranks[l] = i
		}
	}

	slices.SortStableFunc(c.areas, func(a, b Area) int {
		ra, oka := c.ranks[a.ID.Layer]
		rb, okb := c.ranks[b.ID.Layer]
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return 1
		case !okb:
			return -1
		case ra != rb:
			return ra - rb
		case a.ID.IsLayer() && !b.ID.IsLayer():
			return -1
		case !a.ID.IsLayer() && b.ID.IsLayer():
			return 1
		default:
			return 0
		}
	})
}

// ordered reports whether the area's layer was in the last host order.
func (c *Context) ordered(a Area) bool {
	_, ok := c.ranks[a.ID.Layer]
	return ok
}

// Purge removes every area that was not put since the previous purge and
// removes the elements of purged content areas from the surface. It then
// starts a new presence set for the next frame.
func (c *Context) Purge() error {
	var errs []error
	c.areas = slices.DeleteFunc(c.areas, func(a Area) bool {
		if _, ok := c.touched[a.ID]; ok {
			return false
		}
		c.logger().Debug("hframe: purging area", "area", a.ID.String())
		if err := c.teardown(a); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	clear(c.touched)
	return c.report(errors.Join(errs...))
}

// teardown removes an area's element and forgets its cached state.
func (c *Context) teardown(a Area) error {
	st, ok := c.states[a.ID]
	delete(c.states, a.ID)
	if !ok {
		return nil
	}
	err := c.strategy.Release(c.surface, st.elementID)
	if c.surface.HasElement(st.elementID) {
		err = errors.Join(err, wrap(st.elementID, c.surface.RemoveElement(st.elementID)))
	}
	return err
}

// OccludersOf yields the areas in front of a whose rectangle intersects a's.
//
// It is only meaningful once ReconcileOrder has ordered the frame. It panics
// if a is not tracked, which means the frame steps ran out of order.
func (c *Context) OccludersOf(a Area) iter.Seq[Area] {
	index := slices.IndexFunc(c.areas, func(o Area) bool { return o.ID == a.ID })
	if index < 0 {
		panic(fmt.Sprintf("hframe: area %s is not known in this composition context", a.ID))
	}
	of := c.areas[index]

	return func(yield func(Area) bool) {
		for _, o := range c.areas[index+1:] {
			if !o.Rect.Intersects(of.Rect) {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

// SetPointer records whether the primary pointer button is held down.
func (c *Context) SetPointer(down bool) {
	c.pointerDown = down
}

// DraggedArea guesses which area the user is dragging.
//
// While the primary button is held, the topmost layer is assumed to be
// dragged and its whole-layer area is returned (or its last area if it has
// none). No drag start or end is observed, so a click that does not move
// anything counts as a drag too.
func (c *Context) DraggedArea() (Area, bool) {
	if !c.pointerDown {
		return Area{}, false
	}

	var top Area
	found := false
	for _, a := range c.areas {
		if !c.ordered(a) {
			continue
		}
		if !found || c.ranks[a.ID.Layer] > c.ranks[top.ID.Layer] {
			top, found = a, true
			continue
		}
		if a.ID.Layer == top.ID.Layer && !top.ID.IsLayer() {
			top = a
		}
	}
	return top, found
}

// Sync runs one frame: it orders the areas put this frame, purges the ones
// that were not, and composes the rest. It must be called at the end of
// every host update, unconditionally.
func (c *Context) Sync(f Frame) error {
	if c.closed {
		return ErrClosed
	}
	c.SetPointer(f.PointerDown)
	c.ReconcileOrder(f.Layers)
	return errors.Join(c.Purge(), c.Compose())
}

// SetStrategy replaces the mask strategy. The old strategy is cleaned up,
// the new one set up, and every cached mask is dropped so the next frame
// reapplies all of them.
func (c *Context) SetStrategy(s mask.Strategy) error {
	if c.closed {
		return ErrClosed
	}
	old := c.strategy.Meta().Name
	if err := c.strategy.Cleanup(c.surface); err != nil {
		return c.report(fmt.Errorf("hframe: cleaning up %s strategy: %w", old, err))
	}
	c.strategy = s
	if p, ok := s.(interface{ Engine() mask.Engine }); ok {
		c.engine = p.Engine()
	}
	for _, st := range c.states {
		st.invalidate()
	}
	if err := s.Setup(c.surface); err != nil {
		return c.report(fmt.Errorf("hframe: setting up %s strategy: %w", s.Meta().Name, err))
	}
	c.logger().Info("hframe: switched composition strategy", "from", old, "to", s.Meta().Name)
	return nil
}

// Strategy describes the active mask strategy.
func (c *Context) Strategy() mask.Meta {
	return c.strategy.Meta()
}

// Engine returns the rendering engine the Context assumes.
func (c *Context) Engine() mask.Engine {
	return c.engine
}

// Areas returns the tracked areas in their current order.
func (c *Context) Areas() []Area {
	return slices.Clone(c.areas)
}

// Len returns the number of tracked areas.
func (c *Context) Len() int {
	return len(c.areas)
}

// Close removes every composed element, cleans up the strategy and removes
// the shared stylesheet. The Context cannot be used afterwards.
func (c *Context) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true

	var errs []error
	for _, a := range c.areas {
		errs = append(errs, c.teardown(a))
	}
	c.areas = nil
	clear(c.touched)
	errs = append(errs,
		c.strategy.Cleanup(c.surface),
		c.surface.RemoveStylesheet(StylesheetID))
	return c.report(errors.Join(errs...))
}

// report logs a surface error and hands it back.
func (c *Context) report(err error) error {
	if err != nil {
		c.logger().Error("hframe: composition error", "err", err)
	}
	return err
}

func wrap(elementID string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("hframe: element %q: %w", elementID, err)
}
