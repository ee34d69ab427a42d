package viewport

// PanController translates drag gestures into scroll offset changes.
// Dragging follows the cursor 1:1; the content moves with the pointer,
// so the offset moves against it.
type PanController struct {
	state    *State
	anchor   Point
	dragging bool
}

// NewPanController creates a controller over state.
func NewPanController(state *State) *PanController {
	return &PanController{state: state}
}

// BeginDrag records the drag anchor at pointer, in device coordinates.
// Starting a new drag resets any drag in progress; concurrent drags are
// not supported.
func (p *PanController) BeginDrag(pointer Point) {
	p.anchor = pointer
	p.dragging = true
}

// DragTo moves the viewport by the delta from the last anchor to
// pointer and advances the anchor, so successive calls apply
// incremental deltas. The resulting offset is clamped into the scroll
// region; a clamped axis saturates at the region boundary. Calls
// without a preceding BeginDrag only set the anchor.
//
// Returns the offset in effect afterwards.
func (p *PanController) DragTo(pointer Point) Point {
	if !p.dragging {
		p.BeginDrag(pointer)
		return p.state.Offset()
	}
	delta := pointer.Sub(p.anchor)
	p.anchor = pointer
	return p.state.SetOffset(p.state.Offset().Sub(delta))
}

// EndDrag finishes the drag in progress, if any.
func (p *PanController) EndDrag() {
	p.dragging = false
}
