package rule

import "github.com/AdamBrianBright/callbackreturn/internal/syntax"

// Frame is a function-like body being traversed.
type Frame struct {
	Func *syntax.Function
	// Body is the function's own top-level block, nil for expression-bodied arrows.
	Body *syntax.Block
	// Parent is the index of the lexically enclosing frame, -1 at program level.
	Parent int
}

// Tracker is the stack of frames of the current traversal, indexed by depth.
type Tracker struct {
	frames []Frame
}

// Enter pushes a frame for fn.
func (t *Tracker) Enter(fn *syntax.Function) {
	body, _ := fn.Body.(*syntax.Block)
	t.frames = append(t.frames, Frame{
		Func:   fn,
		Body:   body,
		Parent: len(t.frames) - 1,
	})
}

// Exit pops the innermost frame.
func (t *Tracker) Exit() {
	if len(t.frames) == 0 {
		return
	}
	t.frames = t.frames[:len(t.frames)-1]
}

// Current returns the innermost frame or nil at program level.
func (t *Tracker) Current() *Frame {
	if len(t.frames) == 0 {
		return nil
	}
	return &t.frames[len(t.frames)-1]
}

// Depth is the number of open frames.
func (t *Tracker) Depth() int {
	return len(t.frames)
}
