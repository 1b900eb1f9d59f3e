package core

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpImage
	OpText
	OpStrokeRect
	OpStrokeCircle
)

// String returns a human-readable name for the operation.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpImage:
		return "Image"
	case OpText:
		return "Text"
	case OpStrokeRect:
		return "StrokeRect"
	case OpStrokeCircle:
		return "StrokeCircle"
	default:
		return "Unknown"
	}
}

// DrawOp is one recorded Surface call. Only the fields relevant to Kind are set.
type DrawOp struct {
	Kind     OpKind
	Sprite   string
	Src, Dst RectF
	Text     string
	X, Y     float64
	Radius   float64
	Style    TextStyle
	Color    Color
}

// DrawList is a Surface that records calls so they can be replayed later,
// e.g. when simulation and presentation happen in different callbacks.
type DrawList struct {
	ops []DrawOp
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{ops: make([]DrawOp, 0, 32)}
}

// Clear implements Surface.
func (d *DrawList) Clear(r RectF) {
	d.ops = append(d.ops, DrawOp{Kind: OpClear, Dst: r})
}

// DrawImage implements Surface.
func (d *DrawList) DrawImage(sprite string, src, dst RectF) {
	d.ops = append(d.ops, DrawOp{Kind: OpImage, Sprite: sprite, Src: src, Dst: dst})
}

// DrawText implements Surface.
func (d *DrawList) DrawText(text string, x, y float64, style TextStyle) {
	d.ops = append(d.ops, DrawOp{Kind: OpText, Text: text, X: x, Y: y, Style: style})
}

// StrokeRect implements Surface.
func (d *DrawList) StrokeRect(r RectF, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpStrokeRect, Dst: r, Color: c})
}

// StrokeCircle implements Surface.
func (d *DrawList) StrokeCircle(cx, cy, radius float64, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpStrokeCircle, X: cx, Y: cy, Radius: radius, Color: c})
}

// Ops returns the recorded operations. The slice is reused after Reset.
func (d *DrawList) Ops() []DrawOp {
	return d.ops
}

// Len returns the number of recorded operations.
func (d *DrawList) Len() int {
	return len(d.ops)
}

// Reset drops all recorded operations, keeping capacity.
func (d *DrawList) Reset() {
	d.ops = d.ops[:0]
}

// Replay issues every recorded operation against dst in order.
func (d *DrawList) Replay(dst Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.Dst)
		case OpImage:
			dst.DrawImage(op.Sprite, op.Src, op.Dst)
		case OpText:
			dst.DrawText(op.Text, op.X, op.Y, op.Style)
		case OpStrokeRect:
			dst.StrokeRect(op.Dst, op.Color)
		case OpStrokeCircle:
			dst.StrokeCircle(op.X, op.Y, op.Radius, op.Color)
		}
	}
}

var _ Surface = (*DrawList)(nil)
