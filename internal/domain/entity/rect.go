package entity

// Rect is an axis-aligned rectangle in world pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rect from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// MidBottom returns the center of the bottom edge
func (r Rect) MidBottom() (x, y float64) {
	return r.CenterX(), r.Bottom()
}

// SetLeft moves the rect so its left edge is at x
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rect so its right edge is at x
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rect so its top edge is at y
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rect so its bottom edge is at y
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenterX moves the rect horizontally so its center is at x
func (r *Rect) SetCenterX(x float64) { r.X = x - r.W/2 }

// SetCenterY moves the rect vertically so its center is at y
func (r *Rect) SetCenterY(y float64) { r.Y = y - r.H/2 }

// SetMidBottom moves the rect so the center of its bottom edge is at (x, y)
func (r *Rect) SetMidBottom(x, y float64) {
	r.X = x - r.W/2
	r.Y = y - r.H
}

// Inflate returns a copy grown by dw, dh (negative values shrink),
// keeping the same center.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{
		X: r.X - dw/2,
		Y: r.Y - dh/2,
		W: r.W + dw,
		H: r.H + dh,
	}
}

// Overlaps reports whether two rects share any area.
// Rects that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(px, py float64) bool {
	return px >= r.Left() && px < r.Right() && py >= r.Top() && py < r.Bottom()
}

// Offset returns a copy shifted by dx, dy
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
