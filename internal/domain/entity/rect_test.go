package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, 25.0, r.CenterX())
	assert.Equal(t, 40.0, r.CenterY())

	x, y := r.MidBottom()
	assert.Equal(t, 25.0, x)
	assert.Equal(t, 60.0, y)
}

func TestRect_Setters(t *testing.T) {
	r := NewRect(0, 0, 10, 20)

	r.SetRight(100)
	assert.Equal(t, 90.0, r.X)

	r.SetBottom(50)
	assert.Equal(t, 30.0, r.Y)

	r.SetMidBottom(200, 300)
	assert.Equal(t, 195.0, r.X)
	assert.Equal(t, 280.0, r.Y)

	r.SetCenterX(0)
	r.SetCenterY(0)
	assert.Equal(t, -5.0, r.X)
	assert.Equal(t, -10.0, r.Y)
}

func TestRect_Inflate(t *testing.T) {
	r := NewRect(0, 0, 100, 40)
	in := r.Inflate(-20, -30)

	assert.Equal(t, NewRect(10, 15, 80, 10), in)
	assert.Equal(t, r.CenterX(), in.CenterX())
	assert.Equal(t, r.CenterY(), in.CenterY())
}

func TestRect_Overlaps(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same rect", NewRect(0, 0, 10, 10), true},
		{"partial overlap", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 10, 10, 10), false},
		{"far away", NewRect(50, 50, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap should be symmetric")
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(29, 29))
	assert.False(t, r.Contains(30, 15))
	assert.False(t, r.Contains(5, 15))
}
