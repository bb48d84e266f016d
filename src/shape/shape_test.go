package shape

import (
	"checkersboard/src/base"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCircle(t *testing.T) {
	c := NewCircle(10, base.Point{X: 50, Y: 30}, Crimson)

	assert.Equal(t, Circle, c.Kind)
	assert.Equal(t, 40.0, c.X)
	assert.Equal(t, 20.0, c.Y)
	assert.Equal(t, 20.0, c.W)
	assert.Equal(t, 20.0, c.H)
	assert.Equal(t, 10.0, c.CornerRadius)
	assert.Equal(t, 10.0, c.Radius())
	assert.Equal(t, base.Point{X: 50, Y: 30}, c.Center())
	assert.Equal(t, Crimson, c.Fill)
}

func TestNewBox(t *testing.T) {
	b := NewBox(1, 2, 20, 30, 4, White)
	assert.Equal(t, Box, b.Kind)
	assert.Equal(t, base.Point{X: 11, Y: 17}, b.Center())
	assert.Equal(t, 4.0, b.CornerRadius)
}

func TestTranslate(t *testing.T) {
	c := NewCircle(5, base.Point{X: 5, Y: 5}, White).Translate(100, 200)
	assert.Equal(t, base.Point{X: 105, Y: 205}, c.Center())

	r := TouchRegion{Index: 3, W: 10, H: 10}.Translate(5, 5)
	assert.Equal(t, TouchRegion{Index: 3, X: 5, Y: 5, W: 10, H: 10}, r)
}
