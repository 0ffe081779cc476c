package model

import (
	"testing"

	"github.com/hupe1980/quadtree/geom"
	"github.com/stretchr/testify/assert"
)

func TestEntry(t *testing.T) {
	e := NewEntry(geom.Pt(1, 2), "a")

	assert.Equal(t, geom.Pt(1, 2), e.Point())
	assert.Equal(t, "a", e.Value())
	assert.Equal(t, "Entry((1,2): a)", e.String())
	assert.Equal(t, NewEntry(geom.Pt(1, 2), "a"), e)
}
