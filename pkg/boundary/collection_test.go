package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minsurf/minsurf/pkg/geom"
)

func TestBuildCollectionGrouping(t *testing.T) {
	a := NewAnchor(geom.Pt(0, 0, 0), 0)
	b := Anchor{Target: geom.Pt(1, 1, 1), Index: 0, LockX: true}
	c := NewAnchor(geom.Pt(2, 2, 2), 3)

	got := BuildCollection([]Condition{a, b, c})

	assert.Len(t, got, 2)
	assert.Equal(t, []Condition{a, b}, got[0], "insertion order preserved per index")
	assert.Equal(t, []Condition{c}, got[3])
}

func TestBuildCollectionEmpty(t *testing.T) {
	assert.Empty(t, BuildCollection(nil))
	assert.Empty(t, BuildCollection([]Condition{}))
}

func TestCollectionEnforceOrder(t *testing.T) {
	// Two anchors locking the same axis: the later one wins.
	first := Anchor{Target: geom.Pt(1, 0, 0), Index: 5, LockX: true}
	second := Anchor{Target: geom.Pt(2, 0, 0), Index: 5, LockX: true}
	cl := BuildCollection([]Condition{first, second})

	got := cl.Enforce(5, geom.Pt(9, 9, 9))
	assert.Equal(t, geom.Pt(2, 9, 9), got)
}

func TestCollectionEnforceUnconstrained(t *testing.T) {
	cl := BuildCollection([]Condition{NewAnchor(geom.Pt(0, 0, 0), 1)})
	probe := geom.Pt(4, 5, 6)

	assert.Equal(t, probe, cl.Enforce(2, probe))
	assert.Equal(t, probe, Collection(nil).Enforce(0, probe))
}

func TestCollectionFullyConstrained(t *testing.T) {
	full := NewAnchor(geom.Pt(0, 0, 0), 1)
	partial := Anchor{Target: geom.Pt(0, 0, 0), Index: 2, LockY: true}
	cl := BuildCollection([]Condition{partial, full, Free{Index: 3}})

	assert.True(t, cl.FullyConstrained(1))
	assert.False(t, cl.FullyConstrained(2))
	assert.False(t, cl.FullyConstrained(3))
	assert.False(t, cl.FullyConstrained(99), "absent index is unconstrained")
}
