package render

import (
	"testing"

	"github.com/san-kum/dsaviz/internal/dsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	for _, mode := range dsa.Modes {
		m := Build(nil, mode, DefaultLayout())
		assert.True(t, m.Empty(), "mode %s", mode)
		require.Len(t, m.Markers, 1)
		assert.Equal(t, "arrowhead", m.Markers[0].ID)
	}
}

func TestBuildList(t *testing.T) {
	m := Build(dsa.Sequence{5, 7, 10}, dsa.LinkedList, DefaultLayout())

	require.Len(t, m.Nodes, 3)
	require.Len(t, m.Links, 2)
	assert.Empty(t, m.Labels)

	assert.Equal(t, "node-1", m.Nodes[1].ID)
	assert.Equal(t, ShapeCircle, m.Nodes[1].Shape)
	assert.Equal(t, 150.0, m.Nodes[1].CX)
	assert.Equal(t, 200.0, m.Nodes[1].CY)
	assert.Equal(t, 7, m.Nodes[1].Value)

	link := m.Links[0]
	assert.Equal(t, 75.0, link.X1)
	assert.Equal(t, 125.0, link.X2)
	assert.Equal(t, "arrowhead", link.MarkerEnd)
}

func TestBuildStack(t *testing.T) {
	m := Build(dsa.Sequence{1, 2, 3}, dsa.Stack, DefaultLayout())

	require.Len(t, m.Nodes, 3)
	assert.Empty(t, m.Links)
	assert.Equal(t, 350.0, m.Nodes[0].CY)
	assert.Equal(t, 305.0, m.Nodes[1].CY)
	assert.Equal(t, 200.0, m.Nodes[2].CX)
	assert.Equal(t, ShapeRect, m.Nodes[2].Shape)

	require.Len(t, m.Labels, 1)
	assert.Equal(t, "← TOP", m.Labels[0].Text)
	assert.Equal(t, 260.0, m.Labels[0].X)
	assert.Equal(t, 260.0, m.Labels[0].Y)
}

func TestStackLabelFollowsWidth(t *testing.T) {
	layout := DefaultLayout()
	layout.Stack.Width = 120

	m := Build(dsa.Sequence{1}, dsa.Stack, layout)
	require.Len(t, m.Labels, 1)
	// 20 units clear of the right edge at StartX + Width/2
	assert.Equal(t, 280.0, m.Labels[0].X)
}

func TestBuildQueue(t *testing.T) {
	m := Build(dsa.Sequence{4, 8}, dsa.Queue, DefaultLayout())

	require.Len(t, m.Nodes, 2)
	assert.Equal(t, 80.0, m.Nodes[0].CX)
	assert.Equal(t, 150.0, m.Nodes[1].CX)

	require.Len(t, m.Labels, 2)
	assert.Equal(t, "FRONT", m.Labels[0].Text)
	assert.Equal(t, 80.0, m.Labels[0].X)
	assert.Equal(t, 165.0, m.Labels[0].Y)
	assert.Equal(t, "REAR", m.Labels[1].Text)
	assert.Equal(t, 150.0, m.Labels[1].X)
	assert.Equal(t, 235.0, m.Labels[1].Y)
}

func TestBuildIsPure(t *testing.T) {
	seq := dsa.Sequence{3, 1, 4, 1, 5}
	a := Build(seq, dsa.LinkedList, DefaultLayout())
	b := Build(seq.Clone(), dsa.LinkedList, DefaultLayout())
	assert.Equal(t, a, b)
}

func TestBounds(t *testing.T) {
	m := Build(dsa.Sequence{1, 2}, dsa.LinkedList, DefaultLayout())
	minX, minY, maxX, maxY := m.Bounds()
	assert.Equal(t, 25.0, minX)
	assert.Equal(t, 175.0, minY)
	assert.Equal(t, 175.0, maxX)
	assert.Equal(t, 225.0, maxY)

	x0, y0, x1, y1 := Build(nil, dsa.Queue, DefaultLayout()).Bounds()
	assert.Zero(t, x0+y0+x1+y1)
}

func TestNodeLookup(t *testing.T) {
	m := Build(dsa.Sequence{9}, dsa.Queue, DefaultLayout())
	n, ok := m.Node("node-0")
	require.True(t, ok)
	assert.Equal(t, 9, n.Value)

	_, ok = m.Node("node-1")
	assert.False(t, ok)
}
