package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/boxtree/geom"
	"github.com/agiangrant/boxtree/retained"
	"github.com/agiangrant/boxtree/tw"
)

func region(t *testing.T, tree *retained.Tree, name retained.Name) geom.Rect {
	t.Helper()
	ids := tree.IDsWithName(name)
	require.Len(t, ids, 1)
	node, err := tree.Get(ids[0])
	require.NoError(t, err)
	return node.Raw().Region
}

func TestDashboardLayout(t *testing.T) {
	tests := []struct {
		name    string
		size    geom.Vec2
		sidebar geom.Rect
		content geom.Rect
	}{
		{"narrow stacks the sidebar", geom.V(640, 480), geom.R(0, 48, 640, 192), geom.R(0, 240, 640, 240)},
		{"wide puts the sidebar beside", geom.V(1024, 768), geom.R(0, 48, 192, 720), geom.R(192, 48, 832, 720)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := tw.Default().NewTree(Dashboard(), tt.size.X)
			require.NoError(t, err)
			tree.Resize(tt.size)

			assert.Equal(t, geom.R(0, 0, tt.size.X, 48), region(t, tree, Header))
			assert.Equal(t, tt.sidebar, region(t, tree, Sidebar))
			assert.Equal(t, tt.content, region(t, tree, Content))
			assert.Len(t, tree.IDsWithName(Option), 3)
			assert.Len(t, tree.IDsWithName(Card), 3)
		})
	}
}

func TestDashboardRadioIsClickable(t *testing.T) {
	tree, err := tw.Default().NewTree(Dashboard(), 640)
	require.NoError(t, err)
	tree.Resize(geom.V(640, 480))

	id := tree.IDsWithName(Option)[0]
	node, err := tree.Get(id)
	require.NoError(t, err)
	center := node.Raw().PaddingRegion().Center()

	hit, ok := tree.TouchingID(center)
	require.True(t, ok)
	assert.Equal(t, id, hit)

	in := tree.Input()
	require.NoError(t, in.MoveCursor(center))
	require.NoError(t, in.Press(retained.MouseButtonLeft))
	require.NoError(t, in.Release(retained.MouseButtonLeft))
	assert.True(t, node.Widget.(*retained.RadioButton).Selected)
}
