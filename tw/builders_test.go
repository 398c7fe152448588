package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/boxtree/geom"
	"github.com/agiangrant/boxtree/retained"
)

func regionOf(t *testing.T, tree *retained.Tree, id retained.NodeID) geom.Rect {
	t.Helper()
	node, err := tree.Get(id)
	require.NoError(t, err)
	return node.Raw().Region
}

func TestNewTreeLayout(t *testing.T) {
	const (
		header retained.Name = iota + 1
		radio
		fill
	)
	p := Default()
	tree, err := p.NewTree(VStack("p-2",
		HStack("h-10",
			Radio("mx-1").Named(radio),
			Container("flex-1 bg-red-500").Named(fill),
		).Named(header),
		Container("flex-1"),
	), 0)
	require.NoError(t, err)
	tree.Resize(geom.V(200, 100))

	one := func(name retained.Name) retained.NodeID {
		ids := tree.IDsWithName(name)
		require.Len(t, ids, 1)
		return ids[0]
	}

	assert.Equal(t, retained.FlexColumn, tree.Root().Style.Direction)
	assert.Equal(t, geom.R(8, 8, 184, 40), regionOf(t, tree, one(header)))
	assert.Equal(t, geom.R(8, 8, 25, 17), regionOf(t, tree, one(radio)))
	assert.Equal(t, geom.R(33, 8, 159, 40), regionOf(t, tree, one(fill)))
	assert.Equal(t, 5, tree.Len())

	node, err := tree.Get(one(radio))
	require.NoError(t, err)
	assert.Equal(t, "RadioButton", node.WidgetName())
	node, err = tree.Get(one(fill))
	require.NoError(t, err)
	assert.Equal(t, *color(t, "red-500"), node.Style.Color)
}

func TestMountResponsive(t *testing.T) {
	tests := []struct {
		name  string
		width float32
		want  retained.FlexDirection
	}{
		{"narrow stacks", 300, retained.FlexColumn},
		{"md lays out a row", 800, retained.FlexRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := retained.New(retained.NewNode(retained.Pane{}))
			require.NoError(t, err)
			p := Default()
			id, err := p.Mount(tree, tree.RootID(), Flex("flex-col md:flex-row",
				Widget(retained.Pane{}, "md:w-8"),
			), tt.width)
			require.NoError(t, err)

			node, err := tree.Get(id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, node.Style.Direction)

			child, err := tree.Get(node.Children()[0])
			require.NoError(t, err)
			if tt.width >= 768 {
				assert.Equal(t, retained.Px(32), child.Style.Width)
			} else {
				assert.Equal(t, retained.Auto, child.Style.Width)
			}
		})
	}
}

func TestMountUnknownParent(t *testing.T) {
	tree, err := retained.New(retained.NewNode(retained.Pane{}))
	require.NoError(t, err)
	_, err = Default().Mount(tree, retained.NodeID{}, Container(""), 0)
	assert.ErrorIs(t, err, retained.ErrParentNotFound)
}

func TestSpawnFromWidget(t *testing.T) {
	p := Default()
	owner := &retained.WidgetFunc{
		Name: "Toolbar",
		SpawnFn: func(scope *retained.Scope) error {
			return p.Spawn(scope, HStack("", Radio(""), Radio("")), 0)
		},
	}
	tree, err := retained.New(retained.NewNode(retained.Pane{}))
	require.NoError(t, err)
	ownerID, err := tree.Insert(tree.RootID(), retained.NewNode(owner))
	require.NoError(t, err)
	assert.Equal(t, 5, tree.Len())

	var radios int
	tree.Walk(func(_ retained.NodeID, node *retained.Node, _ int) bool {
		if node.WidgetName() == "RadioButton" {
			radios++
			ancestor, ok := node.Ancestor()
			assert.True(t, ok)
			assert.Equal(t, ownerID, ancestor)
		}
		return true
	})
	assert.Equal(t, 2, radios)
}

func TestBoxIsTransparentByDefault(t *testing.T) {
	style := retained.DefaultStyle()
	NewBox("p-1").Style(&style)
	assert.Equal(t, retained.Clear, style.Color)
}

func TestSetViewportRestylesBoxes(t *testing.T) {
	tree, err := Default().NewTree(Container("",
		Flex("flex-col md:flex-row bg-gray-200 hover:bg-gray-300"),
		Widget(retained.Pane{}, "md:w-8"),
	), 300)
	require.NoError(t, err)
	children := tree.Root().Children()
	flexID := children[0]
	flex, err := tree.Get(flexID)
	require.NoError(t, err)
	require.Equal(t, retained.FlexColumn, flex.Style.Direction)

	require.NoError(t, tree.FireBubble(retained.EnterEvent{}, flexID))
	require.Equal(t, *color(t, "gray-300"), flex.Style.Color)

	assert.Equal(t, 2, SetViewport(tree, 800), "root and flex boxes restyled")
	assert.Equal(t, retained.FlexRow, flex.Style.Direction)
	assert.Equal(t, *color(t, "gray-300"), flex.Style.Color, "hover state survives")
	assert.Zero(t, SetViewport(tree, 800), "unchanged width is a no-op")

	pane, err := tree.Get(children[1])
	require.NoError(t, err)
	assert.Equal(t, retained.Auto, pane.Style.Width, "non-box widgets keep their mount width")

	assert.Equal(t, 2, SetViewport(tree, 300))
	assert.Equal(t, retained.FlexColumn, flex.Style.Direction)
}
