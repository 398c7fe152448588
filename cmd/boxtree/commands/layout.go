package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/agiangrant/boxtree/geom"
	"github.com/agiangrant/boxtree/internal/demo"
	"github.com/agiangrant/boxtree/retained"
)

var (
	widgetStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "27", Dark: "62"})
	regionStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "243"})
)

func newLayoutCmd(app *App) *cobra.Command {
	var width, height float32

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out the sample dashboard and print every node's region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 {
				width = app.cfg.Window.Width
			}
			if height <= 0 {
				height = app.cfg.Window.Height
			}

			p, err := app.parser()
			if err != nil {
				return err
			}
			tree, err := p.NewTree(demo.Dashboard(), width, app.treeOptions()...)
			if err != nil {
				return err
			}
			tree.Resize(geom.V(width, height))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), dumpTree(tree))
			return err
		},
	}

	cmd.Flags().Float32Var(&width, "width", 0, "Surface width in logical pixels (default from config)")
	cmd.Flags().Float32Var(&height, "height", 0, "Surface height in logical pixels (default from config)")

	return cmd
}

// dumpTree renders the tree with one line per node: widget, name and region.
func dumpTree(tree *retained.Tree) *ltree.Tree {
	var build func(id retained.NodeID) any
	build = func(id retained.NodeID) any {
		node, err := tree.Get(id)
		if err != nil {
			return nil
		}
		label := nodeLabel(node)
		children := node.Children()
		if len(children) == 0 {
			return label
		}
		branch := ltree.Root(label)
		for _, child := range children {
			branch.Child(build(child))
		}
		return branch
	}

	root, ok := build(tree.RootID()).(*ltree.Tree)
	if !ok {
		root = ltree.Root(nodeLabel(tree.Root()))
	}
	return root.EnumeratorStyle(branchStyle)
}

func nodeLabel(node *retained.Node) string {
	label := widgetStyle.Render(node.WidgetName())
	if name := node.Name(); name != retained.NoName {
		label += " " + nameStyle.Render(fmt.Sprintf("#%d", name))
	}
	return label + " " + regionStyle.Render(formatRect(node.Raw().Region))
}

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("%g,%g %gx%g", r.X(), r.Y(), r.Width(), r.Height())
}
