// Package demo builds the sample dashboard used by the CLI and the examples.
package demo

import (
	"github.com/agiangrant/boxtree/retained"
	"github.com/agiangrant/boxtree/tw"
)

const (
	Header retained.Name = iota + 1
	Sidebar
	Content
	Option
	Card
)

// Dashboard is a header with three radio options over a sidebar and a grid of
// cards. Below the md breakpoint the sidebar stacks above the content.
func Dashboard() *tw.Element {
	var items []*tw.Element
	for range 4 {
		items = append(items, tw.Container("h-8 my-1 rounded bg-slate-700 hover:bg-slate-600 active:bg-blue-600"))
	}

	var cards []*tw.Element
	for range 3 {
		cards = append(cards, tw.Container("flex-1 h-24 m-2 rounded-lg bg-slate-600 hover:bg-slate-500 focus:bg-indigo-500").Named(Card))
	}

	return tw.VStack("bg-slate-900",
		tw.HStack("h-12 px-4 items-center justify-between bg-slate-800",
			tw.Container("w-24 h-6 rounded bg-blue-500 hover:bg-blue-400"),
			tw.HStack("w-20 items-center justify-end",
				tw.Radio("mx-1").Named(Option),
				tw.Radio("mx-1").Named(Option),
				tw.Radio("mx-1").Named(Option),
			),
		).Named(Header),
		tw.Flex("flex-1 flex-col md:flex-row",
			tw.VStack("h-48 md:h-full md:w-48 p-2 bg-slate-800", items...).Named(Sidebar),
			tw.HStack("flex-1 p-2 items-start", cards...).Named(Content),
		),
	)
}
