package tw

import "github.com/agiangrant/boxtree/retained"

// ClassMap maps a utility class (without variants) to its overrides.
type ClassMap map[string]Partial

// spacingProps are the spacing utilities and the sides they set.
var spacingProps = map[string]func(v *retained.Val) Partial{
	"p":  func(v *retained.Val) Partial { return Partial{PaddingTop: v, PaddingRight: v, PaddingBottom: v, PaddingLeft: v} },
	"px": func(v *retained.Val) Partial { return Partial{PaddingLeft: v, PaddingRight: v} },
	"py": func(v *retained.Val) Partial { return Partial{PaddingTop: v, PaddingBottom: v} },
	"pt": func(v *retained.Val) Partial { return Partial{PaddingTop: v} },
	"pr": func(v *retained.Val) Partial { return Partial{PaddingRight: v} },
	"pb": func(v *retained.Val) Partial { return Partial{PaddingBottom: v} },
	"pl": func(v *retained.Val) Partial { return Partial{PaddingLeft: v} },
	"m":  func(v *retained.Val) Partial { return Partial{MarginTop: v, MarginRight: v, MarginBottom: v, MarginLeft: v} },
	"mx": func(v *retained.Val) Partial { return Partial{MarginLeft: v, MarginRight: v} },
	"my": func(v *retained.Val) Partial { return Partial{MarginTop: v, MarginBottom: v} },
	"mt": func(v *retained.Val) Partial { return Partial{MarginTop: v} },
	"mr": func(v *retained.Val) Partial { return Partial{MarginRight: v} },
	"mb": func(v *retained.Val) Partial { return Partial{MarginBottom: v} },
	"ml": func(v *retained.Val) Partial { return Partial{MarginLeft: v} },
}

// sizeProps are the sizing utilities. They also accept fractions and "full".
var sizeProps = map[string]func(v *retained.Val) Partial{
	"w":     func(v *retained.Val) Partial { return Partial{Width: v} },
	"h":     func(v *retained.Val) Partial { return Partial{Height: v} },
	"min-w": func(v *retained.Val) Partial { return Partial{MinWidth: v} },
	"min-h": func(v *retained.Val) Partial { return Partial{MinHeight: v} },
	"max-w": func(v *retained.Val) Partial { return Partial{MaxWidth: v} },
	"max-h": func(v *retained.Val) Partial { return Partial{MaxHeight: v} },
	"basis": func(v *retained.Val) Partial { return Partial{Basis: v} },
}

var fractions = map[string]float32{
	"1/2": 1.0 / 2,
	"1/3": 1.0 / 3,
	"2/3": 2.0 / 3,
	"1/4": 1.0 / 4,
	"3/4": 3.0 / 4,
	"1/5": 1.0 / 5,
	"2/5": 2.0 / 5,
	"3/5": 3.0 / 5,
	"4/5": 4.0 / 5,
}

// NewClassMap builds every utility class the theme supports.
func NewClassMap(theme Theme) ClassMap {
	m := ClassMap{}

	for step, px := range theme.Spacing {
		v := ptr(retained.Px(px))
		for prop, build := range spacingProps {
			m[prop+"-"+step] = build(v)
		}
		for prop, build := range sizeProps {
			m[prop+"-"+step] = build(v)
		}
	}
	for prop, build := range sizeProps {
		m[prop+"-full"] = build(ptr(retained.Pc(1)))
		m[prop+"-auto"] = build(ptr(retained.Auto))
		for name, f := range fractions {
			m[prop+"-"+name] = build(ptr(retained.Pc(f)))
		}
	}
	for prop, build := range spacingProps {
		m[prop+"-auto"] = build(ptr(retained.Auto))
	}

	for name, c := range theme.Colors {
		m["bg-"+name] = Partial{Color: ptr(c)}
	}

	for name, px := range theme.Radii {
		class := "rounded"
		if name != "" {
			class += "-" + name
		}
		m[class] = Partial{Radius: ptr(retained.Px(px))}
	}

	for class, dir := range map[string]retained.FlexDirection{
		"flex-row":         retained.FlexRow,
		"flex-row-reverse": retained.FlexRowReverse,
		"flex-col":         retained.FlexColumn,
		"flex-col-reverse": retained.FlexColumnReverse,
	} {
		m[class] = Partial{Direction: ptr(dir)}
	}
	for class, j := range map[string]retained.JustifyContent{
		"justify-start":   retained.JustifyStart,
		"justify-end":     retained.JustifyEnd,
		"justify-center":  retained.JustifyCenter,
		"justify-between": retained.JustifyBetween,
		"justify-around":  retained.JustifyAround,
		"justify-evenly":  retained.JustifyEvenly,
	} {
		m[class] = Partial{Justify: ptr(j)}
	}
	for class, a := range map[string]retained.AlignItems{
		"items-start":   retained.AlignStart,
		"items-end":     retained.AlignEnd,
		"items-center":  retained.AlignCenter,
		"items-stretch": retained.AlignStretch,
	} {
		m[class] = Partial{Align: ptr(a)}
	}
	for class, a := range map[string]retained.AlignSelf{
		"self-auto":    retained.AlignSelfAuto,
		"self-start":   retained.AlignSelfStart,
		"self-end":     retained.AlignSelfEnd,
		"self-center":  retained.AlignSelfCenter,
		"self-stretch": retained.AlignSelfStretch,
	} {
		m[class] = Partial{AlignSelf: ptr(a)}
	}

	m["grow"] = Partial{Grow: ptr[float32](1)}
	m["grow-0"] = Partial{Grow: ptr[float32](0)}
	m["shrink"] = Partial{Shrink: ptr[float32](1)}
	m["shrink-0"] = Partial{Shrink: ptr[float32](0)}
	m["flex-1"] = Partial{Grow: ptr[float32](1), Shrink: ptr[float32](1), Basis: ptr(retained.Px(0))}
	m["flex-auto"] = Partial{Grow: ptr[float32](1), Shrink: ptr[float32](1), Basis: ptr(retained.Auto)}
	m["flex-none"] = Partial{Grow: ptr[float32](0), Shrink: ptr[float32](0), Basis: ptr(retained.Auto)}

	return m
}
