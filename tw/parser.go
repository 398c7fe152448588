// Package tw turns utility class strings such as
// "w-64 p-4 flex-col justify-between bg-blue-500" into style overrides for
// retained nodes.
package tw

import (
	"strconv"
	"strings"
	"sync"

	"github.com/agiangrant/boxtree/retained"
)

// State is the interaction state a variant applies to.
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
	StateActive
)

// Breakpoint is a responsive variant.
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM              // ≥640px
	BreakpointMD              // ≥768px
	BreakpointLG              // ≥1024px
	BreakpointXL              // ≥1280px
	Breakpoint2XL             // ≥1536px
)

// ComputedStyles holds the overrides of a class string sorted by variant.
type ComputedStyles struct {
	Base Partial

	Hover  Partial
	Focus  Partial
	Active Partial

	SM  Partial
	MD  Partial
	LG  Partial
	XL  Partial
	XXL Partial

	// Stacked holds classes carrying both variants, such as md:hover:bg-x,
	// indexed by [breakpoint-1][state-1].
	Stacked [Breakpoint2XL][StateActive]Partial
}

// ParsedClass is one class split into its variants and base utility.
type ParsedClass struct {
	Breakpoint     Breakpoint
	State          State
	BaseClass      string
	ArbitraryValue *ArbitraryValue // for classes like w-[33%]
}

// ArbitraryValue is the bracketed part of an arbitrary class.
type ArbitraryValue struct {
	Property string // "w", "bg", "rounded", ...
	Value    string // "33%", "#1da1f2", "22px", ...
}

// ============================================================================
// Parser
// ============================================================================

// Parser resolves classes against a theme.
type Parser struct {
	theme   Theme
	classes ClassMap
}

// NewParser builds the class map for theme.
func NewParser(theme Theme) *Parser {
	return &Parser{theme: theme, classes: NewClassMap(theme)}
}

// Theme returns the parser's theme.
func (p *Parser) Theme() Theme { return p.theme }

var defaultParser = sync.OnceValue(func() *Parser { return NewParser(DefaultTheme()) })

// Default returns the parser for DefaultTheme.
func Default() *Parser { return defaultParser() }

// Parse parses with the default theme.
func Parse(classes string) ComputedStyles { return Default().Parse(classes) }

// Apply applies the base (no variant) classes to style with the default theme.
func Apply(classes string, style *retained.Style) { Default().Apply(classes, style) }

// Parse sorts the classes of classStr into variant buckets.
// Unknown classes are ignored.
// Example: "bg-blue-500 hover:bg-blue-600 md:flex-row w-[33%]"
func (p *Parser) Parse(classStr string) ComputedStyles {
	var computed ComputedStyles
	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)

		var partial Partial
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			partial = p.classes[parsed.BaseClass]
		}
		if partial.IsEmpty() {
			continue
		}
		targetOf(&computed, parsed).Merge(partial)
	}
	return computed
}

// Apply applies the base classes of classStr to style.
func (p *Parser) Apply(classStr string, style *retained.Style) {
	p.Parse(classStr).Base.ApplyTo(style)
}

// ApplyFor applies classStr to style as it resolves at a surface width and
// interaction state.
func (p *Parser) ApplyFor(classStr string, width float32, state State, style *retained.Style) {
	cs := p.Parse(classStr)
	cs.ResolveForWidthWithState(width, p.theme.Breakpoints, state).ApplyTo(style)
}

// parseClass splits a class into variants and base utility.
// "hover:md:bg-blue-500" → {State: Hover, Breakpoint: MD, BaseClass: "bg-blue-500"}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")
	pc := ParsedClass{BaseClass: parts[len(parts)-1]}

	for _, variant := range parts[:len(parts)-1] {
		switch variant {
		case "hover":
			pc.State = StateHover
		case "focus":
			pc.State = StateFocus
		case "active":
			pc.State = StateActive
		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}
	return pc
}

// extractArbitraryValue splits "w-[33%]" into {Property: "w", Value: "33%"}.
func extractArbitraryValue(class string) *ArbitraryValue {
	i := strings.Index(class, "[")
	if i == -1 {
		return nil
	}
	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:i], "-"),
		Value:    strings.TrimSuffix(class[i+1:], "]"),
	}
}

// parseArbitraryValue converts an arbitrary value at parse time.
func parseArbitraryValue(arb *ArbitraryValue) Partial {
	switch arb.Property {
	case "bg":
		c, err := retained.ParseHex(arb.Value)
		if err != nil {
			return Partial{}
		}
		return Partial{Color: &c}
	case "rounded":
		if v, ok := parseDimension(arb.Value); ok {
			return Partial{Radius: &v}
		}
	case "grow", "shrink":
		f, err := strconv.ParseFloat(arb.Value, 32)
		if err != nil {
			return Partial{}
		}
		v := float32(f)
		if arb.Property == "grow" {
			return Partial{Grow: &v}
		}
		return Partial{Shrink: &v}
	}

	build, ok := sizeProps[arb.Property]
	if !ok {
		build, ok = spacingProps[arb.Property]
	}
	if !ok {
		return Partial{}
	}
	v, ok := parseDimension(arb.Value)
	if !ok {
		return Partial{}
	}
	return build(&v)
}

// parseDimension parses "12", "12px", "1.5rem" (16px each) or "33%".
func parseDimension(value string) (retained.Val, bool) {
	value = strings.TrimSpace(value)

	num, scale, pc := value, float32(1), false
	switch {
	case strings.HasSuffix(value, "px"):
		num = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "%"):
		num, pc = strings.TrimSuffix(value, "%"), true
	case strings.HasSuffix(value, "rem"):
		num, scale = strings.TrimSuffix(value, "rem"), 16
	}

	f, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return retained.Val{}, false
	}
	if pc {
		return retained.Pc(float32(f) / 100), true
	}
	return retained.Px(float32(f) * scale), true
}

// targetOf picks the bucket a parsed class merges into.
func targetOf(computed *ComputedStyles, parsed ParsedClass) *Partial {
	if parsed.Breakpoint != BreakpointBase && parsed.State != StateDefault {
		return &computed.Stacked[parsed.Breakpoint-1][parsed.State-1]
	}
	switch parsed.Breakpoint {
	case BreakpointSM:
		return &computed.SM
	case BreakpointMD:
		return &computed.MD
	case BreakpointLG:
		return &computed.LG
	case BreakpointXL:
		return &computed.XL
	case Breakpoint2XL:
		return &computed.XXL
	}

	switch parsed.State {
	case StateHover:
		return &computed.Hover
	case StateFocus:
		return &computed.Focus
	case StateActive:
		return &computed.Active
	default:
		return &computed.Base
	}
}
