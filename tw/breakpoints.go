package tw

// BreakpointConfig holds the pixel thresholds for responsive breakpoints.
// Styles are mobile-first: a variant applies at its width and above.
type BreakpointConfig struct {
	SM  float32 // ≥640px by default
	MD  float32 // ≥768px by default
	LG  float32 // ≥1024px by default
	XL  float32 // ≥1280px by default
	XXL float32 // ≥1536px by default (2xl)
}

// DefaultBreakpoints returns the standard breakpoint widths.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// ActiveBreakpoint returns the highest breakpoint width satisfies.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	switch {
	case width >= c.XXL:
		return Breakpoint2XL
	case width >= c.XL:
		return BreakpointXL
	case width >= c.LG:
		return BreakpointLG
	case width >= c.MD:
		return BreakpointMD
	case width >= c.SM:
		return BreakpointSM
	}
	return BreakpointBase
}

// ResolveForWidth merges base → sm → md → lg → xl → 2xl, stopping at the
// active breakpoint. Only fields set at a level override earlier ones.
func (cs *ComputedStyles) ResolveForWidth(width float32, config BreakpointConfig) Partial {
	result := cs.Base
	active := config.ActiveBreakpoint(width)
	for bp, p := range []*Partial{&cs.SM, &cs.MD, &cs.LG, &cs.XL, &cs.XXL} {
		if Breakpoint(bp+1) > active {
			break
		}
		result.Merge(*p)
	}
	return result
}

// ResolveForWidthWithState resolves the width first, then layers the state,
// then the stacked variants of that state up to the active breakpoint.
func (cs *ComputedStyles) ResolveForWidthWithState(width float32, config BreakpointConfig, state State) Partial {
	result := cs.ResolveForWidth(width, config)
	switch state {
	case StateHover:
		result.Merge(cs.Hover)
	case StateFocus:
		result.Merge(cs.Focus)
	case StateActive:
		result.Merge(cs.Active)
	default:
		return result
	}
	active := config.ActiveBreakpoint(width)
	for bp := BreakpointSM; bp <= active; bp++ {
		result.Merge(cs.Stacked[bp-1][state-1])
	}
	return result
}

// HasState reports whether any class targets state, with or without a
// breakpoint.
func (cs *ComputedStyles) HasState(state State) bool {
	var plain Partial
	switch state {
	case StateHover:
		plain = cs.Hover
	case StateFocus:
		plain = cs.Focus
	case StateActive:
		plain = cs.Active
	default:
		return false
	}
	if !plain.IsEmpty() {
		return true
	}
	for bp := range cs.Stacked {
		if !cs.Stacked[bp][state-1].IsEmpty() {
			return true
		}
	}
	return false
}
