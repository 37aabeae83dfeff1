package jdxi

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// DisplayKind tags how a raw parameter value is rendered for humans.
type DisplayKind int

const (
	// DisplayLinear shows the raw value unchanged.
	DisplayLinear DisplayKind = iota
	// DisplayBipolar shows raw minus the descriptor's zero point, signed.
	DisplayBipolar
	// DisplaySwitch shows the label at index raw-Min.
	DisplaySwitch
	// DisplayTimeMs maps the raw range onto MinMs..MaxMs on a log curve.
	DisplayTimeMs
)

// Param describes one named control: where it lives relative to its section
// base, which raw values it accepts, and how the value reads on a panel.
// Zero is the raw value that means "center" for bipolar and tune parameters
// (0x40 for 1-byte, 0x400 or 0x8000 for nibbled ones); it is a descriptor
// field, never inferred from the width.
type Param struct {
	Name   string
	Offset Address
	Min    int
	Max    int
	Zero   int
	Width  int // 1, 2 or 4 bytes on the wire

	Display DisplayKind
	Labels  []string // DisplaySwitch only

	MinMs float64 // DisplayTimeMs only
	MaxMs float64
}

// Validate rejects raw values outside the descriptor's range.
func (p *Param) Validate(value int) error {
	if value < p.Min || value > p.Max {
		return fmt.Errorf("%s: %d not in [%d, %d]: %w", p.Name, value, p.Min, p.Max, ErrOutOfRange)
	}
	return nil
}

// DisplayValue renders a raw value per the descriptor's display kind. It is
// pure; out-of-range raws render as the bare number rather than failing, the
// caller is expected to have validated already.
func (p *Param) DisplayValue(raw int) string {
	switch p.Display {
	case DisplayBipolar:
		return fmt.Sprintf("%+d", raw-p.Zero)
	case DisplaySwitch:
		i := raw - p.Min
		if i >= 0 && i < len(p.Labels) {
			return p.Labels[i]
		}
	case DisplayTimeMs:
		ms := p.MsFromRaw(raw)
		if ms >= 1000 {
			return fmt.Sprintf("%.2f s", ms/1000)
		}
		return fmt.Sprintf("%.0f ms", ms)
	}
	return fmt.Sprintf("%d", raw)
}

// MsFromRaw maps a raw value onto the descriptor's millisecond range using
// an exponential curve, matching how the hardware spaces its time knobs.
func (p *Param) MsFromRaw(raw int) float64 {
	if p.MinMs <= 0 || p.MaxMs <= p.MinMs || p.Max <= p.Min {
		return float64(raw)
	}
	t := float64(raw-p.Min) / float64(p.Max-p.Min)
	return p.MinMs * math.Pow(p.MaxMs/p.MinMs, t)
}

// RawFromMs is the inverse of MsFromRaw, clamped to the raw range.
func (p *Param) RawFromMs(ms float64) int {
	if p.MinMs <= 0 || p.MaxMs <= p.MinMs || p.Max <= p.Min {
		return p.Min
	}
	if ms < p.MinMs {
		return p.Min
	}
	if ms > p.MaxMs {
		return p.Max
	}
	t := math.Log(ms/p.MinMs) / math.Log(p.MaxMs/p.MinMs)
	raw := p.Min + int(math.Round(t*float64(p.Max-p.Min)))
	if raw < p.Min {
		raw = p.Min
	}
	if raw > p.Max {
		raw = p.Max
	}
	return raw
}

// Section groups the descriptors that share one area base, stride and
// partial count: a tone's common page, its per-partial pages, a drum kit's
// per-key pages, one effect block.
type Section struct {
	Synths   []SynthType
	Kind     AreaKind
	Base     Address // offset from the (synth, kind) area base
	Stride   Address // per-partial stride; zero for single-instance sections
	Partials int     // number of addressable instances, at least 1
	Params   []Param
}

type entry struct {
	param    *Param
	base     Address // resolved (area + section base)
	stride   Address
	partials int
}

// Registry maps symbolic parameter names to descriptors and resolved
// addresses back to descriptors. Built once from static section tables and
// read-only afterwards, so lookups need no locking.
type Registry struct {
	byName map[SynthType]map[string]*entry
	byAddr map[Address]*Param
}

// NewRegistry resolves every section against its area bases and indexes the
// descriptors by name and by absolute address. Overflowing a 7-bit address
// byte while resolving is a table bug and fails construction.
func NewRegistry(sections []Section) (*Registry, error) {
	r := &Registry{
		byName: make(map[SynthType]map[string]*entry),
		byAddr: make(map[Address]*Param),
	}
	for si := range sections {
		sec := &sections[si]
		partials := sec.Partials
		if partials < 1 {
			partials = 1
		}
		for _, synth := range sec.Synths {
			area, err := AreaFor(synth, sec.Kind)
			if err != nil {
				return nil, err
			}
			base, err := area.Add(sec.Base)
			if err != nil {
				return nil, fmt.Errorf("section base for %s: %w", synth, err)
			}
			names := r.byName[synth]
			if names == nil {
				names = make(map[string]*entry)
				r.byName[synth] = names
			}
			for pi := range sec.Params {
				p := &sec.Params[pi]
				if p.Width == 0 {
					p.Width = 1
				}
				if _, ok := names[p.Name]; ok {
					return nil, fmt.Errorf("duplicate parameter %q for synth %s", p.Name, synth)
				}
				names[p.Name] = &entry{param: p, base: base, stride: sec.Stride, partials: partials}
				for partial := 0; partial < partials; partial++ {
					addr, err := Resolve(base, p.Offset, partial, sec.Stride)
					if err != nil {
						return nil, fmt.Errorf("resolve %s %q partial %d: %w", synth, p.Name, partial, err)
					}
					r.byAddr[addr] = p
				}
			}
		}
	}
	return r, nil
}

// Lookup returns the descriptor registered under name for one synth engine.
func (r *Registry) Lookup(synth SynthType, name string) (*Param, error) {
	if e, ok := r.byName[synth][name]; ok {
		return e.param, nil
	}
	return nil, fmt.Errorf("%s %q: %w", synth, name, ErrUnknownParameter)
}

// Resolve returns the descriptor and its absolute address for one partial.
func (r *Registry) Resolve(synth SynthType, name string, partial int) (*Param, Address, error) {
	e, ok := r.byName[synth][name]
	if !ok {
		return nil, Address{}, fmt.Errorf("%s %q: %w", synth, name, ErrUnknownParameter)
	}
	if partial < 0 || partial >= e.partials {
		return nil, Address{}, fmt.Errorf("%s %q: partial %d not in [0, %d): %w",
			synth, name, partial, e.partials, ErrUnknownParameter)
	}
	addr, err := Resolve(e.base, e.param.Offset, partial, e.stride)
	if err != nil {
		return nil, Address{}, err
	}
	return e.param, addr, nil
}

// LookupAddress finds the descriptor registered at a resolved absolute
// address, if any. The decoder uses this to pick the de-nibbling width for
// incoming DT1 payloads.
func (r *Registry) LookupAddress(addr Address) (*Param, bool) {
	p, ok := r.byAddr[addr]
	return p, ok
}

// Names lists the parameter names registered for one synth engine, sorted.
func (r *Registry) Names(synth SynthType) []string {
	names := make([]string, 0, len(r.byName[synth]))
	for n := range r.byName[synth] {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// DefaultRegistry returns the registry built from the static JD-Xi tables in
// this package. The tables are fixed, so a build failure here is a
// programming error and panics.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(allSections())
		if err != nil {
			panic(fmt.Sprintf("jdxi: bad parameter tables: %v", err))
		}
		defaultReg = r
	})
	return defaultReg
}
