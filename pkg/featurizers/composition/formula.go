package composition

import (
	"fmt"
	"strconv"
)

// ParseFormula parses a chemical formula such as "Fe2O3" or "Ca(OH)2" into
// an element -> count map. Counts may be fractional ("Fe0.5"). Unknown
// element symbols and malformed formulas are errors.
func ParseFormula(s string) (map[string]float64, error) {
	if s == "" {
		return nil, fmt.Errorf("composition: empty formula")
	}
	p := &formulaParser{src: s}
	counts, err := p.parseGroup(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("composition: unexpected %q at offset %d in %q", p.src[p.pos], p.pos, s)
	}
	return counts, nil
}

type formulaParser struct {
	src string
	pos int
}

// parseGroup parses a run of elements and parenthesized subgroups until the
// end of input or a closing paren at the given nesting depth.
func (p *formulaParser) parseGroup(depth int) (map[string]float64, error) {
	counts := map[string]float64{}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '(':
			p.pos++
			sub, err := p.parseGroup(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) || p.src[p.pos] != ')' {
				return nil, fmt.Errorf("composition: unbalanced parentheses in %q", p.src)
			}
			p.pos++
			mul := p.parseCount()
			for el, n := range sub {
				counts[el] += n * mul
			}
		case c == ')':
			if depth == 0 {
				return nil, fmt.Errorf("composition: unbalanced parentheses in %q", p.src)
			}
			if len(counts) == 0 {
				return nil, fmt.Errorf("composition: empty group in %q", p.src)
			}
			return counts, nil
		case c >= 'A' && c <= 'Z':
			sym := p.parseSymbol()
			if _, ok := elements[sym]; !ok {
				return nil, fmt.Errorf("composition: unknown element %q in %q", sym, p.src)
			}
			counts[sym] += p.parseCount()
		default:
			return nil, fmt.Errorf("composition: unexpected %q at offset %d in %q", c, p.pos, p.src)
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("composition: empty formula %q", p.src)
	}
	return counts, nil
}

func (p *formulaParser) parseSymbol() string {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z' {
		p.pos++
	}
	return p.src[start:p.pos]
}

// parseCount reads an optional count after an element or group; absent
// counts are 1.
func (p *formulaParser) parseCount() float64 {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] == '.' || (p.src[p.pos] >= '0' && p.src[p.pos] <= '9')) {
		p.pos++
	}
	if start == p.pos {
		return 1
	}
	n, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		// digits and at most dots, so only malformed cases like "1.2.3"
		p.pos = start
		return 1
	}
	return n
}
