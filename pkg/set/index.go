package set

import (
	"strconv"
	"strings"

	"github.com/elves/setvar/pkg/vars"
)

// SplitSlice splits an argument like name[1 2] into the name and whether an
// index expression follows it.
func SplitSlice(arg string) (name string, slice bool) {
	if i := strings.IndexByte(arg, '['); i >= 0 {
		return arg[:i], true
	}
	return arg, false
}

// ParseIndexes parses a token of the form name[index ...], where name must be
// the variable being targeted and each index is an integer or a range A..B.
// Indexes are 1-based; negative ones count from the end and are resolved
// against n, the current length of the variable. A range counts downwards
// when B < A.
//
// The returned error is always a *ParseError.
func ParseIndexes(token, name string, n int) ([]int, error) {
	i := 0
	for i < len(token) && vars.IsNameByte(token[i]) {
		i++
	}
	if i == len(token) || token[i] != '[' {
		return nil, &ParseError{Kind: MissingBracket, Name: name}
	}
	if token[:i] != name {
		return nil, &ParseError{Kind: NameMismatch, Name: name, Text: token[:i]}
	}
	p := indexParser{name: name, src: token[i+1:], n: n}
	return p.parse()
}

type indexParser struct {
	name    string
	src     string
	pos     int
	n       int
	indexes []int
}

func (p *indexParser) parse() ([]int, error) {
	p.skipSpace()
	for {
		if p.pos == len(p.src) {
			// Missing closing bracket.
			return nil, p.invalidAt(p.pos)
		}
		if p.src[p.pos] == ']' {
			break
		}
		start := p.pos
		lo, ok := p.number()
		if !ok {
			return nil, p.invalidAt(start)
		}
		if strings.HasPrefix(p.src[p.pos:], "..") {
			p.pos += 2
			hi, ok := p.number()
			if !ok {
				// A range without a valid upper bound ends the expression,
				// keeping its lower bound.
				return append(p.indexes, lo), nil
			}
			if !p.expandRange(lo, hi) {
				return nil, p.invalidAt(start)
			}
		} else {
			p.indexes = append(p.indexes, lo)
		}
		if !p.atDelimiter() {
			return nil, p.invalidAt(p.pos)
		}
		p.skipSpace()
	}
	if len(p.indexes) == 0 {
		return nil, &ParseError{Kind: NoIndex, Name: p.name}
	}
	return p.indexes, nil
}

func (p *indexParser) invalidAt(pos int) error {
	return &ParseError{Kind: InvalidIndex, Name: p.name, Text: p.src[pos:]}
}

// Parses an optionally signed integer, resolving negative values against the
// length.
func (p *indexParser) number() (int, bool) {
	start := p.pos
	end := start
	if end < len(p.src) && (p.src[end] == '-' || p.src[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(p.src) && '0' <= p.src[end] && p.src[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	i, err := strconv.Atoi(p.src[start:end])
	if err != nil {
		return 0, false
	}
	p.pos = end
	if i < 0 {
		i += p.n + 1
	}
	return i, true
}

// Appends lo through hi. Reports false without appending when the expression
// would hold more than maxIndex indexes.
func (p *indexParser) expandRange(lo, hi int) bool {
	step := 1
	span := uint64(hi) - uint64(lo)
	if hi < lo {
		step = -1
		span = uint64(lo) - uint64(hi)
	}
	if span >= maxIndex || uint64(len(p.indexes))+span >= maxIndex {
		return false
	}
	for i := lo; ; i += step {
		p.indexes = append(p.indexes, i)
		if i == hi {
			return true
		}
	}
}

func (p *indexParser) atDelimiter() bool {
	return p.pos == len(p.src) || p.src[p.pos] == ']' || isSpace(p.src[p.pos])
}

func (p *indexParser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
