package brace

import (
	"fmt"
	"regexp"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// memberPattern captures "name": value pairs. A composite value is matched up
// to its first closing brace, so only one level of nesting is captured whole.
var memberPattern = regexp.MustCompile(
	`"(\w+)":\s*((?:\{[^}]*\})|(?:"[^"]*")|(?:-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)|(?:true|false|null))`)

// literalPattern matches the unquoted scalar literals of the grammar.
var literalPattern = regexp.MustCompile(`^(?:-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?|true|false|null)$`)

// Members is the raw text of each member of an object, in the order the
// names first appeared. A repeated name keeps its first position and takes
// the last value.
type Members struct {
	m *orderedmap.OrderedMap[string, string]
}

func newMembers() *Members {
	return &Members{m: orderedmap.New[string, string]()}
}

func (ms *Members) set(name, raw string) {
	ms.m.Set(name, raw)
}

// Get returns the raw text of the named member.
func (ms *Members) Get(name string) (string, bool) {
	if ms == nil || ms.m == nil {
		return "", false
	}
	return ms.m.Get(name)
}

// Len returns the number of distinct member names.
func (ms *Members) Len() int {
	if ms == nil || ms.m == nil {
		return 0
	}
	return ms.m.Len()
}

// Names returns member names in order.
func (ms *Members) Names() []string {
	names := make([]string, 0, ms.Len())
	ms.Each(func(name, _ string) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Each calls fn for every member in order until fn returns false.
func (ms *Members) Each(fn func(name, raw string) bool) {
	if ms == nil || ms.m == nil {
		return
	}
	for pair := ms.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// parseMembers extracts members with the single-level pattern. Text that does
// not match is skipped, so this never fails.
func parseMembers(text string) *Members {
	ms := newMembers()
	for _, m := range memberPattern.FindAllStringSubmatch(text, -1) {
		ms.set(m[1], m[2])
	}
	return ms
}

// scanMembers extracts members of an object with bracket counting, capturing
// nested objects of any depth. Braces inside strings are ignored.
func scanMembers(text string) (*Members, error) {
	s := &scanner{src: text}
	ms := newMembers()

	s.skipSpace()
	if !s.consume('{') {
		return nil, s.errorf("expected '{'")
	}
	s.skipSpace()
	if s.consume('}') {
		return ms, s.end()
	}

	for {
		s.skipSpace()
		name, err := s.quoted()
		if err != nil {
			return nil, err
		}
		s.skipSpace()
		if !s.consume(':') {
			return nil, s.errorf("expected ':' after member %q", name)
		}
		s.skipSpace()
		raw, err := s.value()
		if err != nil {
			return nil, err
		}
		ms.set(name, raw)

		s.skipSpace()
		if s.consume(',') {
			continue
		}
		if s.consume('}') {
			break
		}
		return nil, s.errorf("expected ',' or '}'")
	}

	return ms, s.end()
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", s.pos, fmt.Sprintf(format, args...))
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) consume(c byte) bool {
	if s.pos < len(s.src) && s.src[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) end() error {
	s.skipSpace()
	if s.pos != len(s.src) {
		return s.errorf("unexpected trailing text")
	}
	return nil
}

// quoted reads a string and returns its content without quotes.
func (s *scanner) quoted() (string, error) {
	start := s.pos
	if err := s.skipString(); err != nil {
		return "", err
	}
	return s.src[start+1 : s.pos-1], nil
}

func (s *scanner) skipString() error {
	if !s.consume('"') {
		return s.errorf("expected '\"'")
	}
	for s.pos < len(s.src) {
		if s.src[s.pos] == '"' {
			s.pos++
			return nil
		}
		s.pos++
	}
	return s.errorf("unterminated string")
}

// value reads one raw value and returns its text.
func (s *scanner) value() (string, error) {
	start := s.pos
	if s.pos >= len(s.src) {
		return "", s.errorf("expected value")
	}

	switch s.src[s.pos] {
	case '"':
		if err := s.skipString(); err != nil {
			return "", err
		}
	case '{':
		depth := 0
		for {
			if s.pos >= len(s.src) {
				return "", s.errorf("unbalanced '{'")
			}
			switch s.src[s.pos] {
			case '"':
				if err := s.skipString(); err != nil {
					return "", err
				}
				continue
			case '{':
				depth++
			case '}':
				depth--
			}
			s.pos++
			if depth == 0 {
				break
			}
		}
	default:
		for s.pos < len(s.src) {
			c := s.src[s.pos]
			if c == ',' || c == '}' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
				break
			}
			s.pos++
		}
		if lit := s.src[start:s.pos]; !literalPattern.MatchString(lit) {
			s.pos = start
			return "", s.errorf("invalid literal %q", lit)
		}
	}

	return s.src[start:s.pos], nil
}
