package locator

import (
	"fmt"
	"strings"
)

// parser is a cursor over a locator expression.
type parser struct {
	expr string
	pos  int
}

// Parse parses a locator expression into a Path. Malformed expressions
// return a *SyntaxError so callers can distinguish "broken locator" from
// "no such element".
func Parse(expr string) (*Path, error) {
	p := &parser{expr: strings.TrimSpace(expr)}
	if p.expr == "" {
		return nil, p.errorf(0, "empty expression")
	}

	path := &Path{Raw: p.expr}

	if !p.consume("/") {
		return nil, p.errorf(p.pos, "expected leading '/'")
	}
	if p.consume("/") {
		path.Descendant = true
	}

	for {
		// A trailing attribute selection ends the path.
		if p.peek() == '@' {
			p.pos++
			name := p.ident()
			if name != "RtID" {
				return nil, p.errorf(p.pos, "only '/@RtID' attribute selection is supported")
			}
			if !p.eof() {
				return nil, p.errorf(p.pos, "'/@RtID' must end the expression")
			}
			if len(path.Segments) == 0 {
				return nil, p.errorf(p.pos, "'/@RtID' requires a preceding segment")
			}
			path.SelectRtID = true
			break
		}

		seg, err := p.segment()
		if err != nil {
			return nil, err
		}
		path.Segments = append(path.Segments, *seg)

		if p.eof() {
			break
		}
		if !p.consume("/") {
			return nil, p.errorf(p.pos, "expected '/' between segments")
		}
	}

	if len(path.Segments) == 0 {
		return nil, p.errorf(p.pos, "expected at least one segment")
	}
	return path, nil
}

// segment parses tag *predicate. The wildcard tag "*" is only meaningful
// with the descendant anchor but is accepted anywhere for simplicity.
func (p *parser) segment() (*Segment, error) {
	seg := &Segment{}
	if p.peek() == '*' {
		p.pos++
		seg.Tag = "*"
	} else {
		seg.Tag = p.ident()
		if seg.Tag == "" {
			return nil, p.errorf(p.pos, "expected element tag")
		}
	}

	for p.peek() == '[' {
		if err := p.predicate(seg); err != nil {
			return nil, err
		}
	}
	return seg, nil
}

// predicate parses "[@Attr=value]" or "[N]".
func (p *parser) predicate(seg *Segment) error {
	p.pos++ // consume '['

	if c := p.peek(); c >= '0' && c <= '9' {
		start := p.pos
		for c := p.peek(); c >= '0' && c <= '9'; c = p.peek() {
			p.pos++
		}
		n := 0
		for _, d := range p.expr[start:p.pos] {
			n = n*10 + int(d-'0')
		}
		if n == 0 {
			return p.errorf(start, "position index must be 1-based")
		}
		if !p.consume("]") {
			return p.errorf(p.pos, "expected ']' after position index")
		}
		seg.Index = n
		return nil
	}

	if !p.consume("@") {
		return p.errorf(p.pos, "expected '@' or digit after '['")
	}
	attr := p.ident()
	if attr == "" {
		return p.errorf(p.pos, "expected attribute name")
	}
	if !p.consume("=") {
		return p.errorf(p.pos, "expected '=' after attribute name")
	}
	value, err := p.quoted()
	if err != nil {
		return err
	}
	if !p.consume("]") {
		return p.errorf(p.pos, "expected ']' after attribute value")
	}

	// Unrecognized attributes are parsed and discarded, matching the
	// original wire format's tolerance.
	switch attr {
	case "Name":
		seg.Name = &value
	case "ClassName":
		seg.ClassName = &value
	case "AutomationId":
		seg.AutomationID = &value
	case "RtID":
		seg.RtID = &value
	}
	return nil
}

// quoted parses a value delimited by double quotes, single quotes, or the
// escaped `\"` form that survives embedding the locator in another quoted
// string.
func (p *parser) quoted() (string, error) {
	var delim string
	switch {
	case strings.HasPrefix(p.rest(), `\"`):
		delim = `\"`
	case p.peek() == '"':
		delim = `"`
	case p.peek() == '\'':
		delim = `'`
	default:
		return "", p.errorf(p.pos, "expected quoted attribute value")
	}
	p.pos += len(delim)

	end := strings.Index(p.rest(), delim)
	if end < 0 {
		return "", p.errorf(p.pos, "unterminated attribute value")
	}
	value := p.rest()[:end]
	p.pos += end + len(delim)
	return value, nil
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() {
		c := p.expr[p.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			p.pos++
			continue
		}
		break
	}
	return p.expr[start:p.pos]
}

func (p *parser) consume(s string) bool {
	if strings.HasPrefix(p.rest(), s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.expr[p.pos]
}

func (p *parser) rest() string { return p.expr[p.pos:] }
func (p *parser) eof() bool    { return p.pos >= len(p.expr) }

func (p *parser) errorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Expr: p.expr, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
