package zonefile

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/dnsname"
)

const classIN = "IN"

// Parse converts zone file text into record sets grouped by (name, type).
// It is a pure function: no I/O, and identical input always yields record
// sets and values in the same order. Malformed input fails with *ParseError
// carrying the offending line.
func Parse(zoneName, text string, opts ParseOptions) (*ZoneFile, error) {
	defaultTTL := opts.DefaultTTL
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	p := &parser{
		zoneName: dnsname.Trim(zoneName),
		origin:   dnsname.Fqdn(zoneName),
		ttl:      defaultTTL,
		sets:     make(map[string]*model.RecordSet),
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		line := stripComment(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Join parenthesized multi-line values (the SOA idiom) into one
		// logical line before tokenizing.
		startLine := lineNum
		if hasUnquotedParen(line) {
			joined, consumed, err := joinMultiLine(scanner, line, startLine)
			if err != nil {
				return nil, err
			}
			lineNum += consumed
			line = joined
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "$") {
			if err := p.directive(trimmed, startLine, raw); err != nil {
				return nil, err
			}
			continue
		}

		if err := p.record(line, startLine, raw); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, parseErrorf(lineNum, "", "read zone file text: %v", err)
	}

	return &ZoneFile{Origin: p.origin, Sets: p.order}, nil
}

type parser struct {
	zoneName string
	origin   string
	ttl      int64
	owner    string // last explicit owner FQDN, for continuation lines
	sets     map[string]*model.RecordSet
	order    []*model.RecordSet
}

// joinMultiLine consumes scanner lines until the parenthesis balance of the
// logical record closes. It returns the joined line and the number of extra
// physical lines consumed.
func joinMultiLine(scanner *bufio.Scanner, first string, startLine int) (string, int, error) {
	var b strings.Builder
	b.WriteString(first)
	balance := parenBalance(first)
	consumed := 0
	for balance > 0 && scanner.Scan() {
		consumed++
		next := stripComment(scanner.Text())
		if strings.TrimSpace(next) == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(next))
		balance += parenBalance(next)
	}
	if balance > 0 {
		return "", consumed, parseErrorf(startLine, first, "unterminated parenthesized value")
	}
	return b.String(), consumed, nil
}

func (p *parser) directive(line string, lineNum int, raw string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "$TTL":
		if len(fields) < 2 {
			return parseErrorf(lineNum, raw, "$TTL requires a value")
		}
		ttl, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || ttl < 0 {
			return parseErrorf(lineNum, raw, "invalid $TTL value %s", fields[1])
		}
		p.ttl = ttl
	case "$ORIGIN":
		if len(fields) < 2 {
			return parseErrorf(lineNum, raw, "$ORIGIN requires a domain name")
		}
		origin := dnsname.Fqdn(fields[1])
		if err := dnsname.Validate(origin); err != nil {
			return parseErrorf(lineNum, raw, "invalid $ORIGIN: %v", err)
		}
		p.origin = origin
	default:
		// $INCLUDE would require file I/O, $GENERATE template expansion;
		// neither belongs in a pure text parser.
		return parseErrorf(lineNum, raw, "unsupported directive %s", fields[0])
	}
	return nil
}

func (p *parser) record(line string, lineNum int, raw string) error {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return nil
	}

	// A line starting with whitespace omits the owner name and inherits it
	// from the preceding record.
	continuation := line[0] == ' ' || line[0] == '\t'
	var owner string
	if continuation {
		if p.owner == "" {
			return parseErrorf(lineNum, raw, "owner name omitted with no preceding record")
		}
		owner = p.owner
	} else {
		owner = dnsname.Qualify(tokens[0], p.origin)
		tokens = tokens[1:]
		p.owner = owner
	}

	// Remaining pattern: [ttl] [class] type rdata...
	ttl := p.ttl
	if len(tokens) > 0 {
		if n, err := strconv.ParseInt(tokens[0], 10, 64); err == nil {
			if n < 0 {
				return parseErrorf(lineNum, raw, "negative TTL %d", n)
			}
			ttl = n
			tokens = tokens[1:]
		}
	}
	if len(tokens) > 0 && strings.EqualFold(tokens[0], classIN) {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return parseErrorf(lineNum, raw, "missing record type")
	}

	rtype, err := model.ParseRecordType(strings.ToUpper(tokens[0]))
	if err != nil {
		return parseErrorf(lineNum, raw, "%v", err)
	}
	data := tokens[1:]

	value, err := ParseValue(rtype, data, p.origin)
	if err != nil {
		return parseErrorf(lineNum, raw, "%v", err)
	}

	relName, err := dnsname.Relative(owner, p.zoneName)
	if err != nil {
		return parseErrorf(lineNum, raw, "%v", err)
	}

	key := relName + "/" + string(rtype)
	rset, ok := p.sets[key]
	if !ok {
		rset = model.NewRecordSet(relName, rtype, ttl)
		p.sets[key] = rset
		p.order = append(p.order, rset)
	}
	if err := rset.AddValue(value); err != nil {
		return parseErrorf(lineNum, raw, "%v", err)
	}
	return nil
}
