// Package zonefile converts between RFC 1035-style zone file text and the
// record set model. Parse handles $TTL/$ORIGIN directives, comments,
// parenthesized multi-line values, and owner-name continuation lines;
// Serialize reproduces the fixed type ordering and owner-column alignment
// expected by consumers of exported files.
package zonefile

import (
	"fmt"

	"github.com/zonops/zonops/domain/model"
)

// DefaultTTL is applied to records when neither a $TTL directive nor a
// per-record TTL is present.
const DefaultTTL = 3600

// ParseOptions carries import-time defaults into the parser.
type ParseOptions struct {
	// DefaultTTL overrides the package default applied before any $TTL
	// directive is seen. Zero means DefaultTTL.
	DefaultTTL int64
}

// ZoneFile is the parsed form of one zone file: the zone origin plus its
// record sets in first-seen order. It is consumed once by the importer and
// discarded.
type ZoneFile struct {
	// Origin is the zone name as a dot-terminated FQDN.
	Origin string
	// Sets holds the record sets grouped by (name, type), names
	// zone-relative with "@" for the apex.
	Sets []*model.RecordSet
}

// ParseError reports malformed zone file input with its line context. It is
// fatal for the whole import; the parser never silently skips a line it
// cannot understand.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zone file line %d: %s: %q", e.Line, e.Msg, e.Text)
}

func parseErrorf(line int, text, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Text: text, Msg: fmt.Sprintf(format, args...)}
}
