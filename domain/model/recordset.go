package model

import (
	"fmt"
	"strings"
)

// RecordType represents DNS record set types supported by the zone engine.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeSOA   RecordType = "SOA"
	RecordTypePTR   RecordType = "PTR"
)

// RecordTypes lists all supported record types in canonical zone-file
// emission order. The index within this slice is the type sort key used
// by the exporter.
var RecordTypes = []RecordType{
	RecordTypeA,
	RecordTypeAAAA,
	RecordTypeCNAME,
	RecordTypeMX,
	RecordTypeNS,
	RecordTypeSRV,
	RecordTypeTXT,
	RecordTypeSOA,
	RecordTypePTR,
}

// ParseRecordType converts a type token to a RecordType.
func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(s)
	for _, known := range RecordTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported record type: %s", s)
}

// TypeIndex returns the position of t in the canonical emission order,
// or len(RecordTypes) when t is unknown.
func TypeIndex(t RecordType) int {
	for i, known := range RecordTypes {
		if t == known {
			return i
		}
	}
	return len(RecordTypes)
}

// Singleton reports whether t allows at most one value per record set.
func (t RecordType) Singleton() bool {
	return t == RecordTypeCNAME || t == RecordTypeSOA
}

// RecordValue is the tagged union of per-type record data. Each variant is
// a comparable struct so value-level equality is plain ==. The union is
// sealed: only the types in this package implement it.
type RecordValue interface {
	// RecordType returns the RR type this value belongs to.
	RecordType() RecordType
}

// ARecord holds an IPv4 address.
type ARecord struct {
	IPv4Address string
}

// AaaaRecord holds an IPv6 address.
type AaaaRecord struct {
	IPv6Address string
}

// CnameRecord holds the canonical name target. At most one per record set.
type CnameRecord struct {
	Cname string
}

// MxRecord holds a mail exchange preference and host.
type MxRecord struct {
	Preference int32
	Exchange   string
}

// NsRecord holds a delegated name server.
type NsRecord struct {
	Nsdname string
}

// SrvRecord holds a service locator tuple.
type SrvRecord struct {
	Priority int32
	Weight   int32
	Port     int32
	Target   string
}

// TxtRecord holds free-form text data.
type TxtRecord struct {
	Value string
}

// SoaRecord holds the start-of-authority tuple. At most one per zone.
type SoaRecord struct {
	Host         string
	Email        string
	SerialNumber int64
	RefreshTime  int64
	RetryTime    int64
	ExpireTime   int64
	MinimumTTL   int64
}

// PtrRecord holds a reverse-mapping pointer.
type PtrRecord struct {
	Ptrdname string
}

func (ARecord) RecordType() RecordType     { return RecordTypeA }
func (AaaaRecord) RecordType() RecordType  { return RecordTypeAAAA }
func (CnameRecord) RecordType() RecordType { return RecordTypeCNAME }
func (MxRecord) RecordType() RecordType    { return RecordTypeMX }
func (NsRecord) RecordType() RecordType    { return RecordTypeNS }
func (SrvRecord) RecordType() RecordType   { return RecordTypeSRV }
func (TxtRecord) RecordType() RecordType   { return RecordTypeTXT }
func (SoaRecord) RecordType() RecordType   { return RecordTypeSOA }
func (PtrRecord) RecordType() RecordType   { return RecordTypePTR }

// String renders the value in zone-file rdata presentation form. FQDN
// fields are dot-terminated.
func (r ARecord) String() string     { return r.IPv4Address }
func (r AaaaRecord) String() string  { return r.IPv6Address }
func (r CnameRecord) String() string { return fqdn(r.Cname) }
func (r MxRecord) String() string    { return fmt.Sprintf("%d %s", r.Preference, fqdn(r.Exchange)) }
func (r NsRecord) String() string    { return fqdn(r.Nsdname) }
func (r SrvRecord) String() string {
	return fmt.Sprintf("%d %d %d %s", r.Priority, r.Weight, r.Port, fqdn(r.Target))
}
func (r TxtRecord) String() string { return `"` + r.Value + `"` }
func (r SoaRecord) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d", fqdn(r.Host), fqdn(r.Email),
		r.SerialNumber, r.RefreshTime, r.RetryTime, r.ExpireTime, r.MinimumTTL)
}
func (r PtrRecord) String() string { return fqdn(r.Ptrdname) }

func fqdn(name string) string {
	if strings.HasSuffix(name, ".") {
		return name
	}
	return name + "."
}

// RecordSet is the canonical unit of DNS configuration: all values sharing
// one (owner name, RR type) pair within a zone. Name is zone-relative with
// "@" denoting the apex.
type RecordSet struct {
	Name     string            `json:"name"`
	Type     RecordType        `json:"type"`
	TTL      int64             `json:"ttl"`
	Etag     string            `json:"etag,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Values   []RecordValue     `json:"values"`
}

// NewRecordSet returns an empty record set for the given owner name and type.
func NewRecordSet(name string, rtype RecordType, ttl int64) *RecordSet {
	return &RecordSet{Name: name, Type: rtype, TTL: ttl}
}

// AddValue appends v to the record set. Values whose type does not match
// the set's declared type are rejected so that a mistyped set is
// unrepresentable. For singleton types (CNAME, SOA) the new value replaces
// any existing one; duplicate values of list types are ignored.
func (r *RecordSet) AddValue(v RecordValue) error {
	if v == nil {
		return fmt.Errorf("record set %s: nil value", r.Name)
	}
	if v.RecordType() != r.Type {
		return fmt.Errorf("record set %s: %s value not allowed in %s set", r.Name, v.RecordType(), r.Type)
	}
	if r.Type.Singleton() {
		r.Values = []RecordValue{v}
		return nil
	}
	if r.HasValue(v) {
		return nil
	}
	r.Values = append(r.Values, v)
	return nil
}

// HasValue reports whether an equal value tuple is already present.
func (r *RecordSet) HasValue(v RecordValue) bool {
	for _, existing := range r.Values {
		if existing == v {
			return true
		}
	}
	return false
}

// Key returns the (name, type) uniqueness key of the record set within a zone.
func (r *RecordSet) Key() string {
	return r.Name + "/" + string(r.Type)
}

// Clone returns a deep copy of the record set.
func (r *RecordSet) Clone() *RecordSet {
	out := &RecordSet{
		Name: r.Name,
		Type: r.Type,
		TTL:  r.TTL,
		Etag: r.Etag,
	}
	if r.Metadata != nil {
		out.Metadata = make(map[string]string, len(r.Metadata))
		for k, v := range r.Metadata {
			out.Metadata[k] = v
		}
	}
	if r.Values != nil {
		out.Values = append([]RecordValue(nil), r.Values...)
	}
	return out
}

// EqualValues reports whether both record sets hold the same value tuples,
// ignoring order.
func (r *RecordSet) EqualValues(other *RecordSet) bool {
	if len(r.Values) != len(other.Values) {
		return false
	}
	for _, v := range r.Values {
		if !other.HasValue(v) {
			return false
		}
	}
	return true
}

// Validate checks the record set invariants: a known type, a non-empty
// owner name, a non-negative TTL, matching value types, and the singleton
// constraint for CNAME/SOA.
func (r *RecordSet) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("record set name is required")
	}
	if _, err := ParseRecordType(string(r.Type)); err != nil {
		return fmt.Errorf("record set %s: %w", r.Name, err)
	}
	if r.TTL < 0 {
		return fmt.Errorf("record set %s: negative TTL %d", r.Name, r.TTL)
	}
	if r.Type.Singleton() && len(r.Values) > 1 {
		return fmt.Errorf("record set %s: %s allows at most one value, got %d", r.Name, r.Type, len(r.Values))
	}
	for _, v := range r.Values {
		if v.RecordType() != r.Type {
			return fmt.Errorf("record set %s: %s value in %s set", r.Name, v.RecordType(), r.Type)
		}
	}
	return nil
}
