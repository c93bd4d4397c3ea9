package model

import "context"

// RecordSetPutOptions carries the optimistic-concurrency precondition for a
// record set write. Zero value means an unconditional write.
type RecordSetPutOptions struct {
	// IfAbsent requires that no record set with the same (name, type) exists
	// (If-None-Match: *). A violation surfaces as *ConflictError.
	IfAbsent bool
	// IfMatch requires the remote etag to equal this value (If-Match). A
	// violation surfaces as *ConflictError.
	IfMatch string
}

// RecordSetPutOption is a functional option for RecordSetPort.CreateOrUpdate.
type RecordSetPutOption func(*RecordSetPutOptions)

// WithPutIfAbsent makes the write fail with *ConflictError when the record
// set already exists.
func WithPutIfAbsent() RecordSetPutOption {
	return func(o *RecordSetPutOptions) { o.IfAbsent = true }
}

// WithPutIfMatch makes the write fail with *ConflictError when the remote
// etag no longer equals etag.
func WithPutIfMatch(etag string) RecordSetPutOption {
	return func(o *RecordSetPutOptions) { o.IfMatch = etag }
}

// RecordSetListOptions filters a record set listing.
type RecordSetListOptions struct {
	// Type restricts the listing to one record type when non-empty.
	Type RecordType
}

// RecordSetListOption is a functional option for RecordSetPort.List.
type RecordSetListOption func(*RecordSetListOptions)

// WithListType restricts a listing to record sets of type t.
func WithListType(t RecordType) RecordSetListOption {
	return func(o *RecordSetListOptions) { o.Type = t }
}

// ZonePort is the domain port for DNS zone operations against the remote
// management service.
type ZonePort interface {
	// Get returns the zone or ErrZoneNotFound.
	Get(ctx context.Context, resourceGroup, zoneName string) (*Zone, error)
	// Create creates or updates the zone and returns the stored state.
	Create(ctx context.Context, resourceGroup string, zone *Zone) (*Zone, error)
	// Delete removes the zone and all of its record sets. Deleting an absent
	// zone returns ErrZoneNotFound.
	Delete(ctx context.Context, resourceGroup, zoneName string) error
	// List returns all zones within the resource group.
	List(ctx context.Context, resourceGroup string) ([]*Zone, error)
}

// RecordSetPort is the domain port for record set operations within a zone.
type RecordSetPort interface {
	// Get returns the record set or ErrRecordSetNotFound.
	Get(ctx context.Context, resourceGroup, zoneName, name string, rtype RecordType) (*RecordSet, error)
	// CreateOrUpdate writes the record set subject to the given precondition
	// and returns the stored state including its new etag. Precondition
	// violations surface as *ConflictError.
	CreateOrUpdate(ctx context.Context, resourceGroup, zoneName string, rset *RecordSet, opts ...RecordSetPutOption) (*RecordSet, error)
	// Delete removes the record set. Deleting an absent set is not an error.
	Delete(ctx context.Context, resourceGroup, zoneName, name string, rtype RecordType) error
	// List returns all record sets of the zone as one flat slice, following
	// server-side pagination to exhaustion. Any page error fails the whole
	// listing; a partial accumulation is never returned.
	List(ctx context.Context, resourceGroup, zoneName string, opts ...RecordSetListOption) ([]*RecordSet, error)
}
