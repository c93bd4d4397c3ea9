package zone

import (
	"context"
	"fmt"

	"github.com/zonops/zonops/domain/model"
)

// fakeZones is an in-memory ZonePort.
type fakeZones struct {
	zones   map[string]*model.Zone
	created []string
	getErr  error
}

func newFakeZones(names ...string) *fakeZones {
	f := &fakeZones{zones: make(map[string]*model.Zone)}
	for _, n := range names {
		f.zones[n] = &model.Zone{Name: n}
	}
	return f
}

func (f *fakeZones) Get(ctx context.Context, rg, name string) (*model.Zone, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	z, ok := f.zones[name]
	if !ok {
		return nil, fmt.Errorf("zone %s: %w", name, model.ErrZoneNotFound)
	}
	return z, nil
}

func (f *fakeZones) Create(ctx context.Context, rg string, zone *model.Zone) (*model.Zone, error) {
	f.zones[zone.Name] = zone
	f.created = append(f.created, zone.Name)
	return zone, nil
}

func (f *fakeZones) Delete(ctx context.Context, rg, name string) error {
	if _, ok := f.zones[name]; !ok {
		return fmt.Errorf("zone %s: %w", name, model.ErrZoneNotFound)
	}
	delete(f.zones, name)
	return nil
}

func (f *fakeZones) List(ctx context.Context, rg string) ([]*model.Zone, error) {
	var out []*model.Zone
	for _, z := range f.zones {
		out = append(out, z)
	}
	return out, nil
}

// fakeRecords is an in-memory RecordSetPort that honors write preconditions
// the way the remote service does.
type fakeRecords struct {
	sets     map[string]*model.RecordSet
	etagSeq  int
	listErr  error
	writeErr map[string]error
	// preWrite runs before each CreateOrUpdate, letting tests simulate a
	// concurrent writer between a Get and the conditional retry.
	preWrite func(key string)
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{sets: make(map[string]*model.RecordSet), writeErr: make(map[string]error)}
}

func key(name string, rtype model.RecordType) string { return name + "/" + string(rtype) }

func (f *fakeRecords) put(rs *model.RecordSet) *model.RecordSet {
	f.etagSeq++
	stored := rs.Clone()
	stored.Etag = fmt.Sprintf("etag-%d", f.etagSeq)
	f.sets[key(rs.Name, rs.Type)] = stored
	return stored.Clone()
}

func (f *fakeRecords) Get(ctx context.Context, rg, zone, name string, rtype model.RecordType) (*model.RecordSet, error) {
	rs, ok := f.sets[key(name, rtype)]
	if !ok {
		return nil, fmt.Errorf("record set %s/%s: %w", name, rtype, model.ErrRecordSetNotFound)
	}
	return rs.Clone(), nil
}

func (f *fakeRecords) CreateOrUpdate(ctx context.Context, rg, zone string, rs *model.RecordSet, opts ...model.RecordSetPutOption) (*model.RecordSet, error) {
	var o model.RecordSetPutOptions
	for _, opt := range opts {
		opt(&o)
	}
	k := key(rs.Name, rs.Type)
	if f.preWrite != nil {
		f.preWrite(k)
	}
	if err, ok := f.writeErr[k]; ok {
		return nil, err
	}
	existing, exists := f.sets[k]
	if o.IfAbsent && exists {
		return nil, &model.ConflictError{Name: rs.Name, Type: rs.Type}
	}
	if o.IfMatch != "" && (!exists || existing.Etag != o.IfMatch) {
		return nil, &model.ConflictError{Name: rs.Name, Type: rs.Type}
	}
	return f.put(rs), nil
}

func (f *fakeRecords) Delete(ctx context.Context, rg, zone, name string, rtype model.RecordType) error {
	delete(f.sets, key(name, rtype))
	return nil
}

func (f *fakeRecords) List(ctx context.Context, rg, zone string, opts ...model.RecordSetListOption) ([]*model.RecordSet, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var o model.RecordSetListOptions
	for _, opt := range opts {
		opt(&o)
	}
	var out []*model.RecordSet
	for _, rs := range f.sets {
		if o.Type != "" && rs.Type != o.Type {
			continue
		}
		out = append(out, rs.Clone())
	}
	return out, nil
}
