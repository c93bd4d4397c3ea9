package recordset

import (
	"context"
	"errors"
	"fmt"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/logging"
	"github.com/zonops/zonops/internal/zonefile"
)

// AddRecordInput parameters for AddRecord use case.
type AddRecordInput struct {
	ResourceGroup string           `json:"resource_group"`
	ZoneName      string           `json:"zone_name"`
	Name          string           `json:"name"`
	Type          model.RecordType `json:"type"`
	Value         model.RecordValue
	// TTL applies when the record set does not exist yet. Zero selects the
	// built-in default.
	TTL int64 `json:"ttl,omitempty"`
}

// AddRecordOutput result for AddRecord use case.
type AddRecordOutput struct {
	RecordSet *model.RecordSet `json:"record_set"`
}

// AddRecord adds one value to a record set via a conditional get-modify-put:
// a new set is written with a create-if-absent precondition, an existing
// one with its etag. The single-shot write surfaces *model.ConflictError to
// the caller instead of retrying; record-level edits are interactive and
// the operator simply reruns them.
func (u *UseCase) AddRecord(ctx context.Context, in *AddRecordInput) (*AddRecordOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" || in.Name == "" || in.Type == "" || in.Value == nil {
		return nil, fmt.Errorf("missing parameters")
	}
	log := logging.FromContext(ctx)

	existing, err := u.Ports.Records.Get(ctx, in.ResourceGroup, in.ZoneName, in.Name, in.Type)
	if err != nil {
		if !errors.Is(err, model.ErrRecordSetNotFound) {
			return nil, err
		}
		ttl := in.TTL
		if ttl <= 0 {
			ttl = zonefile.DefaultTTL
		}
		rs := model.NewRecordSet(in.Name, in.Type, ttl)
		if err := rs.AddValue(in.Value); err != nil {
			return nil, err
		}
		written, err := u.Ports.Records.CreateOrUpdate(ctx, in.ResourceGroup, in.ZoneName, rs, model.WithPutIfAbsent())
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "record set created", "name", in.Name, "type", in.Type)
		return &AddRecordOutput{RecordSet: written}, nil
	}

	if existing.HasValue(in.Value) {
		log.Info(ctx, "record value already present", "name", in.Name, "type", in.Type)
		return &AddRecordOutput{RecordSet: existing}, nil
	}
	updated := existing.Clone()
	if err := updated.AddValue(in.Value); err != nil {
		return nil, err
	}
	if in.TTL > 0 {
		updated.TTL = in.TTL
	}
	written, err := u.Ports.Records.CreateOrUpdate(ctx, in.ResourceGroup, in.ZoneName, updated, model.WithPutIfMatch(existing.Etag))
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "record value added", "name", in.Name, "type", in.Type)
	return &AddRecordOutput{RecordSet: written}, nil
}

// RemoveRecordInput parameters for RemoveRecord use case.
type RemoveRecordInput struct {
	ResourceGroup string           `json:"resource_group"`
	ZoneName      string           `json:"zone_name"`
	Name          string           `json:"name"`
	Type          model.RecordType `json:"type"`
	Value         model.RecordValue
	// KeepEmpty keeps an empty record set instead of deleting it once the
	// last value is removed.
	KeepEmpty bool `json:"keep_empty,omitempty"`
}

// RemoveRecordOutput result for RemoveRecord use case.
type RemoveRecordOutput struct {
	// RecordSet is nil when the set was deleted.
	RecordSet *model.RecordSet `json:"record_set,omitempty"`
	Deleted   bool             `json:"deleted"`
}

// RemoveRecord removes one value from a record set; removing the last value
// deletes the whole set unless KeepEmpty is set. Like AddRecord this is a
// single-shot conditional write surfacing *model.ConflictError.
func (u *UseCase) RemoveRecord(ctx context.Context, in *RemoveRecordInput) (*RemoveRecordOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" || in.Name == "" || in.Type == "" || in.Value == nil {
		return nil, fmt.Errorf("missing parameters")
	}
	log := logging.FromContext(ctx)

	existing, err := u.Ports.Records.Get(ctx, in.ResourceGroup, in.ZoneName, in.Name, in.Type)
	if err != nil {
		return nil, err
	}
	if !existing.HasValue(in.Value) {
		return nil, fmt.Errorf("record set %s/%s does not contain the given value", in.Name, in.Type)
	}

	updated := existing.Clone()
	updated.Values = updated.Values[:0]
	for _, v := range existing.Values {
		if v != in.Value {
			updated.Values = append(updated.Values, v)
		}
	}

	if len(updated.Values) == 0 && !in.KeepEmpty {
		if err := u.Ports.Records.Delete(ctx, in.ResourceGroup, in.ZoneName, in.Name, in.Type); err != nil {
			return nil, err
		}
		log.Info(ctx, "record set deleted", "name", in.Name, "type", in.Type)
		return &RemoveRecordOutput{Deleted: true}, nil
	}

	written, err := u.Ports.Records.CreateOrUpdate(ctx, in.ResourceGroup, in.ZoneName, updated, model.WithPutIfMatch(existing.Etag))
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "record value removed", "name", in.Name, "type", in.Type)
	return &RemoveRecordOutput{RecordSet: written}, nil
}
