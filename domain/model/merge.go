package model

import (
	"context"
	"fmt"

	"github.com/zonops/zonops/internal/logging"
)

// MergeOptions controls record set reconciliation behavior.
type MergeOptions struct {
	// Force discards the existing values entirely and keeps the incoming
	// record set as-is.
	Force bool
}

// MergeOption is a functional option for Merge.
type MergeOption func(*MergeOptions)

// WithMergeForce makes the incoming record set replace the existing one
// without value-level merging.
func WithMergeForce() MergeOption {
	return func(o *MergeOptions) { o.Force = true }
}

// Merge reconciles an incoming record set against the existing remote one
// after an optimistic-concurrency conflict. It returns a new record set and
// never mutates its arguments.
//
// List-valued types union their values: existing tuples first, then incoming
// tuples not already present, in incoming order. Singleton types (CNAME, SOA)
// keep the incoming value when both are present; the overwrite is logged as a
// warning because the discarded existing value is intentional last-import-wins
// behavior, not silent loss. The incoming TTL wins when positive, metadata is
// shallow-merged with incoming keys winning, and the result carries the
// existing set's etag so the caller can retry the write conditionally.
func Merge(ctx context.Context, incoming, existing *RecordSet, opts ...MergeOption) (*RecordSet, error) {
	var o MergeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if incoming == nil || existing == nil {
		return nil, fmt.Errorf("merge requires both incoming and existing record sets")
	}
	if incoming.Type != existing.Type {
		return nil, fmt.Errorf("merge type mismatch: incoming %s, existing %s", incoming.Type, existing.Type)
	}
	if incoming.Name != existing.Name {
		return nil, fmt.Errorf("merge name mismatch: incoming %s, existing %s", incoming.Name, existing.Name)
	}

	if o.Force {
		merged := incoming.Clone()
		merged.Etag = existing.Etag
		return merged, nil
	}

	merged := existing.Clone()

	if incoming.TTL > 0 {
		merged.TTL = incoming.TTL
	}
	if len(incoming.Metadata) > 0 {
		if merged.Metadata == nil {
			merged.Metadata = make(map[string]string, len(incoming.Metadata))
		}
		for k, v := range incoming.Metadata {
			merged.Metadata[k] = v
		}
	}

	if incoming.Type.Singleton() {
		if len(incoming.Values) > 0 {
			if len(existing.Values) > 0 && existing.Values[0] != incoming.Values[0] {
				logging.FromContext(ctx).Warn(ctx, "overwriting existing singleton record value",
					"name", incoming.Name,
					"type", incoming.Type,
					"existing", fmt.Sprintf("%v", existing.Values[0]),
					"incoming", fmt.Sprintf("%v", incoming.Values[0]))
			}
			merged.Values = []RecordValue{incoming.Values[0]}
		}
		return merged, nil
	}

	for _, v := range incoming.Values {
		if err := merged.AddValue(v); err != nil {
			return nil, err
		}
	}
	return merged, nil
}
