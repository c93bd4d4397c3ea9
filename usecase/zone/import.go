package zone

import (
	"context"
	"errors"
	"fmt"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/logging"
	"github.com/zonops/zonops/internal/zonefile"
)

// ImportInput parameters for Import use case.
type ImportInput struct {
	// ResourceGroup containing the target zone.
	ResourceGroup string `json:"resource_group"`
	// ZoneName of the target zone.
	ZoneName string `json:"zone_name"`
	// ZoneFileText is the zone file content to import.
	ZoneFileText string `json:"zone_file_text"`
	// Force replaces conflicting record sets instead of merging.
	Force bool `json:"force"`
	// ParseOnly stops after parsing and reports what would be written.
	ParseOnly bool `json:"parse_only"`
	// DefaultTTL applies to records without a $TTL directive or explicit TTL.
	DefaultTTL int64 `json:"default_ttl,omitempty"`
}

// ImportResult describes the outcome for one record set.
type ImportResult struct {
	Name    string           `json:"name"`
	Type    model.RecordType `json:"type"`
	Action  string           `json:"action"` // created|merged|replaced|planned|failed
	Message string           `json:"message,omitempty"`
}

// ImportOutput result for Import use case.
type ImportOutput struct {
	Results []*ImportResult `json:"results"`
	// Imported counts successfully written record sets; Total counts all
	// record sets parsed from the file.
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// Import parses a zone file and writes its record sets to the remote zone,
// creating the zone when absent. Each record set is attempted with a
// create-if-absent precondition; a conflict triggers one fetch-merge-retry
// cycle. Failures are isolated per record set: the loop continues and the
// output reports a running tally. Parse errors are fatal for the whole
// import before any network call.
func (u *UseCase) Import(ctx context.Context, in *ImportInput) (*ImportOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	log := logging.FromContext(ctx)

	zf, err := zonefile.Parse(in.ZoneName, in.ZoneFileText, zonefile.ParseOptions{DefaultTTL: in.DefaultTTL})
	if err != nil {
		return nil, fmt.Errorf("parse zone file: %w", err)
	}

	out := &ImportOutput{Total: len(zf.Sets)}
	if in.ParseOnly {
		for _, rs := range zf.Sets {
			out.Results = append(out.Results, &ImportResult{
				Name:    rs.Name,
				Type:    rs.Type,
				Action:  ActionPlanned,
				Message: fmt.Sprintf("%d values, ttl %d", len(rs.Values), rs.TTL),
			})
		}
		return out, nil
	}

	if err := u.ensureZone(ctx, in.ResourceGroup, in.ZoneName); err != nil {
		return nil, err
	}

	// Sequential on purpose: conflict retries mutate shared remote zone
	// state, and concurrent writers would race each other.
	for _, rs := range zf.Sets {
		result := u.importRecordSet(ctx, in, rs)
		if result.Action == ActionFailed {
			log.Warn(ctx, "record set import failed",
				"name", result.Name, "type", result.Type, "error", result.Message)
		} else {
			out.Imported++
			log.Info(ctx, "record set imported",
				"name", result.Name, "type", result.Type, "action", result.Action)
		}
		out.Results = append(out.Results, result)
	}

	log.Infof(ctx, "%d of %d record sets imported", out.Imported, out.Total)
	return out, nil
}

// ensureZone creates the zone when it does not exist yet.
func (u *UseCase) ensureZone(ctx context.Context, resourceGroup, zoneName string) error {
	_, err := u.Ports.Zones.Get(ctx, resourceGroup, zoneName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrZoneNotFound) {
		return err
	}
	logging.FromContext(ctx).Info(ctx, "zone does not exist, creating it", "zone", zoneName)
	_, err = u.Ports.Zones.Create(ctx, resourceGroup, &model.Zone{Name: zoneName})
	return err
}

// importRecordSet runs the per-record-set state machine:
// attempt create -> done, or conflict -> fetch existing -> merge -> retry
// once. A second conflict is fatal for this record set only.
func (u *UseCase) importRecordSet(ctx context.Context, in *ImportInput, rs *model.RecordSet) *ImportResult {
	result := &ImportResult{Name: rs.Name, Type: rs.Type}

	if in.Force {
		if _, err := u.Ports.Records.CreateOrUpdate(ctx, in.ResourceGroup, in.ZoneName, rs); err != nil {
			result.Action = ActionFailed
			result.Message = err.Error()
			return result
		}
		result.Action = ActionReplaced
		return result
	}

	_, err := u.Ports.Records.CreateOrUpdate(ctx, in.ResourceGroup, in.ZoneName, rs, model.WithPutIfAbsent())
	if err == nil {
		result.Action = ActionCreated
		return result
	}
	if !model.IsConflict(err) {
		result.Action = ActionFailed
		result.Message = err.Error()
		return result
	}

	existing, err := u.Ports.Records.Get(ctx, in.ResourceGroup, in.ZoneName, rs.Name, rs.Type)
	if err != nil {
		result.Action = ActionFailed
		result.Message = fmt.Sprintf("fetch existing record set: %s", err)
		return result
	}

	merged, err := model.Merge(ctx, rs, existing)
	if err != nil {
		result.Action = ActionFailed
		result.Message = fmt.Sprintf("merge record set: %s", err)
		return result
	}

	// Retry conditionally on the etag read above. A second conflict means
	// another writer changed the set between our read and write; give up on
	// this set rather than looping.
	if _, err := u.Ports.Records.CreateOrUpdate(ctx, in.ResourceGroup, in.ZoneName, merged, model.WithPutIfMatch(merged.Etag)); err != nil {
		result.Action = ActionFailed
		result.Message = fmt.Sprintf("retry after merge: %s", err)
		return result
	}
	result.Action = ActionMerged
	return result
}
