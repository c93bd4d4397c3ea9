package zone

import (
	"context"
	"fmt"

	"github.com/zonops/zonops/internal/logging"
	"github.com/zonops/zonops/internal/zonefile"
)

// ExportInput parameters for Export use case.
type ExportInput struct {
	// ResourceGroup containing the zone.
	ResourceGroup string `json:"resource_group"`
	// ZoneName of the zone to export.
	ZoneName string `json:"zone_name"`
}

// ExportOutput result for Export use case.
type ExportOutput struct {
	// ZoneFileText is the serialized zone file content.
	ZoneFileText string `json:"zone_file_text"`
	// RecordSets is the number of exported record sets.
	RecordSets int `json:"record_sets"`
}

// Export reads the full record set listing of a zone and serializes it as
// zone file text. A missing zone is fatal, and so is any listing error: the
// exporter never serializes a partial accumulation.
func (u *UseCase) Export(ctx context.Context, in *ExportInput) (*ExportOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	log := logging.FromContext(ctx)

	if _, err := u.Ports.Zones.Get(ctx, in.ResourceGroup, in.ZoneName); err != nil {
		return nil, err
	}

	sets, err := u.Ports.Records.List(ctx, in.ResourceGroup, in.ZoneName)
	if err != nil {
		return nil, fmt.Errorf("list record sets: %w", err)
	}

	text := zonefile.Serialize(zonefile.Header{
		Zone:          in.ZoneName,
		ResourceGroup: in.ResourceGroup,
		Exported:      u.timeNow().UTC(),
	}, sets)

	log.Info(ctx, "zone exported", "zone", in.ZoneName, "recordSets", len(sets))
	return &ExportOutput{ZoneFileText: text, RecordSets: len(sets)}, nil
}
