package recordset

import (
	"context"
	"fmt"

	"github.com/zonops/zonops/domain/model"
)

// ListInput parameters for List use case.
type ListInput struct {
	ResourceGroup string `json:"resource_group"`
	ZoneName      string `json:"zone_name"`
	// Type restricts the listing to one record type when non-empty.
	Type model.RecordType `json:"type,omitempty"`
}

// ListOutput result for List use case.
type ListOutput struct {
	Items []*model.RecordSet `json:"items"`
}

// List returns the record sets of a zone, optionally filtered by type.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	var opts []model.RecordSetListOption
	if in.Type != "" {
		opts = append(opts, model.WithListType(in.Type))
	}
	items, err := u.Ports.Records.List(ctx, in.ResourceGroup, in.ZoneName, opts...)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Items: items}, nil
}

// GetInput parameters for Get use case.
type GetInput struct {
	ResourceGroup string           `json:"resource_group"`
	ZoneName      string           `json:"zone_name"`
	Name          string           `json:"name"`
	Type          model.RecordType `json:"type"`
}

// GetOutput result for Get use case.
type GetOutput struct {
	RecordSet *model.RecordSet `json:"record_set"`
}

// Get returns one record set.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" || in.Name == "" || in.Type == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	rs, err := u.Ports.Records.Get(ctx, in.ResourceGroup, in.ZoneName, in.Name, in.Type)
	if err != nil {
		return nil, err
	}
	return &GetOutput{RecordSet: rs}, nil
}

// DeleteInput parameters for Delete use case.
type DeleteInput struct {
	ResourceGroup string           `json:"resource_group"`
	ZoneName      string           `json:"zone_name"`
	Name          string           `json:"name"`
	Type          model.RecordType `json:"type"`
}

// DeleteOutput result for Delete use case.
type DeleteOutput struct{}

// Delete removes one record set.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" || in.Name == "" || in.Type == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	if err := u.Ports.Records.Delete(ctx, in.ResourceGroup, in.ZoneName, in.Name, in.Type); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
