package zone

import (
	"context"
	"fmt"

	"github.com/zonops/zonops/domain/model"
)

// CreateInput parameters for Create use case.
type CreateInput struct {
	ResourceGroup string            `json:"resource_group"`
	ZoneName      string            `json:"zone_name"`
	Tags          map[string]string `json:"tags,omitempty"`
}

// CreateOutput result for Create use case.
type CreateOutput struct {
	Zone *model.Zone `json:"zone"`
}

// Create creates (or updates) a DNS zone.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	zone, err := u.Ports.Zones.Create(ctx, in.ResourceGroup, &model.Zone{Name: in.ZoneName, Tags: in.Tags})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Zone: zone}, nil
}

// GetInput parameters for Get use case.
type GetInput struct {
	ResourceGroup string `json:"resource_group"`
	ZoneName      string `json:"zone_name"`
}

// GetOutput result for Get use case.
type GetOutput struct {
	Zone *model.Zone `json:"zone"`
}

// Get returns one DNS zone.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	zone, err := u.Ports.Zones.Get(ctx, in.ResourceGroup, in.ZoneName)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Zone: zone}, nil
}

// ListInput parameters for List use case.
type ListInput struct {
	ResourceGroup string `json:"resource_group"`
}

// ListOutput result for List use case.
type ListOutput struct {
	Items []*model.Zone `json:"items"`
}

// List returns all DNS zones in a resource group.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil || in.ResourceGroup == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	zones, err := u.Ports.Zones.List(ctx, in.ResourceGroup)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Items: zones}, nil
}

// DeleteInput parameters for Delete use case.
type DeleteInput struct {
	ResourceGroup string `json:"resource_group"`
	ZoneName      string `json:"zone_name"`
}

// DeleteOutput result for Delete use case.
type DeleteOutput struct{}

// Delete removes a DNS zone and all of its record sets.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.ResourceGroup == "" || in.ZoneName == "" {
		return nil, fmt.Errorf("missing parameters")
	}
	if err := u.Ports.Zones.Delete(ctx, in.ResourceGroup, in.ZoneName); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
