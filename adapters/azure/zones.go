package azure

import (
	"context"
	"fmt"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/logging"
)

// zonesClient implements model.ZonePort on the armdns ZonesClient.
type zonesClient struct {
	d *Driver
}

func (c *zonesClient) Get(ctx context.Context, resourceGroup, zoneName string) (*model.Zone, error) {
	resp, err := c.d.zones.Get(ctx, resourceGroup, zoneName, nil)
	if err != nil {
		if isNotFoundError(err) {
			return nil, fmt.Errorf("zone %s: %w", zoneName, model.ErrZoneNotFound)
		}
		return nil, fmt.Errorf("get zone %s: %w", zoneName, err)
	}
	return fromARMZone(&resp.Zone), nil
}

func (c *zonesClient) Create(ctx context.Context, resourceGroup string, zone *model.Zone) (*model.Zone, error) {
	log := logging.FromContext(ctx)

	// Surface a missing resource group as a clear client-side error before
	// the zone write.
	if _, err := c.d.groups.Get(ctx, resourceGroup, nil); err != nil {
		if isNotFoundError(err) {
			return nil, fmt.Errorf("resource group %s does not exist", resourceGroup)
		}
		return nil, fmt.Errorf("check resource group %s: %w", resourceGroup, err)
	}

	log.Info(ctx, "creating DNS zone", "resourceGroup", resourceGroup, "zone", zone.Name)
	resp, err := c.d.zones.CreateOrUpdate(ctx, resourceGroup, zone.Name, toARMZone(zone), nil)
	if err != nil {
		return nil, fmt.Errorf("create zone %s: %w", zone.Name, err)
	}
	return fromARMZone(&resp.Zone), nil
}

func (c *zonesClient) Delete(ctx context.Context, resourceGroup, zoneName string) error {
	log := logging.FromContext(ctx)
	log.Info(ctx, "deleting DNS zone", "resourceGroup", resourceGroup, "zone", zoneName)

	// Zone deletion is a long-running operation; block until it completes.
	poller, err := c.d.zones.BeginDelete(ctx, resourceGroup, zoneName, nil)
	if err != nil {
		if isNotFoundError(err) {
			return fmt.Errorf("zone %s: %w", zoneName, model.ErrZoneNotFound)
		}
		return fmt.Errorf("delete zone %s: %w", zoneName, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("delete zone %s: %w", zoneName, err)
	}
	return nil
}

func (c *zonesClient) List(ctx context.Context, resourceGroup string) ([]*model.Zone, error) {
	var zones []*model.Zone
	pager := c.d.zones.NewListByResourceGroupPager(resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list zones in %s: %w", resourceGroup, err)
		}
		for _, z := range page.Value {
			zones = append(zones, fromARMZone(z))
		}
	}
	return zones, nil
}
