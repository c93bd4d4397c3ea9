package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/logging"
)

// recordSetsClient implements model.RecordSetPort on the armdns
// RecordSetsClient.
type recordSetsClient struct {
	d *Driver
}

func (c *recordSetsClient) Get(ctx context.Context, resourceGroup, zoneName, name string, rtype model.RecordType) (*model.RecordSet, error) {
	resp, err := c.d.records.Get(ctx, resourceGroup, zoneName, name, armRecordType(rtype), nil)
	if err != nil {
		if isNotFoundError(err) {
			return nil, fmt.Errorf("record set %s/%s: %w", name, rtype, model.ErrRecordSetNotFound)
		}
		return nil, fmt.Errorf("get record set %s/%s: %w", name, rtype, err)
	}
	return fromARMRecordSet(&resp.RecordSet)
}

func (c *recordSetsClient) CreateOrUpdate(ctx context.Context, resourceGroup, zoneName string, rset *model.RecordSet, opts ...model.RecordSetPutOption) (*model.RecordSet, error) {
	var o model.RecordSetPutOptions
	for _, opt := range opts {
		opt(&o)
	}

	params, err := toARMRecordSet(rset)
	if err != nil {
		return nil, err
	}

	// The write precondition maps onto conditional request headers:
	// IfAbsent is If-None-Match: *, IfMatch carries the etag.
	clientOpts := &armdns.RecordSetsClientCreateOrUpdateOptions{}
	if o.IfAbsent {
		clientOpts.IfNoneMatch = to.Ptr("*")
	}
	if o.IfMatch != "" {
		clientOpts.IfMatch = to.Ptr(o.IfMatch)
	}

	logging.FromContext(ctx).Debug(ctx, "writing record set",
		"resourceGroup", resourceGroup,
		"zone", zoneName,
		"name", rset.Name,
		"type", rset.Type,
		"ifAbsent", o.IfAbsent,
		"ifMatch", o.IfMatch)

	resp, err := c.d.records.CreateOrUpdate(ctx, resourceGroup, zoneName, rset.Name, armRecordType(rset.Type), params, clientOpts)
	if err != nil {
		return nil, mapWriteError(err, rset.Name, rset.Type)
	}
	return fromARMRecordSet(&resp.RecordSet)
}

func (c *recordSetsClient) Delete(ctx context.Context, resourceGroup, zoneName, name string, rtype model.RecordType) error {
	logging.FromContext(ctx).Info(ctx, "deleting record set",
		"resourceGroup", resourceGroup,
		"zone", zoneName,
		"name", name,
		"type", rtype)
	_, err := c.d.records.Delete(ctx, resourceGroup, zoneName, name, armRecordType(rtype), nil)
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("delete record set %s/%s: %w", name, rtype, err)
	}
	return nil
}

// List follows the server-side pagination to exhaustion and returns one flat
// ordered slice. Any page error fails the whole listing so a partial
// accumulation is never handed to the exporter.
func (c *recordSetsClient) List(ctx context.Context, resourceGroup, zoneName string, opts ...model.RecordSetListOption) ([]*model.RecordSet, error) {
	var o model.RecordSetListOptions
	for _, opt := range opts {
		opt(&o)
	}

	var sets []*model.RecordSet
	collect := func(values []*armdns.RecordSet) error {
		for _, rs := range values {
			converted, err := fromARMRecordSet(rs)
			if err != nil {
				return err
			}
			sets = append(sets, converted)
		}
		return nil
	}

	if o.Type != "" {
		pager := c.d.records.NewListByTypePager(resourceGroup, zoneName, armRecordType(o.Type), nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("list %s record sets of zone %s: %w", o.Type, zoneName, err)
			}
			if err := collect(page.Value); err != nil {
				return nil, err
			}
		}
		return sets, nil
	}

	pager := c.d.records.NewListByDNSZonePager(resourceGroup, zoneName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			if isNotFoundError(err) {
				return nil, fmt.Errorf("zone %s: %w", zoneName, model.ErrZoneNotFound)
			}
			return nil, fmt.Errorf("list record sets of zone %s: %w", zoneName, err)
		}
		if err := collect(page.Value); err != nil {
			return nil, err
		}
	}
	return sets, nil
}
