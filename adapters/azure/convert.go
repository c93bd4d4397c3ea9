package azure

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/dnsname"
)

// armRecordType maps a domain record type to the armdns enum value.
func armRecordType(t model.RecordType) armdns.RecordType {
	return armdns.RecordType(string(t))
}

// toARMRecordSet builds the wire representation of a record set. Only the
// value collection matching the declared type is populated; fields of other
// types stay absent, not empty. FQDN-valued fields are dot-terminated.
func toARMRecordSet(rset *model.RecordSet) (armdns.RecordSet, error) {
	props := &armdns.RecordSetProperties{
		TTL: to.Ptr(rset.TTL),
	}
	if len(rset.Metadata) > 0 {
		props.Metadata = make(map[string]*string, len(rset.Metadata))
		for k, v := range rset.Metadata {
			props.Metadata[k] = to.Ptr(v)
		}
	}

	for _, v := range rset.Values {
		if v.RecordType() != rset.Type {
			return armdns.RecordSet{}, fmt.Errorf("record set %s: %s value in %s set", rset.Name, v.RecordType(), rset.Type)
		}
		switch r := v.(type) {
		case model.ARecord:
			props.ARecords = append(props.ARecords, &armdns.ARecord{IPv4Address: to.Ptr(r.IPv4Address)})
		case model.AaaaRecord:
			props.AaaaRecords = append(props.AaaaRecords, &armdns.AaaaRecord{IPv6Address: to.Ptr(r.IPv6Address)})
		case model.CnameRecord:
			props.CnameRecord = &armdns.CnameRecord{Cname: to.Ptr(dnsname.Fqdn(r.Cname))}
		case model.MxRecord:
			props.MxRecords = append(props.MxRecords, &armdns.MxRecord{
				Preference: to.Ptr(r.Preference),
				Exchange:   to.Ptr(dnsname.Fqdn(r.Exchange)),
			})
		case model.NsRecord:
			props.NsRecords = append(props.NsRecords, &armdns.NsRecord{Nsdname: to.Ptr(dnsname.Fqdn(r.Nsdname))})
		case model.SrvRecord:
			props.SrvRecords = append(props.SrvRecords, &armdns.SrvRecord{
				Priority: to.Ptr(r.Priority),
				Weight:   to.Ptr(r.Weight),
				Port:     to.Ptr(r.Port),
				Target:   to.Ptr(dnsname.Fqdn(r.Target)),
			})
		case model.TxtRecord:
			props.TxtRecords = append(props.TxtRecords, &armdns.TxtRecord{Value: []*string{to.Ptr(r.Value)}})
		case model.SoaRecord:
			props.SoaRecord = &armdns.SoaRecord{
				Host:         to.Ptr(dnsname.Fqdn(r.Host)),
				Email:        to.Ptr(dnsname.Fqdn(r.Email)),
				SerialNumber: to.Ptr(r.SerialNumber),
				RefreshTime:  to.Ptr(r.RefreshTime),
				RetryTime:    to.Ptr(r.RetryTime),
				ExpireTime:   to.Ptr(r.ExpireTime),
				MinimumTTL:   to.Ptr(r.MinimumTTL),
			}
		case model.PtrRecord:
			props.PtrRecords = append(props.PtrRecords, &armdns.PtrRecord{Ptrdname: to.Ptr(dnsname.Fqdn(r.Ptrdname))})
		}
	}

	return armdns.RecordSet{Properties: props}, nil
}

// fromARMRecordSet converts a wire record set back to the domain model.
func fromARMRecordSet(rs *armdns.RecordSet) (*model.RecordSet, error) {
	if rs == nil {
		return nil, fmt.Errorf("nil record set in response")
	}
	rtype, err := parseARMRecordSetType(deref(rs.Type))
	if err != nil {
		return nil, err
	}

	out := model.NewRecordSet(deref(rs.Name), rtype, 0)
	out.Etag = deref(rs.Etag)
	if rs.Properties == nil {
		return out, nil
	}
	props := rs.Properties
	if props.TTL != nil {
		out.TTL = *props.TTL
	}
	if len(props.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(props.Metadata))
		for k, v := range props.Metadata {
			out.Metadata[k] = deref(v)
		}
	}

	switch rtype {
	case model.RecordTypeA:
		for _, r := range props.ARecords {
			if r != nil {
				appendValue(out, model.ARecord{IPv4Address: deref(r.IPv4Address)})
			}
		}
	case model.RecordTypeAAAA:
		for _, r := range props.AaaaRecords {
			if r != nil {
				appendValue(out, model.AaaaRecord{IPv6Address: deref(r.IPv6Address)})
			}
		}
	case model.RecordTypeCNAME:
		if props.CnameRecord != nil {
			appendValue(out, model.CnameRecord{Cname: deref(props.CnameRecord.Cname)})
		}
	case model.RecordTypeMX:
		for _, r := range props.MxRecords {
			if r != nil {
				appendValue(out, model.MxRecord{Preference: derefInt32(r.Preference), Exchange: deref(r.Exchange)})
			}
		}
	case model.RecordTypeNS:
		for _, r := range props.NsRecords {
			if r != nil {
				appendValue(out, model.NsRecord{Nsdname: deref(r.Nsdname)})
			}
		}
	case model.RecordTypeSRV:
		for _, r := range props.SrvRecords {
			if r != nil {
				appendValue(out, model.SrvRecord{
					Priority: derefInt32(r.Priority),
					Weight:   derefInt32(r.Weight),
					Port:     derefInt32(r.Port),
					Target:   deref(r.Target),
				})
			}
		}
	case model.RecordTypeTXT:
		for _, r := range props.TxtRecords {
			if r == nil {
				continue
			}
			segments := make([]string, 0, len(r.Value))
			for _, s := range r.Value {
				segments = append(segments, deref(s))
			}
			appendValue(out, model.TxtRecord{Value: strings.Join(segments, "")})
		}
	case model.RecordTypeSOA:
		if r := props.SoaRecord; r != nil {
			appendValue(out, model.SoaRecord{
				Host:         deref(r.Host),
				Email:        deref(r.Email),
				SerialNumber: derefInt64(r.SerialNumber),
				RefreshTime:  derefInt64(r.RefreshTime),
				RetryTime:    derefInt64(r.RetryTime),
				ExpireTime:   derefInt64(r.ExpireTime),
				MinimumTTL:   derefInt64(r.MinimumTTL),
			})
		}
	case model.RecordTypePTR:
		for _, r := range props.PtrRecords {
			if r != nil {
				appendValue(out, model.PtrRecord{Ptrdname: deref(r.Ptrdname)})
			}
		}
	}

	return out, nil
}

// parseARMRecordSetType extracts the RR type from a record set resource type
// like "Microsoft.Network/dnszones/A".
func parseARMRecordSetType(resourceType string) (model.RecordType, error) {
	segments := strings.Split(resourceType, "/")
	return model.ParseRecordType(segments[len(segments)-1])
}

func toARMZone(zone *model.Zone) armdns.Zone {
	out := armdns.Zone{
		// DNS zones are a global service; the location is fixed.
		Location: to.Ptr("global"),
	}
	if len(zone.Tags) > 0 {
		out.Tags = make(map[string]*string, len(zone.Tags))
		for k, v := range zone.Tags {
			out.Tags[k] = to.Ptr(v)
		}
	}
	return out
}

func fromARMZone(z *armdns.Zone) *model.Zone {
	if z == nil {
		return nil
	}
	out := &model.Zone{
		Name:     dnsname.Trim(deref(z.Name)),
		Etag:     deref(z.Etag),
		Location: deref(z.Location),
	}
	if len(z.Tags) > 0 {
		out.Tags = make(map[string]string, len(z.Tags))
		for k, v := range z.Tags {
			out.Tags[k] = deref(v)
		}
	}
	if z.Properties != nil {
		for _, ns := range z.Properties.NameServers {
			if ns != nil {
				out.NameServers = append(out.NameServers, *ns)
			}
		}
		out.NumberOfRecordSets = derefInt64(z.Properties.NumberOfRecordSets)
		out.MaxNumberOfRecordSets = derefInt64(z.Properties.MaxNumberOfRecordSets)
	}
	return out
}

// appendValue adds v, tolerating duplicates from the wire.
func appendValue(rs *model.RecordSet, v model.RecordValue) {
	_ = rs.AddValue(v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt32(n *int32) int32 {
	if n == nil {
		return 0
	}
	return *n
}

func derefInt64(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
