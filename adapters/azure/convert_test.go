package azure

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"

	"github.com/zonops/zonops/domain/model"
)

func TestToARMRecordSetScopesFieldsToType(t *testing.T) {
	rset := model.NewRecordSet("www", model.RecordTypeA, 300)
	_ = rset.AddValue(model.ARecord{IPv4Address: "10.0.0.1"})
	_ = rset.AddValue(model.ARecord{IPv4Address: "10.0.0.2"})

	arm, err := toARMRecordSet(rset)
	if err != nil {
		t.Fatalf("toARMRecordSet: %v", err)
	}
	props := arm.Properties
	if len(props.ARecords) != 2 {
		t.Errorf("ARecords = %d, want 2", len(props.ARecords))
	}
	if props.TTL == nil || *props.TTL != 300 {
		t.Errorf("TTL = %v, want 300", props.TTL)
	}
	// Collections of other types must be absent, not empty.
	if props.AaaaRecords != nil || props.MxRecords != nil || props.NsRecords != nil ||
		props.SrvRecords != nil || props.TxtRecords != nil || props.PtrRecords != nil ||
		props.CnameRecord != nil || props.SoaRecord != nil {
		t.Error("foreign-type collections populated on an A record set")
	}
}

func TestToARMRecordSetRejectsForeignValue(t *testing.T) {
	rset := &model.RecordSet{
		Name:   "www",
		Type:   model.RecordTypeA,
		TTL:    300,
		Values: []model.RecordValue{model.TxtRecord{Value: "stale"}},
	}
	if _, err := toARMRecordSet(rset); err == nil {
		t.Error("expected error for value of foreign type")
	}
}

func TestToARMRecordSetDotTerminatesFqdns(t *testing.T) {
	mx := model.NewRecordSet("@", model.RecordTypeMX, 300)
	_ = mx.AddValue(model.MxRecord{Preference: 10, Exchange: "mail.example.com"})
	arm, err := toARMRecordSet(mx)
	if err != nil {
		t.Fatalf("toARMRecordSet: %v", err)
	}
	if got := *arm.Properties.MxRecords[0].Exchange; got != "mail.example.com." {
		t.Errorf("MX exchange = %q, want trailing dot", got)
	}
}

func TestFromARMRecordSet(t *testing.T) {
	arm := &armdns.RecordSet{
		Name: to.Ptr("www"),
		Type: to.Ptr("Microsoft.Network/dnszones/A"),
		Etag: to.Ptr("etag-1"),
		Properties: &armdns.RecordSetProperties{
			TTL:      to.Ptr(int64(3600)),
			Metadata: map[string]*string{"env": to.Ptr("prod")},
			ARecords: []*armdns.ARecord{
				{IPv4Address: to.Ptr("10.0.0.1")},
				{IPv4Address: to.Ptr("10.0.0.2")},
			},
		},
	}
	rset, err := fromARMRecordSet(arm)
	if err != nil {
		t.Fatalf("fromARMRecordSet: %v", err)
	}
	if rset.Name != "www" || rset.Type != model.RecordTypeA || rset.TTL != 3600 || rset.Etag != "etag-1" {
		t.Errorf("record set = %+v", rset)
	}
	if rset.Metadata["env"] != "prod" {
		t.Errorf("metadata = %v", rset.Metadata)
	}
	if len(rset.Values) != 2 || rset.Values[0] != (model.ARecord{IPv4Address: "10.0.0.1"}) {
		t.Errorf("values = %v", rset.Values)
	}
}

func TestFromARMRecordSetUnknownType(t *testing.T) {
	arm := &armdns.RecordSet{
		Name: to.Ptr("x"),
		Type: to.Ptr("Microsoft.Network/dnszones/CAA"),
	}
	if _, err := fromARMRecordSet(arm); err == nil {
		t.Error("expected error for unsupported record type")
	}
}

func TestRecordSetARMRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		rtype model.RecordType
		value model.RecordValue
	}{
		{name: "cname", rtype: model.RecordTypeCNAME, value: model.CnameRecord{Cname: "target.example.com."}},
		{name: "srv", rtype: model.RecordTypeSRV, value: model.SrvRecord{Priority: 1, Weight: 2, Port: 443, Target: "srv.example.com."}},
		{name: "txt", rtype: model.RecordTypeTXT, value: model.TxtRecord{Value: "v=spf1 -all"}},
		{name: "soa", rtype: model.RecordTypeSOA, value: model.SoaRecord{
			Host: "ns1.example.com.", Email: "hostmaster.example.com.",
			SerialNumber: 2024030100, RefreshTime: 3600, RetryTime: 300, ExpireTime: 2419200, MinimumTTL: 300}},
		{name: "ptr", rtype: model.RecordTypePTR, value: model.PtrRecord{Ptrdname: "host.example.com."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := model.NewRecordSet("rec", tt.rtype, 600)
			if err := in.AddValue(tt.value); err != nil {
				t.Fatalf("AddValue: %v", err)
			}
			arm, err := toARMRecordSet(in)
			if err != nil {
				t.Fatalf("toARMRecordSet: %v", err)
			}
			arm.Name = to.Ptr("rec")
			arm.Type = to.Ptr("Microsoft.Network/dnszones/" + string(tt.rtype))
			out, err := fromARMRecordSet(&arm)
			if err != nil {
				t.Fatalf("fromARMRecordSet: %v", err)
			}
			if len(out.Values) != 1 || out.Values[0] != tt.value {
				t.Errorf("round trip values = %v, want [%v]", out.Values, tt.value)
			}
		})
	}
}

func TestFromARMZone(t *testing.T) {
	z := &armdns.Zone{
		Name:     to.Ptr("example.com"),
		Etag:     to.Ptr("zetag"),
		Location: to.Ptr("global"),
		Properties: &armdns.ZoneProperties{
			NameServers:        []*string{to.Ptr("ns1-01.azure-dns.com."), to.Ptr("ns2-01.azure-dns.net.")},
			NumberOfRecordSets: to.Ptr(int64(5)),
		},
	}
	zone := fromARMZone(z)
	if zone.Name != "example.com" || zone.Etag != "zetag" {
		t.Errorf("zone = %+v", zone)
	}
	if len(zone.NameServers) != 2 || zone.NumberOfRecordSets != 5 {
		t.Errorf("zone properties = %+v", zone)
	}
}
