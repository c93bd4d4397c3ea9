package zonefile

import (
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"

	"github.com/zonops/zonops/domain/model"
)

var exportedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func soaSet(serial int64) *model.RecordSet {
	rs := model.NewRecordSet("@", model.RecordTypeSOA, 3600)
	_ = rs.AddValue(model.SoaRecord{
		Host:         "ns1-01.azure-dns.com.",
		Email:        "hostmaster.example.com.",
		SerialNumber: serial,
		RefreshTime:  3600,
		RetryTime:    300,
		ExpireTime:   2419200,
		MinimumTTL:   300,
	})
	return rs
}

func TestSerializeHeaderAndDirectives(t *testing.T) {
	text := Serialize(Header{Zone: "example.com", ResourceGroup: "rg1", Exported: exportedAt},
		[]*model.RecordSet{soaSet(1)})
	for _, want := range []string{
		"; Zone: example.com\n",
		"; Resource group: rg1\n",
		"; Exported: 2024-03-01T12:00:00Z\n",
		"$TTL 3600\n",
		"$ORIGIN example.com.\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("serialized text missing %q:\n%s", want, text)
		}
	}
}

func TestSerializeSOADefaultSerial(t *testing.T) {
	text := Serialize(Header{Zone: "example.com", Exported: exportedAt},
		[]*model.RecordSet{soaSet(0)})
	if !strings.Contains(text, " 2024030100 ") {
		t.Errorf("expected date-based default serial 2024030100:\n%s", text)
	}
}

func TestSerializeMultiValueAlignment(t *testing.T) {
	rs := model.NewRecordSet("www", model.RecordTypeA, 3600)
	_ = rs.AddValue(model.ARecord{IPv4Address: "10.0.0.1"})
	_ = rs.AddValue(model.ARecord{IPv4Address: "10.0.0.2"})
	text := Serialize(Header{Zone: "example.com", Exported: exportedAt}, []*model.RecordSet{rs})

	lines := recordLines(text)
	if len(lines) != 2 {
		t.Fatalf("got %d record lines, want 2:\n%s", len(lines), text)
	}
	if !strings.HasPrefix(lines[0], "www 3600 IN A 10.0.0.1") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "    3600 IN A 10.0.0.2") {
		t.Errorf("second line owner column not padded to owner width: %q", lines[1])
	}
}

func TestSerializeFixedTypeOrder(t *testing.T) {
	txt := model.NewRecordSet("www", model.RecordTypeTXT, 300)
	_ = txt.AddValue(model.TxtRecord{Value: "x"})
	aaaa := model.NewRecordSet("www", model.RecordTypeAAAA, 300)
	_ = aaaa.AddValue(model.AaaaRecord{IPv6Address: "2001:db8::1"})
	a := model.NewRecordSet("www", model.RecordTypeA, 300)
	_ = a.AddValue(model.ARecord{IPv4Address: "10.0.0.1"})

	// Input order TXT, AAAA, A must come out A, AAAA, TXT.
	text := Serialize(Header{Zone: "example.com", Exported: exportedAt},
		[]*model.RecordSet{txt, aaaa, a})
	lines := recordLines(text)
	var types []string
	for _, l := range lines {
		fields := strings.Fields(l)
		types = append(types, fields[len(fields)-2])
	}
	want := []string{"A", "AAAA", "TXT"}
	for i := range want {
		if i >= len(types) || types[i] != want[i] {
			t.Fatalf("type order = %v, want %v", types, want)
		}
	}
}

func TestSerializeSOAFirst(t *testing.T) {
	a := model.NewRecordSet("www", model.RecordTypeA, 300)
	_ = a.AddValue(model.ARecord{IPv4Address: "10.0.0.1"})
	text := Serialize(Header{Zone: "example.com", Exported: exportedAt},
		[]*model.RecordSet{a, soaSet(7)})
	lines := recordLines(text)
	if len(lines) < 2 || !strings.Contains(lines[0], " SOA ") {
		t.Errorf("SOA not emitted first:\n%s", text)
	}
}

// A record set only ever emits lines of its own declared type; stale values
// of other types that slipped into memory are dropped, not serialized.
func TestSerializeTypeScoping(t *testing.T) {
	rs := &model.RecordSet{
		Name: "www",
		Type: model.RecordTypeA,
		TTL:  300,
		Values: []model.RecordValue{
			model.ARecord{IPv4Address: "10.0.0.1"},
			model.AaaaRecord{IPv6Address: "2001:db8::1"},
			model.MxRecord{Preference: 10, Exchange: "mail.example.com."},
		},
	}
	text := Serialize(Header{Zone: "example.com", Exported: exportedAt}, []*model.RecordSet{rs})
	if strings.Contains(text, "AAAA") || strings.Contains(text, "MX") {
		t.Errorf("foreign-type values leaked into A serialization:\n%s", text)
	}
}

func TestSerializeFqdnDotTermination(t *testing.T) {
	mx := model.NewRecordSet("@", model.RecordTypeMX, 300)
	_ = mx.AddValue(model.MxRecord{Preference: 10, Exchange: "mail.example.com"})
	ns := model.NewRecordSet("@", model.RecordTypeNS, 300)
	_ = ns.AddValue(model.NsRecord{Nsdname: "ns1.example.com"})
	text := Serialize(Header{Zone: "example.com", Exported: exportedAt},
		[]*model.RecordSet{mx, ns})
	if !strings.Contains(text, "10 mail.example.com.\n") {
		t.Errorf("MX exchange not dot-terminated:\n%s", text)
	}
	if !strings.Contains(text, "IN NS ns1.example.com.\n") {
		t.Errorf("NS nsdname not dot-terminated:\n%s", text)
	}
}

func TestRoundTrip(t *testing.T) {
	a := model.NewRecordSet("www", model.RecordTypeA, 3600)
	_ = a.AddValue(model.ARecord{IPv4Address: "10.0.0.1"})
	_ = a.AddValue(model.ARecord{IPv4Address: "10.0.0.2"})
	aaaa := model.NewRecordSet("www", model.RecordTypeAAAA, 3600)
	_ = aaaa.AddValue(model.AaaaRecord{IPv6Address: "2001:db8::1"})
	txt := model.NewRecordSet("info", model.RecordTypeTXT, 600)
	_ = txt.AddValue(model.TxtRecord{Value: "v=spf1 -all"})
	ns := model.NewRecordSet("@", model.RecordTypeNS, 172800)
	_ = ns.AddValue(model.NsRecord{Nsdname: "ns1-01.azure-dns.com."})
	_ = ns.AddValue(model.NsRecord{Nsdname: "ns2-01.azure-dns.net."})
	original := []*model.RecordSet{a, aaaa, txt, ns}

	text := Serialize(Header{Zone: "example.com", Exported: exportedAt}, original)
	zf, err := Parse("example.com", text, ParseOptions{})
	if err != nil {
		t.Fatalf("Parse of serialized output: %v\n%s", err, text)
	}
	if len(zf.Sets) != len(original) {
		t.Fatalf("round trip set count = %d, want %d:\n%s", len(zf.Sets), len(original), text)
	}
	for _, want := range original {
		got := findSet(zf, want.Name, want.Type)
		if got == nil {
			t.Errorf("round trip lost set %s", want.Key())
			continue
		}
		if got.TTL != want.TTL {
			t.Errorf("%s TTL = %d, want %d", want.Key(), got.TTL, want.TTL)
		}
		if !got.EqualValues(want) {
			t.Errorf("%s values = %v, want %v", want.Key(), got.Values, want.Values)
		}
	}
}

// Exported text must also be accepted by an independent zone file parser.
func TestSerializeAcceptedByReferenceParser(t *testing.T) {
	a := model.NewRecordSet("www", model.RecordTypeA, 3600)
	_ = a.AddValue(model.ARecord{IPv4Address: "10.0.0.1"})
	_ = a.AddValue(model.ARecord{IPv4Address: "10.0.0.2"})
	mx := model.NewRecordSet("@", model.RecordTypeMX, 300)
	_ = mx.AddValue(model.MxRecord{Preference: 10, Exchange: "mail.example.com."})
	srv := model.NewRecordSet("_sip._tcp", model.RecordTypeSRV, 300)
	_ = srv.AddValue(model.SrvRecord{Priority: 10, Weight: 60, Port: 5060, Target: "sip.example.com."})
	sets := []*model.RecordSet{soaSet(2024030100), a, mx, srv}

	text := Serialize(Header{Zone: "example.com", Exported: exportedAt}, sets)
	zp := dns.NewZoneParser(strings.NewReader(text), "example.com.", "export.zone")
	count := 0
	for _, ok := zp.Next(); ok; _, ok = zp.Next() {
		count++
	}
	if err := zp.Err(); err != nil {
		t.Fatalf("reference parser rejected exported text: %v\n%s", err, text)
	}
	wantLines := 0
	for _, rs := range sets {
		wantLines += len(rs.Values)
	}
	if count != wantLines {
		t.Errorf("reference parser saw %d records, want %d:\n%s", count, wantLines, text)
	}
}

// recordLines returns the non-comment, non-directive, non-blank lines.
func recordLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" || strings.HasPrefix(l, ";") || strings.HasPrefix(l, "$") {
			continue
		}
		out = append(out, l)
	}
	return out
}
