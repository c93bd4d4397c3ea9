package model

import (
	"context"
	"testing"
)

func aSet(name string, ttl int64, addrs ...string) *RecordSet {
	rs := NewRecordSet(name, RecordTypeA, ttl)
	for _, a := range addrs {
		_ = rs.AddValue(ARecord{IPv4Address: a})
	}
	return rs
}

func TestMergeIdempotence(t *testing.T) {
	x := aSet("www", 3600, "10.0.0.1", "10.0.0.2")
	merged, err := Merge(context.Background(), x.Clone(), x.Clone())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if !merged.EqualValues(x) {
		t.Errorf("merge of identical sets changed values: %v", merged.Values)
	}
	if len(merged.Values) != 2 {
		t.Errorf("merge introduced duplicates: %v", merged.Values)
	}
}

func TestMergeDisjointUnionExistingFirst(t *testing.T) {
	incoming := aSet("www", 3600, "10.0.0.3", "10.0.0.4")
	existing := aSet("www", 300, "10.0.0.1", "10.0.0.2")
	merged, err := Merge(context.Background(), incoming, existing)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	want := []RecordValue{
		ARecord{IPv4Address: "10.0.0.1"},
		ARecord{IPv4Address: "10.0.0.2"},
		ARecord{IPv4Address: "10.0.0.3"},
		ARecord{IPv4Address: "10.0.0.4"},
	}
	if len(merged.Values) != len(want) {
		t.Fatalf("merged values = %v, want %v", merged.Values, want)
	}
	for i := range want {
		if merged.Values[i] != want[i] {
			t.Errorf("merged.Values[%d] = %v, want %v", i, merged.Values[i], want[i])
		}
	}
}

func TestMergeForceReplacesExisting(t *testing.T) {
	incoming := aSet("www", 3600, "10.0.0.9")
	existing := aSet("www", 300, "10.0.0.1", "10.0.0.2")
	existing.Etag = "etag-existing"
	merged, err := Merge(context.Background(), incoming, existing, WithMergeForce())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if !merged.EqualValues(incoming) {
		t.Errorf("force merge kept existing values: %v", merged.Values)
	}
	if merged.Etag != "etag-existing" {
		t.Errorf("force merge dropped existing etag: %q", merged.Etag)
	}
}

func TestMergeTTLAndMetadata(t *testing.T) {
	incoming := aSet("www", 7200, "10.0.0.1")
	incoming.Metadata = map[string]string{"owner": "ops", "env": "prod"}
	existing := aSet("www", 300, "10.0.0.1")
	existing.Metadata = map[string]string{"env": "dev", "team": "net"}
	merged, err := Merge(context.Background(), incoming, existing)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if merged.TTL != 7200 {
		t.Errorf("merged TTL = %d, want incoming TTL 7200", merged.TTL)
	}
	want := map[string]string{"owner": "ops", "env": "prod", "team": "net"}
	for k, v := range want {
		if merged.Metadata[k] != v {
			t.Errorf("merged.Metadata[%s] = %q, want %q", k, merged.Metadata[k], v)
		}
	}
}

func TestMergeZeroTTLKeepsExisting(t *testing.T) {
	incoming := aSet("www", 0, "10.0.0.2")
	existing := aSet("www", 300, "10.0.0.1")
	merged, err := Merge(context.Background(), incoming, existing)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if merged.TTL != 300 {
		t.Errorf("merged TTL = %d, want existing TTL 300", merged.TTL)
	}
}

// Singleton merge conflicts resolve in favor of the incoming value with only
// a warning. This last-import-wins behavior is intentional; this test pins
// it so a future change to hard-conflict semantics is deliberate.
func TestMergeSingletonIncomingWins(t *testing.T) {
	incoming := NewRecordSet("alias", RecordTypeCNAME, 300)
	_ = incoming.AddValue(CnameRecord{Cname: "new.example.com."})
	existing := NewRecordSet("alias", RecordTypeCNAME, 300)
	_ = existing.AddValue(CnameRecord{Cname: "old.example.com."})
	merged, err := Merge(context.Background(), incoming, existing)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(merged.Values) != 1 || merged.Values[0] != (CnameRecord{Cname: "new.example.com."}) {
		t.Errorf("singleton merge = %v, want incoming value", merged.Values)
	}
}

func TestMergeSingletonAbsentIncomingKeepsExisting(t *testing.T) {
	incoming := NewRecordSet("alias", RecordTypeCNAME, 300)
	existing := NewRecordSet("alias", RecordTypeCNAME, 300)
	_ = existing.AddValue(CnameRecord{Cname: "old.example.com."})
	merged, err := Merge(context.Background(), incoming, existing)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(merged.Values) != 1 || merged.Values[0] != (CnameRecord{Cname: "old.example.com."}) {
		t.Errorf("singleton merge = %v, want existing value retained", merged.Values)
	}
}

func TestMergeCarriesExistingEtag(t *testing.T) {
	incoming := aSet("www", 3600, "10.0.0.1")
	existing := aSet("www", 300, "10.0.0.2")
	existing.Etag = "etag-42"
	merged, err := Merge(context.Background(), incoming, existing)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if merged.Etag != "etag-42" {
		t.Errorf("merged etag = %q, want existing etag for the conditional retry", merged.Etag)
	}
}

func TestMergeMismatch(t *testing.T) {
	a := aSet("www", 300, "10.0.0.1")
	txt := NewRecordSet("www", RecordTypeTXT, 300)
	if _, err := Merge(context.Background(), a, txt); err == nil {
		t.Error("expected error merging sets of different types")
	}
	other := aSet("mail", 300, "10.0.0.1")
	if _, err := Merge(context.Background(), a, other); err == nil {
		t.Error("expected error merging sets of different names")
	}
}

func TestMergeDoesNotMutateArguments(t *testing.T) {
	incoming := aSet("www", 3600, "10.0.0.3")
	existing := aSet("www", 300, "10.0.0.1")
	if _, err := Merge(context.Background(), incoming, existing); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(existing.Values) != 1 || len(incoming.Values) != 1 {
		t.Error("Merge mutated its arguments")
	}
	if existing.TTL != 300 {
		t.Error("Merge mutated existing TTL")
	}
}
