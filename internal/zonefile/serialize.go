package zonefile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/dnsname"
)

// Header carries the zone identity and provenance emitted at the top of an
// exported zone file.
type Header struct {
	Zone          string
	ResourceGroup string
	Exported      time.Time
}

// Serialize renders record sets as zone file text: a provenance comment
// block, $TTL taken from the first emitted record set, $ORIGIN, then one
// line per value tuple. The SOA record set is always emitted first;
// remaining sets are grouped by owner name in input order with the fixed
// type order A, AAAA, CNAME, MX, NS, SRV, TXT, SOA, PTR within each group.
// The owner column is printed once per group and space-padded on
// subsequent lines so value columns align.
func Serialize(h Header, sets []*model.RecordSet) string {
	soa, groups, nameOrder := arrange(sets)

	var b strings.Builder
	fmt.Fprintf(&b, "; Zone: %s\n", dnsname.Trim(h.Zone))
	if h.ResourceGroup != "" {
		fmt.Fprintf(&b, "; Resource group: %s\n", h.ResourceGroup)
	}
	fmt.Fprintf(&b, "; Exported: %s\n", h.Exported.UTC().Format(time.RFC3339))
	b.WriteString("\n")

	ttl := int64(DefaultTTL)
	if soa != nil {
		ttl = soa.TTL
	} else if len(nameOrder) > 0 {
		ttl = groups[nameOrder[0]][0].TTL
	}
	fmt.Fprintf(&b, "$TTL %d\n", ttl)
	fmt.Fprintf(&b, "$ORIGIN %s\n", dnsname.Fqdn(h.Zone))

	if soa != nil {
		b.WriteString("\n")
		writeGroup(&b, []*model.RecordSet{soa}, h.Exported)
	}
	for _, name := range nameOrder {
		b.WriteString("\n")
		writeGroup(&b, groups[name], h.Exported)
	}
	return b.String()
}

// arrange splits off the SOA record set and groups the rest by owner name
// in first-seen order, each group sorted by the canonical type index.
func arrange(sets []*model.RecordSet) (soa *model.RecordSet, groups map[string][]*model.RecordSet, nameOrder []string) {
	groups = make(map[string][]*model.RecordSet)
	for _, rs := range sets {
		if rs == nil {
			continue
		}
		if rs.Type == model.RecordTypeSOA && soa == nil {
			soa = rs
			continue
		}
		if _, ok := groups[rs.Name]; !ok {
			nameOrder = append(nameOrder, rs.Name)
		}
		groups[rs.Name] = append(groups[rs.Name], rs)
	}
	for _, list := range groups {
		// Insertion sort keeps the input order of equal-type sets stable.
		for i := 1; i < len(list); i++ {
			for j := i; j > 0 && model.TypeIndex(list[j].Type) < model.TypeIndex(list[j-1].Type); j-- {
				list[j], list[j-1] = list[j-1], list[j]
			}
		}
	}
	return soa, groups, nameOrder
}

// writeGroup emits one line per value tuple for all record sets sharing an
// owner name. The owner column appears on the first line only; later lines
// pad it with spaces of the same width.
func writeGroup(b *strings.Builder, sets []*model.RecordSet, exported time.Time) {
	if len(sets) == 0 {
		return
	}
	owner := sets[0].Name
	pad := strings.Repeat(" ", len(owner))
	first := true
	for _, rs := range sets {
		for _, v := range rs.Values {
			// Stale values of a foreign type are never emitted.
			if v.RecordType() != rs.Type {
				continue
			}
			col := pad
			if first {
				col = owner
				first = false
			}
			fmt.Fprintf(b, "%s %d IN %s %s\n", col, rs.TTL, rs.Type, formatValue(v, exported))
		}
	}
}

// formatValue renders one value tuple as zone-file rdata. SOA records with
// no serial get the date-based default synthesized at serialization time.
func formatValue(v model.RecordValue, exported time.Time) string {
	if soa, ok := v.(model.SoaRecord); ok && soa.SerialNumber == 0 {
		soa.SerialNumber = defaultSerial(exported)
		return soa.String()
	}
	return fmt.Sprint(v)
}

// defaultSerial synthesizes a date-based SOA serial (YYYYMMDD00) when the
// record carries none.
func defaultSerial(exported time.Time) int64 {
	n, _ := strconv.ParseInt(exported.UTC().Format("20060102")+"00", 10, 64)
	return n
}
