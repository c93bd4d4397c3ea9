package zonefile

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/dnsname"
)

// ParseValue builds a typed record value from zone-file rdata tokens.
// Relative domain names in rdata are qualified against origin; FQDN-valued
// fields come out dot-terminated. Used by the parser for record lines and by
// the CLI for add-record/remove-record arguments.
func ParseValue(rtype model.RecordType, data []string, origin string) (model.RecordValue, error) {
	switch rtype {
	case model.RecordTypeA:
		if len(data) < 1 {
			return nil, fmt.Errorf("A record requires an IPv4 address")
		}
		ip := net.ParseIP(data[0])
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("invalid IPv4 address: %s", data[0])
		}
		return model.ARecord{IPv4Address: data[0]}, nil

	case model.RecordTypeAAAA:
		if len(data) < 1 {
			return nil, fmt.Errorf("AAAA record requires an IPv6 address")
		}
		ip := net.ParseIP(data[0])
		if ip == nil || ip.To4() != nil {
			return nil, fmt.Errorf("invalid IPv6 address: %s", data[0])
		}
		return model.AaaaRecord{IPv6Address: data[0]}, nil

	case model.RecordTypeCNAME:
		if len(data) < 1 {
			return nil, fmt.Errorf("CNAME record requires a target")
		}
		return model.CnameRecord{Cname: dnsname.Qualify(data[0], origin)}, nil

	case model.RecordTypeMX:
		if len(data) < 2 {
			return nil, fmt.Errorf("MX record requires preference and exchange")
		}
		pref, err := parseInt32(data[0])
		if err != nil {
			return nil, fmt.Errorf("invalid MX preference: %s", data[0])
		}
		return model.MxRecord{Preference: pref, Exchange: dnsname.Qualify(data[1], origin)}, nil

	case model.RecordTypeNS:
		if len(data) < 1 {
			return nil, fmt.Errorf("NS record requires a name server")
		}
		return model.NsRecord{Nsdname: dnsname.Qualify(data[0], origin)}, nil

	case model.RecordTypeSRV:
		if len(data) < 4 {
			return nil, fmt.Errorf("SRV record requires priority, weight, port, target")
		}
		nums := make([]int32, 3)
		labels := []string{"priority", "weight", "port"}
		for i := 0; i < 3; i++ {
			n, err := parseInt32(data[i])
			if err != nil {
				return nil, fmt.Errorf("invalid SRV %s: %s", labels[i], data[i])
			}
			nums[i] = n
		}
		return model.SrvRecord{
			Priority: nums[0],
			Weight:   nums[1],
			Port:     nums[2],
			Target:   dnsname.Qualify(data[3], origin),
		}, nil

	case model.RecordTypeTXT:
		if len(data) < 1 {
			return nil, fmt.Errorf("TXT record requires a value")
		}
		return model.TxtRecord{Value: unquote(strings.Join(data, " "))}, nil

	case model.RecordTypeSOA:
		if len(data) < 7 {
			return nil, fmt.Errorf("SOA record requires 7 fields, got %d", len(data))
		}
		nums := make([]int64, 5)
		labels := []string{"serial", "refresh", "retry", "expire", "minimum TTL"}
		for i := 0; i < 5; i++ {
			n, err := strconv.ParseInt(data[i+2], 10, 64)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid SOA %s: %s", labels[i], data[i+2])
			}
			nums[i] = n
		}
		return model.SoaRecord{
			Host:         dnsname.Qualify(data[0], origin),
			Email:        dnsname.Qualify(data[1], origin),
			SerialNumber: nums[0],
			RefreshTime:  nums[1],
			RetryTime:    nums[2],
			ExpireTime:   nums[3],
			MinimumTTL:   nums[4],
		}, nil

	case model.RecordTypePTR:
		if len(data) < 1 {
			return nil, fmt.Errorf("PTR record requires a pointer")
		}
		return model.PtrRecord{Ptrdname: dnsname.Qualify(data[0], origin)}, nil
	}
	return nil, fmt.Errorf("unsupported record type: %s", rtype)
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number: %s", s)
	}
	return int32(n), nil
}
