// Package dnsname normalizes DNS owner names between the fully-qualified
// form used inside zone files and the zone-relative form used by the remote
// record set API, where the zone apex is written "@".
package dnsname

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// Apex is the zone-relative owner name of the zone itself.
const Apex = "@"

// Fqdn returns name with a trailing dot.
func Fqdn(name string) string {
	return dns.Fqdn(name)
}

// Trim returns name without a trailing dot.
func Trim(name string) string {
	return strings.TrimSuffix(name, ".")
}

// Qualify resolves a possibly-relative owner name against origin and returns
// the dot-terminated FQDN. "@" resolves to the origin itself; names already
// dot-terminated are returned unchanged.
func Qualify(name, origin string) string {
	if name == Apex || name == "" {
		return Fqdn(origin)
	}
	if dns.IsFqdn(name) {
		return name
	}
	return name + "." + Fqdn(origin)
}

// Relative converts a fully-qualified owner name to its zone-relative form.
// The apex becomes "@". An owner name outside the zone is an error: record
// sets can only be addressed relative to their own zone.
func Relative(fqdn, zone string) (string, error) {
	name := Trim(fqdn)
	zoneName := Trim(zone)
	if strings.EqualFold(name, zoneName) {
		return Apex, nil
	}
	suffix := "." + zoneName
	if !strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix)) {
		return "", fmt.Errorf("owner name %s is not within zone %s", fqdn, zoneName)
	}
	return name[:len(name)-len(suffix)], nil
}

// Validate checks that name is a syntactically valid domain name.
func Validate(name string) error {
	if _, ok := dns.IsDomainName(Fqdn(name)); !ok {
		return fmt.Errorf("invalid domain name: %s", name)
	}
	return nil
}
