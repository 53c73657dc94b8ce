package generator

import (
	"fmt"
	"strconv"
	"strings"
)

const hexChars = "0123456789abcdef"

type IPVersion string

const (
	IPv4 IPVersion = "v4"
	IPv6 IPVersion = "v6"
)

type IPScope string

const (
	ScopePublic  IPScope = "public"
	ScopePrivate IPScope = "private"
)

// IPSpec selects the address family and scope of a generated address.
type IPSpec struct {
	Version IPVersion
	Scope   IPScope
}

// ParseIPSpec accepts v4/ipv4/4, v6/ipv6/6 and private/internal/public. Empty values default to
// a public IPv4 address.
func ParseIPSpec(version, scope string) (IPSpec, error) {
	spec := IPSpec{Version: IPv4, Scope: ScopePublic}

	switch strings.ToLower(strings.TrimSpace(version)) {
	case "", "v4", "ipv4", "4":
	case "v6", "ipv6", "6":
		spec.Version = IPv6
	default:
		return IPSpec{}, fmt.Errorf("unknown ip version %q", version)
	}

	switch strings.ToLower(strings.TrimSpace(scope)) {
	case "", "public":
	case "private", "internal":
		spec.Scope = ScopePrivate
	default:
		return IPSpec{}, fmt.Errorf("unknown ip scope %q", scope)
	}

	return spec, nil
}

// octetRange is an inclusive octet bound.
type octetRange struct{ lo, hi int }

// privateBlock describes an RFC 1918 block as per-octet bounds.
type privateBlock [4]octetRange

var privateBlocks = []privateBlock{
	{{10, 10}, {0, 255}, {0, 255}, {1, 254}},     // 10.0.0.0/8
	{{172, 172}, {16, 31}, {0, 255}, {1, 254}},   // 172.16.0.0/12
	{{192, 192}, {168, 168}, {0, 255}, {1, 254}}, // 192.168.0.0/16
}

// IP returns an address shaped by spec. The address is built structurally and is not checked
// against every reserved range.
func (g *Generator) IP(spec IPSpec) string {
	private := spec.Scope == ScopePrivate
	if spec.Version == IPv6 {
		if private {
			return g.privateIPv6()
		}
		return g.publicIPv6()
	}
	if private {
		return g.privateIPv4()
	}
	return g.publicIPv4()
}

func (g *Generator) privateIPv4() string {
	block := privateBlocks[g.intn(len(privateBlocks))]
	var octets [4]int
	for i, r := range block {
		octets[i] = g.between(r.lo, r.hi)
	}
	return formatIPv4(octets)
}

func (g *Generator) publicIPv4() string {
	var octets [4]int

	first := g.intn(256)
	for first == 10 || first == 127 || first >= 224 {
		first = g.intn(256)
	}
	octets[0] = first

	second := g.intn(256)
	switch first {
	case 172:
		for second >= 16 && second <= 31 {
			second = g.intn(256)
		}
	case 192:
		for second == 168 {
			second = g.intn(256)
		}
	}
	octets[1] = second

	octets[2] = g.intn(256)
	octets[3] = g.between(1, 254)
	return formatIPv4(octets)
}

func formatIPv4(octets [4]int) string {
	parts := make([]string, len(octets))
	for i, o := range octets {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ".")
}

// privateIPv6 returns a unique local address: fd, a 40-bit global ID, an elided zero run and
// four random groups.
func (g *Generator) privateIPv6() string {
	head := "fd" + g.draw(hexChars, 10)
	groups := []string{head[0:4], head[4:8], head[8:12]}
	tail := make([]string, 4)
	for i := range tail {
		tail[i] = g.draw(hexChars, 4)
	}
	return strings.Join(groups, ":") + "::" + strings.Join(tail, ":")
}

func (g *Generator) publicIPv6() string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = g.draw(hexChars, 4)
	}
	return strings.Join(groups, ":")
}
