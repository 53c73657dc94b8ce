package generator

import (
	"fmt"
	"strings"
)

// Carrier is a mainland China mobile network operator.
type Carrier int

const (
	CarrierAll Carrier = iota
	CarrierCMCC
	CarrierCUCC
	CarrierCTCC
)

var (
	cmccPrefixes = []string{"134", "135", "136", "137", "138", "139", "147", "150", "151", "152", "157", "158", "159", "172", "178", "182", "183", "184", "187", "188", "198"}
	cuccPrefixes = []string{"130", "131", "132", "145", "155", "156", "166", "175", "176", "185", "186", "196"}
	ctccPrefixes = []string{"133", "149", "153", "173", "177", "180", "181", "189", "199"}
)

// ParseCarrier maps all, cmcc, cucc and ctcc to a Carrier.
func ParseCarrier(s string) (Carrier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return CarrierAll, nil
	case "cmcc":
		return CarrierCMCC, nil
	case "cucc":
		return CarrierCUCC, nil
	case "ctcc":
		return CarrierCTCC, nil
	}
	return CarrierAll, fmt.Errorf("unknown carrier %q", s)
}

func (c Carrier) String() string {
	switch c {
	case CarrierCMCC:
		return "cmcc"
	case CarrierCUCC:
		return "cucc"
	case CarrierCTCC:
		return "ctcc"
	default:
		return "all"
	}
}

// carrierPrefixes returns the union of the prefixes of the chosen carriers. No carrier, all
// three, or CarrierAll select every prefix.
func carrierPrefixes(carriers []Carrier) []string {
	var cmcc, cucc, ctcc bool
	for _, c := range carriers {
		switch c {
		case CarrierAll:
			cmcc, cucc, ctcc = true, true, true
		case CarrierCMCC:
			cmcc = true
		case CarrierCUCC:
			cucc = true
		case CarrierCTCC:
			ctcc = true
		}
	}
	if !cmcc && !cucc && !ctcc {
		cmcc, cucc, ctcc = true, true, true
	}

	var prefixes []string
	if cmcc {
		prefixes = append(prefixes, cmccPrefixes...)
	}
	if cucc {
		prefixes = append(prefixes, cuccPrefixes...)
	}
	if ctcc {
		prefixes = append(prefixes, ctccPrefixes...)
	}
	return prefixes
}

// Phone returns an 11-digit mobile number: a prefix of one of the carriers followed by an
// eight digit subscriber number.
func (g *Generator) Phone(carriers ...Carrier) string {
	return g.pickString(carrierPrefixes(carriers)) + g.draw(digitChars, 8)
}
