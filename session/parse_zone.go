package session

import (
	"log"
	"strings"

	"github.com/hcavr/avrd/avr"
)

// handleZoneOverload covers the bare "Z2"/"Z3" prefix, which the device
// overloads to carry several unrelated dimensions on the same mnemonic:
// power, source selection and volume all arrive as "Z2<remainder>" with
// no separating marker. Bass and treble share the overload in principle
// but are routed to their own catalogue entries (Z2PSBAS/Z2PSTRE) before
// this handler ever sees them, since avr.LongestMatch always prefers the
// longer mnemonic. This handler tries each remaining dimension in the
// order the protocol itself resolves ambiguity: power, then an ignored
// "SMART"/"FAVORITE" preset-recall echo, then a numeric volume, then a
// source literal. A remainder matching none of those is logged at debug
// and dropped.
func handleZoneOverload(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	switch rest {
	case "ON":
		s.setCell(def, avr.BoolCell(true))
		return
	case "OFF":
		s.setCell(def, avr.BoolCell(false))
		return
	}
	if strings.HasPrefix(rest, "SMART") || strings.HasPrefix(rest, "FAVORITE") {
		return
	}
	if v, ok := parseStep(rest, 0); ok {
		mvCode := def.Code + "MV"
		if mvDef, ok := avr.Lookup(mvCode); ok {
			s.setCell(mvDef, avr.FloatCell(v))
			return
		}
	}
	for _, src := range avr.AllSources {
		if string(src) == rest {
			siCode := def.Code + "SI"
			if siDef, ok := avr.Lookup(siCode); ok {
				s.setCell(siDef, avr.EnumCell(rest))
				return
			}
		}
	}
	log.Printf("session %s: %s: unmatched zone overload remainder %q", s.Serial, def.Code, rest)
}
