package session

import (
	"strconv"
	"strings"

	"github.com/hcavr/avrd/avr"
)

// parseStep decodes the device's two-or-three-digit numeric encoding: a
// two-digit field is a whole unit anchored at offset, and a three-digit
// field whose last character is '5' is a half-step, e.g. "805" -> 80.5,
// "50" -> 0 (offset 50) or 50 (offset 0) depending on the caller.
func parseStep(raw string, offset float64) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if len(raw) == 3 && raw[2] == '5' {
		n, err := strconv.Atoi(raw[:2])
		if err != nil {
			return 0, false
		}
		return float64(n) - offset + 0.5, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return float64(n) - offset, true
}

// handleVolume covers MV/Z2MV/Z3MV. A reply of "MAX 98" (or "MAX 985"
// for a half-step max) sets the session's ceiling rather than the
// current volume; any other reply is the zone's live volume, encoded
// with no offset (raw "50" is 50.0 dB of attenuation headroom, not an
// offset from a centre point the way bass/treble are).
func handleVolume(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "MAX") {
		v, ok := parseStep(strings.TrimSpace(strings.TrimPrefix(rest, "MAX")), 0)
		if !ok {
			return
		}
		s.statusMu.Lock()
		s.maxVolume = v
		s.statusMu.Unlock()
		return
	}
	v, ok := parseStep(rest, 0)
	if !ok {
		return
	}
	s.setCell(def, avr.FloatCell(v))
}

// handleToneNumber covers PSBAS/PSTRE and their zone variants: a
// two-digit field anchored at 50 ("50" == 0 dB, "44" == -6 dB, "56" ==
// +6 dB).
func handleToneNumber(s *Session, def avr.CommandDef, rest string) {
	v, ok := parseStep(rest, 50)
	if !ok {
		return
	}
	s.setCell(def, avr.FloatCell(v))
}

// handleLFE covers PSLFE: the wire carries the absolute value of the LFE
// trim as a plain (unanchored) integer; the stored/displayed value is
// its negation, clamped to the session's -10..0 range by the command API
// on write (spec's fixed semantics: "value stored and displayed is
// negative dB; wire payload is its absolute value").
func handleLFE(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	n, err := strconv.Atoi(rest)
	if err != nil {
		return
	}
	if n > 0 {
		n = -n
	}
	s.setCell(def, avr.IntCell(n))
}

// handleSignedNumber returns a handler for mnemonics using the same
// 50-anchored signed encoding as tone controls, but with no zone
// variants (PSCLV, PSSWL).
func handleSignedNumber(code string) handler {
	return func(s *Session, def avr.CommandDef, rest string) {
		v, ok := parseStep(rest, 50)
		if !ok {
			return
		}
		s.setCell(def, avr.FloatCell(v))
	}
}

// handlePlainNumber returns a handler for mnemonics that are a bare,
// unanchored integer (PSDEL in ms, PSREFLEV in dB steps, TPAN preset
// index, DAQUA quality level).
func handlePlainNumber(code string) handler {
	return func(s *Session, def avr.CommandDef, rest string) {
		rest = strings.TrimSpace(rest)
		n, err := strconv.Atoi(rest)
		if err != nil {
			return
		}
		s.setCell(def, avr.IntCell(n))
	}
}
