package session

import (
	"log"
	"strings"

	"github.com/hcavr/avrd/avr"
)

// handler processes the remainder of a line once its mnemonic has been
// identified by avr.LongestMatch. It is responsible for deciding the
// resulting Cell (if any) and calling setCell itself, since several
// mnemonics (CV, SSLEV, OPTPN, SSINFFRM...) accumulate several lines
// before they have a complete value to publish.
type handler func(s *Session, def avr.CommandDef, rest string)

// handlers overrides the generic dispatch for mnemonics whose wire
// encoding is not a plain closed-set literal or boolean.
var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"MV":    handleVolume,
		"Z2MV":  handleVolume,
		"Z3MV":  handleVolume,
		"CV":    handleChannelBias,
		"SSLEV": handleSpeakerLevel,
		"PSCLV": handleSignedNumber("PSCLV"),
		"PSSWL": handleSignedNumber("PSSWL"),
		"PSBAS": handleToneNumber, "Z2PSBAS": handleToneNumber, "Z3PSBAS": handleToneNumber,
		"PSTRE": handleToneNumber, "Z2PSTRE": handleToneNumber, "Z3PSTRE": handleToneNumber,
		"PSTONE":   handleControlToggle,
		"PSLFE":    handleLFE,
		"PSDEL":    handlePlainNumber("PSDEL"),
		"PSREFLEV": handlePlainNumber("PSREFLEV"),
		"SSSOD":    handleSSSOD,
		"SSFUN":    handleSSFUN,
		"MS":       handleSurroundMode,
		"DASTN":    handleTunerName("DASTN"),
		"TFANNAME": handleTunerName("TFANNAME"),
		"TPAN":     handlePlainNumber("TPAN"),
		"DAQUA":    handlePlainNumber("DAQUA"),
		"OPTPN":    handleOPTPN,
		"SSINFFRM": handleSSINFFRM,
		"BTTX":     handleBTTX,
		"RR":       handleRR,
		"R1":       handleZoneName,
		"R2":       handleZoneName,
		"R3":       handleZoneName,
		"Z2":       handleZoneOverload,
		"Z3":       handleZoneOverload,
	}
}

// handleLine is the reader goroutine's single entry point for a parsed
// inbound line: find the longest-matching mnemonic, then dispatch to its
// specific handler or, failing that, the generic boolean/enum/string
// fallback.
func (s *Session) handleLine(line string) {
	if line == "SSINFAISFSV" || strings.HasPrefix(line, "SSINFAISFSV") {
		s.handleSamplingRate(line)
		return
	}
	def, rest, ok := avr.LongestMatch(line)
	if !ok {
		log.Printf("session %s: unrecognised line %q", s.Serial, line)
		return
	}
	if h, ok := handlers[def.Code]; ok {
		h(s, def, rest)
		return
	}
	genericHandle(s, def, rest)
}

// genericHandle covers every mnemonic that is either a closed-set
// enumeration (def.Values non-empty) or a plain ON/OFF boolean.
func genericHandle(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	if len(def.Values) > 0 {
		for _, v := range def.Values {
			if v == rest {
				s.setCell(def, avr.EnumCell(rest))
				return
			}
		}
		log.Printf("session %s: %s: %v: unrecognised value %q", s.Serial, def.Code, avr.ErrUnknownValue, rest)
		return
	}
	switch rest {
	case "ON":
		s.setCell(def, avr.BoolCell(true))
	case "OFF":
		s.setCell(def, avr.BoolCell(false))
	default:
		s.setCell(def, avr.StringCell(rest))
	}
}

// setCell stores value under def.Code and notifies, unconditionally: per
// the protocol's observed behaviour, a reply that repeats the cached
// value is still a real event worth surfacing (e.g. a manual front-panel
// press echoing back the value already held).
func (s *Session) setCell(def avr.CommandDef, value avr.Cell) {
	s.statusMu.Lock()
	s.status[def.Code] = value
	s.statusMu.Unlock()
	s.notify(def, value)
}

// clearCell resets def's cell to empty without notifying; used to
// enforce mutual exclusion between DASTN and TFANNAME.
func (s *Session) clearCell(def avr.CommandDef) {
	s.statusMu.Lock()
	delete(s.status, def.Code)
	s.statusMu.Unlock()
}

// handleControlToggle covers PSTONE, whose wire form is "PSTONE CTRL
// ON|OFF" rather than a bare boolean; it strips the "CTRL " prefix before
// falling back to the generic ON/OFF parse.
func handleControlToggle(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, "CTRL")
	rest = strings.TrimSpace(rest)
	switch rest {
	case "ON":
		s.setCell(def, avr.BoolCell(true))
	case "OFF":
		s.setCell(def, avr.BoolCell(false))
	default:
		s.setCell(def, avr.StringCell(rest))
	}
}

// handleTunerName returns a handler that stores a free-form string. DASTN
// and TFANNAME are mutually exclusive: the device reports the station
// name via one or the other depending on firmware/broadcast type, never
// both meaningfully at once, so setting one clears the other.
func handleTunerName(code string) handler {
	other := "TFANNAME"
	if code == "TFANNAME" {
		other = "DASTN"
	}
	return func(s *Session, def avr.CommandDef, rest string) {
		s.setCell(def, avr.StringCell(strings.TrimSpace(rest)))
		if otherDef, ok := avr.Lookup(other); ok {
			s.clearCell(otherDef)
		}
	}
}

// handleZoneName stores R1/R2/R3's payload (the zone's configured
// display name) as a string cell.
func handleZoneName(s *Session, def avr.CommandDef, rest string) {
	s.setCell(def, avr.StringCell(strings.TrimSpace(rest)))
}

// handleRR is a no-op trigger: "RR?" itself never returns a direct
// payload of its own, only the subsequent R1/R2/R3 lines, each dispatched
// independently by LongestMatch.
func handleRR(s *Session, def avr.CommandDef, rest string) {}
