package session

import (
	"strconv"
	"strings"

	"github.com/hcavr/avrd/avr"
)

// handleChannelBias covers CV: a run of "CV<channel> <level>" lines
// terminated by "CVEND" (matched here as rest == "END" once the "CV"
// mnemonic has been stripped). The first line after a prior END (or
// after session start) begins a fresh map; values accumulate until END,
// at which point the whole map is published as one ChannelMapCell.
func handleChannelBias(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	if rest == "END" {
		if s.pendingChans != nil {
			s.setCell(def, avr.ChannelMapCell(s.pendingChans))
		}
		s.pendingChans = nil
		s.cvAggregating = false
		return
	}
	if !s.cvAggregating {
		s.pendingChans = make(map[avr.Channel]float64)
		s.cvAggregating = true
	}
	ch, v, ok := splitChannelValue(rest)
	if !ok {
		return
	}
	s.pendingChans[ch] = v
}

// handleSpeakerLevel covers SSLEV, the speaker-level counterpart of CV
// with an identical "<channel> <level> ... END" wire shape.
func handleSpeakerLevel(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	if rest == "END" {
		if s.pendingLevels != nil {
			s.setCell(def, avr.ChannelMapCell(s.pendingLevels))
		}
		s.pendingLevels = nil
		s.sslevAggregating = false
		return
	}
	if !s.sslevAggregating {
		s.pendingLevels = make(map[avr.Channel]float64)
		s.sslevAggregating = true
	}
	ch, v, ok := splitChannelValue(rest)
	if !ok {
		return
	}
	s.pendingLevels[ch] = v
}

func splitChannelValue(rest string) (avr.Channel, float64, bool) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return "", 0, false
	}
	ch := avr.Channel(fields[0])
	if !avr.ValidChannel(ch) {
		return "", 0, false
	}
	v, ok := parseStep(fields[1], 50)
	if !ok {
		return "", 0, false
	}
	return ch, v, true
}

// handleSSSOD stores the device's currently available-source partition:
// a space-separated list of source literals, each followed by its
// availability flag (e.g. "SSSOD SAT/CBL USE" / "SSSOD CD DEL"), closed
// by an "END" line. Only the END line fires the change notification, so
// a subscriber never observes a partially-applied partition.
func handleSSSOD(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	if rest == "END" {
		s.statusMu.RLock()
		list := append([]avr.InputSource(nil), s.sources...)
		s.statusMu.RUnlock()
		s.setCell(def, avr.SourceListCell(list))
		return
	}
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return
	}
	src := avr.InputSource(fields[0])
	used := fields[1] == "USE"

	s.statusMu.Lock()
	if used {
		s.sources = appendUniqueSource(s.sources, src)
		s.sourcesNotUsed = removeSource(s.sourcesNotUsed, src)
	} else {
		s.sourcesNotUsed = appendUniqueSource(s.sourcesNotUsed, src)
		s.sources = removeSource(s.sources, src)
	}
	s.statusMu.Unlock()
}

func appendUniqueSource(list []avr.InputSource, src avr.InputSource) []avr.InputSource {
	for _, v := range list {
		if v == src {
			return list
		}
	}
	return append(list, src)
}

func removeSource(list []avr.InputSource, src avr.InputSource) []avr.InputSource {
	out := list[:0:0]
	for _, v := range list {
		if v != src {
			out = append(out, v)
		}
	}
	return out
}

// handleSSFUN stores the device's custom display name for each input
// source ("SSFUN SAT/CBL Set_Top_Box", underscores standing in for
// spaces on the wire), closed by an "END" line which alone fires the
// change notification.
func handleSSFUN(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	if rest == "END" {
		s.statusMu.RLock()
		out := make(map[string]string, len(s.sourcesName))
		for k, v := range s.sourcesName {
			out[string(k)] = v
		}
		s.statusMu.RUnlock()
		s.setCell(def, avr.StringMapCell(out))
		return
	}
	fields := strings.SplitN(rest, " ", 2)
	if len(fields) < 2 {
		return
	}
	src := fields[0]
	name := strings.ReplaceAll(fields[1], "_", " ")

	s.statusMu.Lock()
	s.sourcesName[avr.InputSource(src)] = name
	s.statusMu.Unlock()
}

// handleSurroundMode classifies MS's free-form reply into a bucket by
// substring containment, in the fixed order the device's own firmware
// resolves ambiguity: "PURE DIRECT" beats "DIRECT" beats the Dolby/DTS
// multichannel markers, since a string like "DOLBY DIGITAL+NEURAL:X"
// would otherwise satisfy more than one bucket at once. Several firmware
// markers (AAC, M CH, MULTI C, DTS, AL:X) have no corresponding
// SurroundMode literal of their own; they still have to resolve to
// DolbyDigital/DtsSurround via this bucket, never via exact lookup. Only
// a string matching none of the buckets falls back to an exact lookup
// against the closed enum set, and failing that, no update at all.
func handleSurroundMode(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	switch {
	case strings.Contains(rest, "PURE DIRECT"):
		s.setCell(def, avr.EnumCell(string(avr.SurroundPureDirect)))
		return
	case strings.Contains(rest, "DIRECT"):
		s.setCell(def, avr.EnumCell(string(avr.SurroundDirect)))
		return
	case strings.Contains(rest, "M CH"), strings.Contains(rest, "MULTI C"),
		strings.Contains(rest, "AAC"), strings.Contains(rest, "DOLBY"):
		s.setCell(def, avr.EnumCell(string(avr.SurroundDolbyDigital)))
		return
	case strings.Contains(rest, "DTS"), strings.Contains(rest, "AL:X"):
		s.setCell(def, avr.EnumCell(string(avr.SurroundDtsSurround)))
		return
	}
	for _, m := range avr.AllSurroundModes {
		if rest == string(m) {
			s.setCell(def, avr.EnumCell(string(m)))
			return
		}
	}
}

// handleOPTPN accumulates the tuner preset list. A single reply line can
// carry more than one preset entry concatenated together by firmware
// that doesn't separate them; each entry is a two-digit preset index (1
// through 56) followed by its name, and a new entry is recognised by
// scanning forward for the next two-digit index in range. The aggregate
// is only published once preset 56 has been seen, matching the device's
// behaviour of sending the full list as one burst ending at the highest
// preset index.
func handleOPTPN(s *Session, def avr.CommandDef, rest string) {
	if s.pendingPresets == nil {
		s.pendingPresets = make(map[int]string)
	}
	sawFinal := splitPresetEntries(rest, s.pendingPresets)
	if !sawFinal {
		return
	}
	out := make(map[int]string, len(s.pendingPresets))
	for k, v := range s.pendingPresets {
		out[k] = v
	}
	s.setCell(def, avr.PresetMapCell(out))
	s.pendingPresets = nil
}

// splitPresetEntries parses one or more concatenated preset entries out
// of rest into out, and reports whether preset 56 (the final preset) was
// among them.
func splitPresetEntries(rest string, out map[int]string) bool {
	rest = strings.TrimSpace(rest)
	if len(rest) < 2 {
		return false
	}
	idx, err := strconv.Atoi(rest[:2])
	if err != nil || idx < 1 || idx > 56 {
		return false
	}
	remainder := rest[2:]
	splitAt := -1
	for pos := 0; pos+2 <= len(remainder); pos++ {
		if !isDigit(remainder[pos]) || !isDigit(remainder[pos+1]) {
			continue
		}
		n, err := strconv.Atoi(remainder[pos : pos+2])
		if err != nil || n < 1 || n > 56 || n == idx {
			continue
		}
		splitAt = pos
		break
	}
	if splitAt == -1 {
		out[idx] = strings.TrimSpace(remainder)
		return idx == 56
	}
	out[idx] = strings.TrimSpace(remainder[:splitAt])
	sawFinal := splitPresetEntries(remainder[splitAt:], out)
	return idx == 56 || sawFinal
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// handleSSINFFRM accumulates the microcode-version block: one line per
// component, "<type> <version>" (e.g. "SSINFFRMDTS 1.23.0"), terminated
// by "SSINFFRM END" which alone fires the change notification and
// resets the block for the next sweep.
func handleSSINFFRM(s *Session, def avr.CommandDef, rest string) {
	rest = strings.TrimSpace(rest)
	if rest == "END" {
		if s.pendingMicro != nil {
			out := make(map[avr.MicroCodeType]string, len(s.pendingMicro))
			for k, v := range s.pendingMicro {
				out[k] = v
			}
			s.setCell(def, avr.MicrocodeMapCell(out))
		}
		s.pendingMicro = nil
		return
	}
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return
	}
	typ := avr.MicroCodeType(fields[0])
	ver := fields[1]
	if s.pendingMicro == nil {
		s.pendingMicro = make(map[avr.MicroCodeType]string)
	}
	s.pendingMicro[typ] = ver
}

// handleBTTX stores the combined Bluetooth dimension reply ("BTTX ON
// SP", transmitter state plus output-routing mode) as a small string
// map rather than inventing a dedicated Cell kind for one mnemonic.
func handleBTTX(s *Session, def avr.CommandDef, rest string) {
	fields := strings.Fields(rest)
	out := map[string]string{}
	if len(fields) >= 1 {
		out["power"] = fields[0]
	}
	if len(fields) >= 2 {
		out["output"] = fields[1]
	}
	s.setCell(def, avr.StringMapCell(out))
}

// handleSamplingRate stores the input sampling-rate line, which (unlike
// every other mnemonic) is not in the static catalogue at all: the
// device reports it unprompted and its mnemonic ("SSINFAISFSV") is
// otherwise undocumented. It is cached directly rather than through
// setCell/notify since there is no CommandDef to notify with.
func (s *Session) handleSamplingRate(line string) {
	rest := strings.TrimPrefix(line, "SSINFAISFSV")
	rest = strings.TrimSpace(rest)
	s.statusMu.Lock()
	s.status["SSINFAISFSV"] = avr.StringCell(rest)
	s.statusMu.Unlock()
}
