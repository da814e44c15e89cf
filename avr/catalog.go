package avr

// CommandDef is the static, immutable description of one mnemonic: its
// query form, zone binding, human label and (for closed-set properties)
// the admissible literal values.
type CommandDef struct {
	// Code is the mnemonic itself, e.g. "PW", "Z2MV", "SSLEV".
	Code string
	// QueryForm is the exact byte sequence to emit to request the
	// current value, not including the trailing "\r" (the transport
	// appends that).
	QueryForm string
	// Label is the human-readable name of the property.
	Label string
	// Zone is the zone this mnemonic is bound to, or ZoneUndefined for
	// system-wide mnemonics.
	Zone Zone
	// Values is the closed set of admissible wire literals for
	// enumeration-valued mnemonics. Empty for numeric, string or
	// structured (aggregate) mnemonics.
	Values []string
	// NoRefresh marks mnemonics that Refresh must not query directly,
	// either because another query already elicits their reply (R1/R2/R3
	// come back from a single RR query) or because querying them
	// directly confuses some firmware revisions (PSTONE, DASTN).
	NoRefresh bool
}

func def(code, query, label string, zone Zone, values ...string) CommandDef {
	return CommandDef{Code: code, QueryForm: query, Label: label, Zone: zone, Values: values}
}

func defNoRefresh(code, query, label string, zone Zone, values ...string) CommandDef {
	c := def(code, query, label, zone, values...)
	c.NoRefresh = true
	return c
}

// Catalog is the read-only table of every recognised mnemonic, indexed
// by code. It is built once at package init and never mutated afterward.
var Catalog = map[string]CommandDef{}

func init() {
	add := func(c CommandDef) { Catalog[c.Code] = c }

	// Power.
	add(def("PW", "PW?", "Main Power", ZoneUndefined, "OFF", "ON"))
	add(def("ZM", "ZM?", "Power", ZoneMain, "OFF", "ON"))
	add(def("Z2", "Z2?", "Power", Zone2, "OFF", "ON"))
	add(def("Z3", "Z3?", "Power", Zone3, "OFF", "ON"))
	add(def("STBY", "STBY?", "Auto Standby", ZoneUndefined, "15M", "30M", "60M", "OFF"))

	// Mute.
	add(def("MU", "MU?", "Muted", ZoneMain))
	add(def("Z2MU", "Z2MU?", "Muted", Zone2))
	add(def("Z3MU", "Z3MU?", "Muted", Zone3))

	// Volume.
	add(def("MV", "MV?", "Volume", ZoneMain))
	add(def("Z2MV", "Z2MV?", "Volume", Zone2))
	add(def("Z3MV", "Z3MV?", "Volume", Zone3))

	// Source.
	add(def("SI", "SI?", "Source", ZoneMain, stringsOfSources()...))
	add(def("Z2SI", "Z2SI?", "Source", Zone2, stringsOfSources()...))
	add(def("Z3SI", "Z3SI?", "Source", Zone3, stringsOfSources()...))
	add(def("SV", "SV?", "Video Mode", ZoneUndefined, stringsOfSources()...))
	add(def("SSSOD", "SSSOD ?", "Available Source", ZoneUndefined, stringsOfSources()...))
	add(def("SSFUN", "SSFUN ?", "Source Display Name", ZoneUndefined))

	// Modes.
	add(def("MS", "MS?", "Surround Mode", ZoneUndefined, stringsOfSurround()...))
	add(def("PV", "PV?", "Picture Mode", ZoneUndefined, stringsOfPicture()...))
	add(def("ECO", "ECO?", "Eco Mode", ZoneUndefined, stringsOfEco()...))
	add(def("PSDRC", "PSDRC ?", "Dynamic Range Compression", ZoneUndefined, stringsOfDRC()...))
	add(def("PSDYNVOL", "PSDYNVOL ?", "Dynamic Volume", ZoneUndefined, stringsOfDynVol()...))
	add(def("PSRSTR", "PSRSTR ?", "Audio Restorer", ZoneUndefined, stringsOfRestorer()...))

	// Channels.
	add(def("CV", "CV?", "Channel Bias", ZoneUndefined, stringsOfChannels()...))
	add(def("SSLEV", "SSLEV ?", "Speaker Levels", ZoneUndefined, stringsOfChannels()...))
	add(def("PSCLV", "PSCLV ?", "Centre Level", ZoneUndefined))
	add(def("PSSWL", "PSSWL ?", "Subwoofer Level", ZoneUndefined))

	// Tone.
	add(def("PSBAS", "PSBAS ?", "Sound Bass", ZoneMain))
	add(def("Z2PSBAS", "Z2PSBAS ?", "Sound Bass", Zone2))
	add(def("Z3PSBAS", "Z3PSBAS ?", "Sound Bass", Zone3))
	add(def("PSTRE", "PSTRE ?", "Sound Treble", ZoneMain))
	add(def("Z2PSTRE", "Z2PSTRE ?", "Sound Treble", Zone2))
	add(def("Z3PSTRE", "Z3PSTRE ?", "Sound Treble", Zone3))
	add(defNoRefresh("PSTONE", "PSTONE ?", "Sound Tone Control", ZoneUndefined))
	add(def("PSLFE", "PSLFE ?", "Sound LFE", ZoneUndefined))
	add(def("PSDEL", "PSDEL ?", "Sound Delay", ZoneUndefined))

	// EQ.
	add(def("PSHEQ", "PSHEQ?", "Headphone EQ", ZoneUndefined))
	add(def("PSDYNEQ", "PSDYNEQ?", "Dynamic EQ", ZoneUndefined))
	add(def("PSREFLEV", "PSREFLEV ?", "Dynamic EQ Reference Level", ZoneUndefined))

	// Tuner.
	add(defNoRefresh("DASTN", "DASTN ?", "Tuner Station Name", ZoneUndefined))
	add(def("DAPTY", "DAPTY?", "Tuner Program Type", ZoneUndefined))
	add(def("DAENL", "DAENL?", "Tuner Ensemble Label", ZoneUndefined))
	add(def("DAFRQ", "DAFRQ?", "Tuner Frequency", ZoneUndefined))
	add(def("DAQUA", "DAQUA?", "Tuner Quality", ZoneUndefined))
	add(def("DAINF", "DAINF?", "Tuner Audio Information", ZoneUndefined))
	add(def("TFANNAME", "TFANNAME?", "Tuner Station Name (RDS)", ZoneUndefined))
	add(def("TPAN", "TPAN?", "Tuner Preset", ZoneUndefined))
	add(def("TMAN", "TMAN?", "Tuner Mode", ZoneUndefined))
	add(def("OPTPN", "OPTPN?", "Tuner Station Preset List", ZoneUndefined))

	// Device.
	add(def("NSFRN", "NSFRN ?", "Friendly Name", ZoneUndefined))
	add(def("SSLAN", "SSLAN ?", "Language", ZoneUndefined))
	add(def("SSINFFRM", "SSINFFRM ?", "Microcode Versions", ZoneUndefined))
	add(def("SPPR", "SPPR ?", "Speaker Preset", ZoneUndefined))
	add(def("BTTX", "BTTX?", "Bluetooth", ZoneUndefined))
	add(def("SSLOC", "SSLOC ?", "Location", ZoneUndefined))

	// Zone display names: a single "RR?" query elicits R1/R2/R3 reply
	// lines, each carrying one zone's name; the individual codes are
	// parse targets only, not independently refreshed.
	add(def("RR", "RR?", "Zone Names", ZoneUndefined))
	add(defNoRefresh("R1", "", "Zone Name", ZoneMain))
	add(defNoRefresh("R2", "", "Zone Name", Zone2))
	add(defNoRefresh("R3", "", "Zone Name", Zone3))
}

func stringsOfSources() []string {
	out := make([]string, len(AllSources))
	for i, s := range AllSources {
		out[i] = string(s)
	}
	return out
}

func stringsOfSurround() []string {
	out := make([]string, len(AllSurroundModes))
	for i, s := range AllSurroundModes {
		out[i] = string(s)
	}
	return out
}

func stringsOfPicture() []string {
	out := make([]string, len(AllPictureModes))
	for i, s := range AllPictureModes {
		out[i] = string(s)
	}
	return out
}

func stringsOfEco() []string {
	out := make([]string, len(AllEcoModes))
	for i, s := range AllEcoModes {
		out[i] = string(s)
	}
	return out
}

func stringsOfDRC() []string {
	out := make([]string, len(AllDRCModes))
	for i, s := range AllDRCModes {
		out[i] = string(s)
	}
	return out
}

func stringsOfDynVol() []string {
	out := make([]string, len(AllDynamicVolumeModes))
	for i, s := range AllDynamicVolumeModes {
		out[i] = string(s)
	}
	return out
}

func stringsOfRestorer() []string {
	out := make([]string, len(AllAudioRestorers))
	for i, s := range AllAudioRestorers {
		out[i] = string(s)
	}
	return out
}

func stringsOfChannels() []string {
	out := make([]string, len(AllChannels))
	for i, c := range AllChannels {
		out[i] = string(c)
	}
	return out
}

// NeedsSpace is the set of mnemonics whose payload forms require a
// literal space before the argument rather than being glued directly to
// the code, e.g. "PSDEL 003" not "PSDEL003". This is exactly the
// NEEDSPACE set the original daemon declares (aiomadeavr/avr.py's
// NEEDSPACE list, minus the bare "DA" prefix which has no catalogue
// entry of its own here); it is not extended by guesswork for mnemonics
// the original never sends a payload for.
var NeedsSpace = map[string]bool{
	"PSDEL": true, "PSDYNVOL": true, "PSDRC": true, "PSLFE": true,
	"PSTRE": true, "Z2PSTRE": true, "Z3PSTRE": true,
	"PSBAS": true, "Z2PSBAS": true, "Z3PSBAS": true,
	"DASTN": true,
}

// Lookup returns the CommandDef for a mnemonic and whether it was found.
func Lookup(code string) (CommandDef, bool) {
	c, ok := Catalog[code]
	return c, ok
}

// LongestMatch returns the catalogue entry whose code is the longest
// prefix of line, and the remainder of line following that code. The
// second return is false if no catalogue entry's code prefixes line.
func LongestMatch(line string) (CommandDef, string, bool) {
	var best CommandDef
	bestLen := -1
	for code, def := range Catalog {
		if len(code) <= bestLen {
			continue
		}
		if len(line) >= len(code) && line[:len(code)] == code {
			best = def
			bestLen = len(code)
		}
	}
	if bestLen < 0 {
		return CommandDef{}, "", false
	}
	return best, line[bestLen:], true
}

// RefreshForms returns the distinct query lines Refresh must enqueue: one
// per catalogue entry not marked NoRefresh, each already carrying its
// trailing "?" (and a space before it wherever the entry's QueryForm has one).
func RefreshForms() []string {
	forms := make([]string, 0, len(Catalog))
	for _, c := range Catalog {
		if c.NoRefresh || c.QueryForm == "" {
			continue
		}
		forms = append(forms, c.QueryForm)
	}
	return forms
}
