// Package avr describes the data model of a Denon/Marantz AVR control
// protocol: zones, channels, the closed-set value enumerations exchanged
// over the wire, the static command catalogue, and the tagged-variant
// status cell used to cache a device's observed state.
package avr

// Zone identifies one of the AVR's independently driven outputs.
type Zone int

const (
	// ZoneUndefined is used by system-wide mnemonics that are not bound to
	// a particular zone (e.g. PW, MS, CV).
	ZoneUndefined Zone = iota
	// ZoneMain is the AVR's primary output.
	ZoneMain
	// Zone2 is the first additional zone.
	Zone2
	// Zone3 is the second additional zone.
	Zone3
)

// zoneWire holds the value exchanged on the wire/host boundary for a Zone.
var zoneWire = map[Zone]string{
	ZoneUndefined: "UNDEFINED",
	ZoneMain:      "1",
	Zone2:         "2",
	Zone3:         "3",
}

var zoneFromWire = map[string]Zone{
	"UNDEFINED": ZoneUndefined,
	"1":         ZoneMain,
	"main":      ZoneMain,
	"2":         Zone2,
	"3":         Zone3,
}

// String returns the wire/host literal for z.
func (z Zone) String() string {
	if s, ok := zoneWire[z]; ok {
		return s
	}
	return "UNDEFINED"
}

// ParseZone maps a host-supplied zone token ("main", 1, "2", "3", ...) to a
// Zone. Unrecognised tokens map to ZoneUndefined, matching the original
// daemon's behaviour of defaulting to the undefined zone on bad input.
func ParseZone(s string) Zone {
	if z, ok := zoneFromWire[s]; ok {
		return z
	}
	return ZoneUndefined
}
