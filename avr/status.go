package avr

// Kind tags the variant actually stored in a Cell, mirroring the
// heterogeneous value types spec'd for StatusCell (Design Note: "Cells
// with heterogeneous value types should be represented as a
// tagged-variant keyed by mnemonic category").
type Kind int

const (
	// KindNone marks a cell that has never been populated.
	KindNone Kind = iota
	// KindBool holds a power-like ON/OFF boolean.
	KindBool
	// KindInt holds a signed integer (delay, LFE, tuner preset, ...).
	KindInt
	// KindFloat holds a signed decimal (volume, bass/treble, speaker level).
	KindFloat
	// KindString holds a free-form string (tuner station name, device name).
	KindString
	// KindEnum holds the wire literal of a closed-set enumeration member.
	KindEnum
	// KindChannelMap holds a Channel -> dB mapping (CV, SSLEV).
	KindChannelMap
	// KindPresetMap holds a preset-number -> station-name mapping (OPTPN).
	KindPresetMap
	// KindMicrocodeMap holds a MicroCodeType -> version-string mapping
	// (SSINFFRM).
	KindMicrocodeMap
	// KindSourceList holds an ordered list of InputSource (SSSOD).
	KindSourceList
	// KindStringMap holds a generic string -> string mapping (SSFUN
	// source display names, BTTX's combined dimension map).
	KindStringMap
)

// Cell is a single nullable status slot: the last parsed value of one
// mnemonic. Only the field matching Kind is meaningful.
type Cell struct {
	Kind Kind

	Bool   bool
	Int    int
	Float  float64
	Str    string
	Enum   string
	Chans  map[Channel]float64
	Preset map[int]string
	Micro  map[MicroCodeType]string
	Srcs   []InputSource
	SMap   map[string]string
}

// Set reports whether the cell currently holds a value.
func (c Cell) Set() bool { return c.Kind != KindNone }

// BoolCell builds a Cell holding a boolean.
func BoolCell(v bool) Cell { return Cell{Kind: KindBool, Bool: v} }

// IntCell builds a Cell holding an integer.
func IntCell(v int) Cell { return Cell{Kind: KindInt, Int: v} }

// FloatCell builds a Cell holding a decimal.
func FloatCell(v float64) Cell { return Cell{Kind: KindFloat, Float: v} }

// StringCell builds a Cell holding a string.
func StringCell(v string) Cell { return Cell{Kind: KindString, Str: v} }

// EnumCell builds a Cell holding an enumeration literal.
func EnumCell(v string) Cell { return Cell{Kind: KindEnum, Enum: v} }

// ChannelMapCell builds a Cell holding a Channel -> dB mapping.
func ChannelMapCell(m map[Channel]float64) Cell { return Cell{Kind: KindChannelMap, Chans: m} }

// PresetMapCell builds a Cell holding a preset -> name mapping.
func PresetMapCell(m map[int]string) Cell { return Cell{Kind: KindPresetMap, Preset: m} }

// MicrocodeMapCell builds a Cell holding a microcode type -> version mapping.
func MicrocodeMapCell(m map[MicroCodeType]string) Cell { return Cell{Kind: KindMicrocodeMap, Micro: m} }

// SourceListCell builds a Cell holding an ordered list of input sources.
func SourceListCell(s []InputSource) Cell { return Cell{Kind: KindSourceList, Srcs: s} }

// StringMapCell builds a Cell holding a generic string -> string mapping.
func StringMapCell(m map[string]string) Cell { return Cell{Kind: KindStringMap, SMap: m} }

// Equal reports whether two cells hold the same logical value. The parser
// does not consult it: it always notifies, per spec: "Updates that do not
// change the stored value still notify".
func (c Cell) Equal(o Cell) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case KindNone:
		return true
	case KindBool:
		return c.Bool == o.Bool
	case KindInt:
		return c.Int == o.Int
	case KindFloat:
		return c.Float == o.Float
	case KindString:
		return c.Str == o.Str
	case KindEnum:
		return c.Enum == o.Enum
	default:
		// Maps and slices are compared by reference identity at this
		// granularity; aggregate cells are always replaced wholesale by
		// their owning handler, never mutated in place.
		return false
	}
}

// Value returns the underlying Go value held by the cell, suitable for
// JSON marshaling once enum members have been reduced to their wire
// literal by the caller (see supervisor/notify.go).
func (c Cell) Value() interface{} {
	switch c.Kind {
	case KindBool:
		return c.Bool
	case KindInt:
		return c.Int
	case KindFloat:
		return c.Float
	case KindString:
		return c.Str
	case KindEnum:
		return c.Enum
	case KindChannelMap:
		out := make(map[string]float64, len(c.Chans))
		for k, v := range c.Chans {
			out[string(k)] = v
		}
		return out
	case KindPresetMap:
		return c.Preset
	case KindMicrocodeMap:
		out := make(map[string]string, len(c.Micro))
		for k, v := range c.Micro {
			out[string(k)] = v
		}
		return out
	case KindSourceList:
		out := make([]string, len(c.Srcs))
		for i, v := range c.Srcs {
			out[i] = string(v)
		}
		return out
	case KindStringMap:
		return c.SMap
	default:
		return nil
	}
}
