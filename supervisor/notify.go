package supervisor

import (
	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/session"
)

// Notification is the marshaled shape of one command state-change,
// ready for JSON encoding and delivery to the host callback. Grounded on
// the original daemon's notificationCmd, which converts Enum/List[Enum]/
// Mapping[Enum] values to their wire literals before handing the payload
// to jeedomCom.add_changes; avr.Cell.Value() already performs that
// reduction, so this just shapes the envelope and the key.
type Notification struct {
	Key       string      `json:"-"`
	AvrName   string      `json:"avrName"`
	AvrSerial string      `json:"avrSerial"`
	CmdCode   string      `json:"cmdCode"`
	CmdLabel  string      `json:"cmdLabel"`
	Zone      string      `json:"zone,omitempty"`
	Value     interface{} `json:"value"`
}

// BuildNotification shapes a session's command callback into the host
// wire format: key "devices::<serial>::<zone>::<mnemonic>", zone omitted
// from the payload for zone-undefined mnemonics (matching the original's
// branch on commandDef.zone != UndefinedZone).
func BuildNotification(name string, s *session.Session, def avr.CommandDef, value avr.Cell) Notification {
	n := Notification{
		AvrName:   name,
		AvrSerial: s.Serial,
		CmdCode:   def.Code,
		CmdLabel:  def.Label,
		Value:     value.Value(),
	}
	if def.Zone != avr.ZoneUndefined {
		n.Zone = def.Zone.String()
	}
	n.Key = "devices::" + s.Serial + "::" + def.Zone.String() + "::" + def.Code
	return n
}

// EventNotification is the marshaled shape of a session lifecycle event
// or a supervisor-level register/unregister event.
type EventNotification struct {
	Key       string `json:"-"`
	AvrName   string `json:"avrName"`
	AvrSerial string `json:"avrSerial"`
	Value     string `json:"value"`
}

// BuildEvent shapes a lifecycle event into the host wire format, keyed
// by the "event" suffix under the device's zone-undefined namespace
// (matching notificationEvent's key in the original daemon).
func BuildEvent(name, serial string, kind avr.EventKind) EventNotification {
	return EventNotification{
		Key:       "devices::" + serial + "::" + avr.ZoneUndefined.String() + "::event",
		AvrName:   name,
		AvrSerial: serial,
		Value:     string(kind),
	}
}
