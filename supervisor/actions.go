package supervisor

import (
	"strconv"

	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/session"
)

// actionHandler is the Go-native replacement for the original daemon's
// reflection-based dispatch (getattr(device, "do"+action) then inspect
// the method's formal parameters for {zone,value}/{zone}/{value}/{}).
// Every handler takes the same three arguments; one ignoring zone and/or
// value is how an arity is expressed here instead of through
// introspection (spec Design Note §9).
type actionHandler func(s *session.Session, zone avr.Zone, value string) error

// actionHandlers maps a host-supplied action name (the device-action
// vocabulary of spec.md §6.3, same spelling as the Session command API)
// to its handler. Built once at init so DoAction never touches
// reflection.
var actionHandlers map[string]actionHandler

func init() {
	actionHandlers = map[string]actionHandler{
		"TurnAVROn":  func(s *session.Session, _ avr.Zone, _ string) error { s.TurnAVROn(); return nil },
		"TurnAVROff": func(s *session.Session, _ avr.Zone, _ string) error { s.TurnAVROff(); return nil },
		"TurnOn":     func(s *session.Session, zone avr.Zone, _ string) error { return s.TurnOn(zone) },
		"TurnOff":    func(s *session.Session, zone avr.Zone, _ string) error { return s.TurnOff(zone) },

		"MuteVolume": func(s *session.Session, zone avr.Zone, value string) error {
			return s.MuteVolume(zone, parseBool(value))
		},
		"SetVolume": func(s *session.Session, zone avr.Zone, value string) error {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			return s.SetVolume(zone, v)
		},
		"VolumeUp":   func(s *session.Session, zone avr.Zone, _ string) error { return s.VolumeUp(zone) },
		"VolumeDown": func(s *session.Session, zone avr.Zone, _ string) error { return s.VolumeDown(zone) },

		"SetChannelBias": func(s *session.Session, _ avr.Zone, value string) error {
			ch, level, err := parseChannelValue(value)
			if err != nil {
				return err
			}
			return s.SetChannelBias(ch, level)
		},
		"ChannelBiasUp": func(s *session.Session, _ avr.Zone, value string) error {
			return s.ChannelBiasUp(avr.Channel(value))
		},
		"ChannelBiasDown": func(s *session.Session, _ avr.Zone, value string) error {
			return s.ChannelBiasDown(avr.Channel(value))
		},
		"ChannelsBiasReset": func(s *session.Session, _ avr.Zone, _ string) error {
			s.ChannelsBiasReset()
			return nil
		},
		"SetLevelChannel": func(s *session.Session, _ avr.Zone, value string) error {
			ch, level, err := parseChannelValue(value)
			if err != nil {
				return err
			}
			return s.SetLevelChannel(ch, level)
		},

		"SelectSource": func(s *session.Session, zone avr.Zone, value string) error {
			return s.SelectSource(zone, avr.InputSource(value))
		},
		"SelectSoundMode": func(s *session.Session, _ avr.Zone, value string) error {
			return s.SelectSoundMode(avr.SurroundMode(value))
		},
		"SelectPictureMode": func(s *session.Session, _ avr.Zone, value string) error {
			return s.SelectPictureMode(avr.PictureMode(value))
		},
		"SelectEcoMode": func(s *session.Session, _ avr.Zone, value string) error {
			return s.SelectEcoMode(avr.EcoMode(value))
		},
		"SelectDRCMode": func(s *session.Session, _ avr.Zone, value string) error {
			return s.SelectDRCMode(avr.DRCMode(value))
		},
		"SelectDynamicVolumeMode": func(s *session.Session, _ avr.Zone, value string) error {
			return s.SelectDynamicVolumeMode(avr.DynamicVolumeMode(value))
		},
		"AudioRestorer": func(s *session.Session, _ avr.Zone, value string) error {
			return s.AudioRestorer(avr.AudioRestorer(value))
		},
		"Standby": func(s *session.Session, _ avr.Zone, value string) error {
			return s.Standby(avr.Standby(value))
		},

		"SoundBass": func(s *session.Session, zone avr.Zone, value string) error {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			return s.SoundBass(zone, v)
		},
		"SoundTreble": func(s *session.Session, zone avr.Zone, value string) error {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			return s.SoundTreble(zone, v)
		},
		"SoundLFE": func(s *session.Session, _ avr.Zone, value string) error {
			v, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			s.SoundLFE(v)
			return nil
		},
		"SetDelay": func(s *session.Session, _ avr.Zone, value string) error {
			v, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			s.SetDelay(v)
			return nil
		},

		"TunerPreset": func(s *session.Session, _ avr.Zone, value string) error {
			v, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			s.TunerPreset(v)
			return nil
		},

		"SpeakerPreset": func(s *session.Session, _ avr.Zone, value string) error {
			v, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			return s.SpeakerPreset(v)
		},
		"BluetoothTransmitterOn": func(s *session.Session, _ avr.Zone, _ string) error {
			s.BluetoothTransmitterOn()
			return nil
		},
		"BluetoothTransmitterOff": func(s *session.Session, _ avr.Zone, _ string) error {
			s.BluetoothTransmitterOff()
			return nil
		},
		"BluetoothOutputMode": func(s *session.Session, _ avr.Zone, value string) error {
			return s.BluetoothOutputMode(avr.BluetoothOutputMode(value))
		},
		"HeadphoneEQOn":  func(s *session.Session, _ avr.Zone, _ string) error { s.HeadphoneEQOn(); return nil },
		"HeadphoneEQOff": func(s *session.Session, _ avr.Zone, _ string) error { s.HeadphoneEQOff(); return nil },
		"DynamicEQOn":    func(s *session.Session, _ avr.Zone, _ string) error { s.DynamicEQOn(); return nil },
		"DynamicEQOff":   func(s *session.Session, _ avr.Zone, _ string) error { s.DynamicEQOff(); return nil },
		"DynamicEQReferenceLevel": func(s *session.Session, _ avr.Zone, value string) error {
			v, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			return s.DynamicEQReferenceLevel(v)
		},
		"Lock": func(s *session.Session, _ avr.Zone, value string) error {
			s.Lock(parseBool(value))
			return nil
		},

		"Refresh": func(s *session.Session, _ avr.Zone, _ string) error { s.Refresh(); return nil },
	}
}

func parseBool(v string) bool {
	switch v {
	case "true", "ON", "on", "1":
		return true
	default:
		return false
	}
}

// parseChannelValue splits a host-supplied "<channel> <level>" value
// string, the wire shape the host plugin uses for SetChannelBias and
// SetLevelChannel.
func parseChannelValue(value string) (avr.Channel, float64, error) {
	var chStr, levelStr string
	for i, r := range value {
		if r == ' ' {
			chStr, levelStr = value[:i], value[i+1:]
			break
		}
	}
	if chStr == "" {
		return "", 0, avr.ErrUnknownChannel
	}
	level, err := strconv.ParseFloat(levelStr, 64)
	if err != nil {
		return "", 0, err
	}
	return avr.Channel(chStr), level, nil
}
