package session

import (
	"fmt"
	"math"

	"github.com/hcavr/avrd/avr"
	"github.com/hcavr/avrd/mathx"
	"github.com/hcavr/avrd/util"
)

// onOff renders a boolean as the wire literal the device expects.
func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// encodeStep is the inverse of parseStep: it renders a dB value already
// anchored at offset as the device's two- or three-digit wire form,
// using a three-digit tenths form only when the value isn't a whole
// number (spec Property 1's round-trip).
func encodeStep(v, offset float64) string {
	raw := mathx.Round(v+offset, 0.5)
	scaled := int64(math.Round(raw * 10))
	if scaled%10 == 0 {
		return fmt.Sprintf("%02d", scaled/10)
	}
	return fmt.Sprintf("%03d", scaled)
}

func zonePowerCode(zone avr.Zone) (string, error) {
	switch zone {
	case avr.ZoneMain:
		return "ZM", nil
	case avr.Zone2:
		return "Z2", nil
	case avr.Zone3:
		return "Z3", nil
	default:
		return "", avr.ErrUnknownZone
	}
}

func zoneMuteCode(zone avr.Zone) (string, error) {
	switch zone {
	case avr.ZoneMain:
		return "MU", nil
	case avr.Zone2:
		return "Z2MU", nil
	case avr.Zone3:
		return "Z3MU", nil
	default:
		return "", avr.ErrUnknownZone
	}
}

// zoneVolumeCode returns the mnemonic used to *write* a zone's volume.
// This overloads the bare zone prefix for Zone2/Zone3 (matching the
// device's own overload of that prefix across power/volume/source, see
// parse_zone.go), but the main zone writes through the plain "MV" code.
func zoneVolumeCode(zone avr.Zone) (string, error) {
	switch zone {
	case avr.ZoneMain:
		return "MV", nil
	case avr.Zone2:
		return "Z2", nil
	case avr.Zone3:
		return "Z3", nil
	default:
		return "", avr.ErrUnknownZone
	}
}

// zoneSourceCode returns the mnemonic used to *write* a zone's source
// selection; see zoneVolumeCode for why Zone2/Zone3 overload the bare
// zone prefix while Main does not.
func zoneSourceCode(zone avr.Zone) (string, error) {
	switch zone {
	case avr.ZoneMain:
		return "SI", nil
	case avr.Zone2:
		return "Z2", nil
	case avr.Zone3:
		return "Z3", nil
	default:
		return "", avr.ErrUnknownZone
	}
}

func zoneBassCode(zone avr.Zone) (string, error) {
	switch zone {
	case avr.ZoneMain:
		return "PSBAS", nil
	case avr.Zone2:
		return "Z2PSBAS", nil
	case avr.Zone3:
		return "Z3PSBAS", nil
	default:
		return "", avr.ErrUnknownZone
	}
}

func zoneTrebleCode(zone avr.Zone) (string, error) {
	switch zone {
	case avr.ZoneMain:
		return "PSTRE", nil
	case avr.Zone2:
		return "Z2PSTRE", nil
	case avr.Zone3:
		return "Z3PSTRE", nil
	default:
		return "", avr.ErrUnknownZone
	}
}

// --- Power ---

// TurnAVROn powers the whole unit on.
func (s *Session) TurnAVROn() { s.enqueue("PW", "ON") }

// TurnAVROff puts the whole unit into standby.
func (s *Session) TurnAVROff() { s.enqueue("PW", "STANDBY") }

// TurnOn powers one zone on.
func (s *Session) TurnOn(zone avr.Zone) error {
	code, err := zonePowerCode(zone)
	if err != nil {
		return err
	}
	s.enqueue(code, "ON")
	return nil
}

// TurnOff powers one zone off.
func (s *Session) TurnOff(zone avr.Zone) error {
	code, err := zonePowerCode(zone)
	if err != nil {
		return err
	}
	s.enqueue(code, "OFF")
	return nil
}

// --- Volume ---

// MuteVolume mutes or unmutes a zone.
func (s *Session) MuteVolume(zone avr.Zone, muted bool) error {
	code, err := zoneMuteCode(zone)
	if err != nil {
		return err
	}
	s.enqueue(code, onOff(muted))
	return nil
}

// SetVolume sets a zone's volume, clamped to the session's known
// maxVolume and quantised to the nearest 0.5 dB.
func (s *Session) SetVolume(zone avr.Zone, value float64) error {
	code, err := zoneVolumeCode(zone)
	if err != nil {
		return err
	}
	value = util.Clamp(value, 0, s.MaxVolume())
	value = mathx.Round(value, 0.5)
	s.enqueue(code, encodeStep(value, 0))
	return nil
}

// VolumeUp raises a zone's volume by one device-defined notch.
func (s *Session) VolumeUp(zone avr.Zone) error {
	code, err := zoneVolumeCode(zone)
	if err != nil {
		return err
	}
	s.enqueue(code, "UP")
	return nil
}

// VolumeDown lowers a zone's volume by one device-defined notch.
func (s *Session) VolumeDown(zone avr.Zone) error {
	code, err := zoneVolumeCode(zone)
	if err != nil {
		return err
	}
	s.enqueue(code, "DOWN")
	return nil
}

// --- Channel bias ---

// currentBias returns the last-known CV mapping, or nil if the device
// has never reported one.
func (s *Session) currentBias() map[avr.Channel]float64 {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	c, ok := s.status["CV"]
	if !ok || c.Kind != avr.KindChannelMap {
		return nil
	}
	return c.Chans
}

// SetChannelBias sets one channel's bias, clamped to -12..+12 dB. The
// write is skipped entirely if the requested value already equals the
// cached one, since the device's own reply would otherwise just echo it
// back. Unknown channels fail synchronously without touching the write
// queue.
func (s *Session) SetChannelBias(ch avr.Channel, level float64) error {
	if !avr.ValidChannel(ch) {
		return avr.ErrUnknownChannel
	}
	level = util.Clamp(level, -12, 12)
	level = mathx.Round(level, 0.5)
	if bias := s.currentBias(); bias != nil {
		if cur, ok := bias[ch]; ok && cur == level {
			return nil
		}
	}
	s.enqueue("CV", string(ch)+" "+encodeStep(level, 50))
	return nil
}

// ChannelBiasUp raises one channel's bias by one notch. The channel must
// be both a recognised code and one the device currently reports as
// active; a channel the device hasn't surfaced in its CV block yet is
// reported as unavailable rather than written blind.
func (s *Session) ChannelBiasUp(ch avr.Channel) error {
	return s.channelBiasStep(ch, "UP", 12)
}

// ChannelBiasDown lowers one channel's bias by one notch.
func (s *Session) ChannelBiasDown(ch avr.Channel) error {
	return s.channelBiasStep(ch, "DOWN", -12)
}

func (s *Session) channelBiasStep(ch avr.Channel, dir string, limit float64) error {
	if !avr.ValidChannel(ch) {
		return avr.ErrUnknownChannel
	}
	bias := s.currentBias()
	if bias == nil {
		return avr.ErrChannelUnavailable
	}
	cur, ok := bias[ch]
	if !ok {
		return avr.ErrChannelUnavailable
	}
	if cur == limit {
		return nil
	}
	s.enqueue("CV", string(ch)+" "+dir)
	return nil
}

// ChannelsBiasReset resets every channel's bias to 0 dB in one command.
func (s *Session) ChannelsBiasReset() { s.enqueue("CV", "ZRL") }

// SetLevelChannel sets a speaker's calibrated level (SSLEV), as distinct
// from its channel bias (CV): level is clamped and quantised exactly
// like SetChannelBias but targets the speaker-level block.
func (s *Session) SetLevelChannel(ch avr.Channel, level float64) error {
	if !avr.ValidChannel(ch) {
		return avr.ErrUnknownChannel
	}
	level = util.Clamp(level, -12, 12)
	level = mathx.Round(level, 0.5)
	s.enqueue("SSLEV", string(ch)+" "+encodeStep(level, 50))
	return nil
}

// --- Selection ---

// SelectSource selects a zone's input source.
func (s *Session) SelectSource(zone avr.Zone, src avr.InputSource) error {
	code, err := zoneSourceCode(zone)
	if err != nil {
		return err
	}
	if !validEnum(string(src), avr.AllSources) {
		return avr.ErrUnknownValue
	}
	s.enqueue(code, string(src))
	return nil
}

// SelectSoundMode selects the surround processing mode.
func (s *Session) SelectSoundMode(mode avr.SurroundMode) error {
	if !validEnum(string(mode), avr.AllSurroundModes) {
		return avr.ErrUnknownValue
	}
	s.enqueue("MS", string(mode))
	return nil
}

// SelectPictureMode selects the video picture mode.
func (s *Session) SelectPictureMode(mode avr.PictureMode) error {
	if !validEnum(string(mode), avr.AllPictureModes) {
		return avr.ErrUnknownValue
	}
	s.enqueue("PV", string(mode))
	return nil
}

// SelectEcoMode selects the eco-power mode.
func (s *Session) SelectEcoMode(mode avr.EcoMode) error {
	if !validEnum(string(mode), avr.AllEcoModes) {
		return avr.ErrUnknownValue
	}
	s.enqueue("ECO", string(mode))
	return nil
}

// SelectDRCMode selects the dynamic range compression mode.
func (s *Session) SelectDRCMode(mode avr.DRCMode) error {
	if !validEnum(string(mode), avr.AllDRCModes) {
		return avr.ErrUnknownValue
	}
	s.enqueue("PSDRC", string(mode))
	return nil
}

// SelectDynamicVolumeMode selects the dynamic volume compression mode.
func (s *Session) SelectDynamicVolumeMode(mode avr.DynamicVolumeMode) error {
	if !validEnum(string(mode), avr.AllDynamicVolumeModes) {
		return avr.ErrUnknownValue
	}
	s.enqueue("PSDYNVOL", string(mode))
	return nil
}

// AudioRestorer selects the audio restorer mode.
func (s *Session) AudioRestorer(mode avr.AudioRestorer) error {
	if !validEnum(string(mode), avr.AllAudioRestorers) {
		return avr.ErrUnknownValue
	}
	s.enqueue("PSRSTR", string(mode))
	return nil
}

// Standby sets the auto-standby timer.
func (s *Session) Standby(mode avr.Standby) error {
	if !validEnum(string(mode), avr.AllStandby) {
		return avr.ErrUnknownValue
	}
	s.enqueue("STBY", string(mode))
	return nil
}

func validEnum(v string, set interface{}) bool {
	switch vs := set.(type) {
	case []avr.InputSource:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	case []avr.SurroundMode:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	case []avr.PictureMode:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	case []avr.EcoMode:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	case []avr.DRCMode:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	case []avr.DynamicVolumeMode:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	case []avr.AudioRestorer:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	case []avr.Standby:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	case []avr.BluetoothOutputMode:
		for _, s := range vs {
			if string(s) == v {
				return true
			}
		}
	}
	return false
}

// --- Tone ---

// SoundBass sets a zone's bass trim, clamped to -12..+12 dB.
func (s *Session) SoundBass(zone avr.Zone, db float64) error {
	code, err := zoneBassCode(zone)
	if err != nil {
		return err
	}
	db = util.Clamp(db, -12, 12)
	db = mathx.Round(db, 0.5)
	s.enqueue(code, encodeStep(db, 50))
	return nil
}

// SoundTreble sets a zone's treble trim, clamped to -12..+12 dB.
func (s *Session) SoundTreble(zone avr.Zone, db float64) error {
	code, err := zoneTrebleCode(zone)
	if err != nil {
		return err
	}
	db = util.Clamp(db, -12, 12)
	db = mathx.Round(db, 0.5)
	s.enqueue(code, encodeStep(db, 50))
	return nil
}

// SoundLFE sets the LFE trim. The value stored and displayed is negative
// dB in -10..0; the wire payload is its absolute value (spec's fixed
// semantics for the dual-sign-flip the original implementations
// disagreed on).
func (s *Session) SoundLFE(db int) {
	if db > 0 {
		db = -db
	}
	if db < -10 {
		db = -10
	}
	if db > 0 {
		db = 0
	}
	s.enqueue("PSLFE", fmt.Sprintf("%02d", -db))
}

// SetDelay sets the audio/video sync delay in milliseconds, clamped to
// 0..999.
func (s *Session) SetDelay(ms int) {
	ms = int(util.Clamp(float64(ms), 0, 999))
	s.enqueue("PSDEL", fmt.Sprintf("%03d", ms))
}

// --- Tuner ---

// TunerPreset recalls a tuner preset, clamped to 1..56.
func (s *Session) TunerPreset(n int) {
	n = int(util.Clamp(float64(n), 1, 56))
	s.enqueue("TPAN", fmt.Sprintf("%02d", n))
}

// --- Misc ---

// SpeakerPreset selects one of the device's two speaker configuration
// presets.
func (s *Session) SpeakerPreset(n int) error {
	if n != 1 && n != 2 {
		return avr.ErrOutOfRange
	}
	s.enqueue("SPPR", fmt.Sprintf("%d", n))
	return nil
}

// BluetoothTransmitterOn enables the Bluetooth transmitter.
func (s *Session) BluetoothTransmitterOn() { s.enqueue("BTTX", "ON") }

// BluetoothTransmitterOff disables the Bluetooth transmitter.
func (s *Session) BluetoothTransmitterOff() { s.enqueue("BTTX", "OFF") }

// BluetoothOutputMode selects whether audio continues to the speakers
// while transmitting over Bluetooth.
func (s *Session) BluetoothOutputMode(mode avr.BluetoothOutputMode) error {
	if !validEnum(string(mode), avr.AllBluetoothOutputModes) {
		return avr.ErrUnknownValue
	}
	s.enqueue("BTTX", string(mode))
	return nil
}

// HeadphoneEQOn enables the headphone EQ.
func (s *Session) HeadphoneEQOn() { s.enqueue("PSHEQ", "ON") }

// HeadphoneEQOff disables the headphone EQ.
func (s *Session) HeadphoneEQOff() { s.enqueue("PSHEQ", "OFF") }

// DynamicEQOn enables dynamic EQ.
func (s *Session) DynamicEQOn() { s.enqueue("PSDYNEQ", "ON") }

// DynamicEQOff disables dynamic EQ.
func (s *Session) DynamicEQOff() { s.enqueue("PSDYNEQ", "OFF") }

// DynamicEQReferenceLevel sets the dynamic EQ reference level, one of
// 0/5/10/15 dB.
func (s *Session) DynamicEQReferenceLevel(db int) error {
	switch db {
	case 0, 5, 10, 15:
	default:
		return avr.ErrOutOfRange
	}
	s.enqueue("PSREFLEV", fmt.Sprintf("%02d", db))
	return nil
}

// Lock enables or disables the front-panel control lock.
func (s *Session) Lock(locked bool) { s.enqueue("SSLOC", onOff(locked)) }
