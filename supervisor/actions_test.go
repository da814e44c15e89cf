package supervisor

import (
	"testing"

	"github.com/hcavr/avrd/avr"
)

func TestParseBool(t *testing.T) {
	cases := map[string]bool{
		"true": true, "ON": true, "on": true, "1": true,
		"false": false, "OFF": false, "off": false, "0": false, "garbage": false,
	}
	for in, want := range cases {
		if got := parseBool(in); got != want {
			t.Errorf("parseBool(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseChannelValue(t *testing.T) {
	ch, level, err := parseChannelValue("FL 2.5")
	if err != nil {
		t.Fatal(err)
	}
	if ch != avr.ChannelFrontLeft || level != 2.5 {
		t.Fatalf("got (%v, %v)", ch, level)
	}
}

func TestParseChannelValueMissingSpace(t *testing.T) {
	if _, _, err := parseChannelValue("FL"); err != avr.ErrUnknownChannel {
		t.Fatalf("got %v, want ErrUnknownChannel", err)
	}
}

func TestParseChannelValueBadLevel(t *testing.T) {
	if _, _, err := parseChannelValue("FL notanumber"); err == nil {
		t.Fatal("expected a parse error for a non-numeric level")
	}
}

func TestActionHandlersCoverEveryCommand(t *testing.T) {
	want := []string{
		"TurnAVROn", "TurnAVROff", "TurnOn", "TurnOff",
		"MuteVolume", "SetVolume", "VolumeUp", "VolumeDown",
		"SetChannelBias", "ChannelBiasUp", "ChannelBiasDown", "ChannelsBiasReset", "SetLevelChannel",
		"SelectSource", "SelectSoundMode", "SelectPictureMode", "SelectEcoMode",
		"SelectDRCMode", "SelectDynamicVolumeMode", "AudioRestorer", "Standby",
		"SoundBass", "SoundTreble", "SoundLFE", "SetDelay",
		"TunerPreset", "SpeakerPreset",
		"BluetoothTransmitterOn", "BluetoothTransmitterOff", "BluetoothOutputMode",
		"HeadphoneEQOn", "HeadphoneEQOff", "DynamicEQOn", "DynamicEQOff", "DynamicEQReferenceLevel",
		"Lock", "Refresh",
	}
	for _, name := range want {
		if _, ok := actionHandlers[name]; !ok {
			t.Errorf("missing action handler %q", name)
		}
	}
}
