package session

import (
	"testing"

	"github.com/hcavr/avrd/avr"
)

func TestHandleVolumePlain(t *testing.T) {
	s := newTestSession()
	s.handleLine("MV425")
	cell, ok := s.Status("MV")
	if !ok || cell.Kind != avr.KindFloat || cell.Float != 42.5 {
		t.Fatalf("got %+v, want 42.5", cell)
	}
}

func TestHandleVolumeMaxUpdatesCeilingNotCell(t *testing.T) {
	s := newTestSession()
	s.handleLine("MVMAX 98")
	if _, ok := s.Status("MV"); ok {
		t.Fatal("MV MAX must not populate the MV cell")
	}
	if s.MaxVolume() != 98 {
		t.Fatalf("got maxVolume %v, want 98", s.MaxVolume())
	}
}

func TestChannelBiasAggregation(t *testing.T) {
	s := newTestSession()
	s.handleLine("CVFL 52")
	s.handleLine("CVFR 48")
	s.handleLine("CVEND")

	cell, ok := s.Status("CV")
	if !ok || cell.Kind != avr.KindChannelMap {
		t.Fatalf("expected a populated CV channel map, got %+v", cell)
	}
	if got := cell.Chans[avr.ChannelFrontLeft]; got != 2.0 {
		t.Errorf("FrontLeft: got %v, want 2.0", got)
	}
	if got := cell.Chans[avr.ChannelFrontRight]; got != -2.0 {
		t.Errorf("FrontRight: got %v, want -2.0", got)
	}
}

// Property: between an END and the next non-END line the CV cell's
// aggregation buffer is fresh-empty, so a block interrupted then restarted
// never leaks the prior block's entries into the next notification.
func TestChannelBiasResetsAfterEnd(t *testing.T) {
	s := newTestSession()
	s.handleLine("CVFL 52")
	s.handleLine("CVEND")
	s.handleLine("CVFR 48")
	s.handleLine("CVEND")

	cell, _ := s.Status("CV")
	if _, ok := cell.Chans[avr.ChannelFrontLeft]; ok {
		t.Fatal("second block must not carry over FrontLeft from the first")
	}
	if got := cell.Chans[avr.ChannelFrontRight]; got != -2.0 {
		t.Errorf("got %v, want -2.0", got)
	}
}

func TestSurroundModeClassifier(t *testing.T) {
	cases := []struct {
		line string
		want avr.SurroundMode
	}{
		{"MSDOLBY DIGITAL+NEURAL:X", avr.SurroundDolbyDigital},
		{"MSPURE DIRECT", avr.SurroundPureDirect},
		{"MSDIRECT", avr.SurroundDirect},
		{"MSDTS SURROUND", avr.SurroundDtsSurround},
		{"MSSTEREO", avr.SurroundStereo},
		// These carry no canonical enum literal as a prefix at all, so
		// only the substring-bucket classifier (not a prefix match
		// against AllSurroundModes) can resolve them.
		{"MSM CH IN+DSX", avr.SurroundDolbyDigital},
		{"MSAL:X ON", avr.SurroundDtsSurround},
	}
	for _, c := range cases {
		s := newTestSession()
		s.handleLine(c.line)
		cell, ok := s.Status("MS")
		if !ok || avr.SurroundMode(cell.Enum) != c.want {
			t.Errorf("%q: got %+v, want %v", c.line, cell, c.want)
		}
	}
}

func TestTunerNameMutualExclusion(t *testing.T) {
	s := newTestSession()
	s.handleLine("DASTNFIP MUSIQUE")
	if cell, ok := s.Status("DASTN"); !ok || cell.Str != "FIP MUSIQUE" {
		t.Fatalf("got %+v", cell)
	}
	s.handleLine("TFANNAMEFIP")
	if _, ok := s.Status("DASTN"); ok {
		t.Fatal("setting TFANNAME must clear DASTN")
	}
	if cell, ok := s.Status("TFANNAME"); !ok || cell.Str != "FIP" {
		t.Fatalf("got %+v", cell)
	}
}

func TestOPTPNFiresOnlyOnPreset56(t *testing.T) {
	s := newTestSession()
	s.handleLine("OPTPN01 FIP")
	if _, ok := s.Status("OPTPN"); ok {
		t.Fatal("preset list must not publish before preset 56")
	}
	s.handleLine("OPTPN56 LAST STATION")
	cell, ok := s.Status("OPTPN")
	if !ok || cell.Kind != avr.KindPresetMap {
		t.Fatalf("expected a populated preset map, got %+v", cell)
	}
	if cell.Preset[1] != "FIP" || cell.Preset[56] != "LAST STATION" {
		t.Fatalf("got %+v", cell.Preset)
	}
}

func TestOPTPNSplitsConcatenatedEntries(t *testing.T) {
	s := newTestSession()
	// Firmware that concatenates two preset entries onto one line.
	s.handleLine("OPTPN01 FIP02 FRANCE INTER")
	s.handleLine("OPTPN56 END")
	cell, _ := s.Status("OPTPN")
	if cell.Preset[1] != "FIP" {
		t.Errorf("preset 1: got %q", cell.Preset[1])
	}
	if cell.Preset[2] != "FRANCE INTER" {
		t.Errorf("preset 2: got %q", cell.Preset[2])
	}
}

func TestSSSODPartitionsSources(t *testing.T) {
	s := newTestSession()
	s.handleLine("SSSODSAT/CBL USE")
	s.handleLine("SSSODCD DEL")
	s.handleLine("SSSODEND")

	cell, ok := s.Status("SSSOD")
	if !ok || cell.Kind != avr.KindSourceList {
		t.Fatalf("got %+v", cell)
	}
	found := false
	for _, src := range cell.Srcs {
		if src == avr.SourceSetTopBox {
			found = true
		}
		if src == avr.SourceCD {
			t.Fatal("CD was marked DEL, must not appear in the used list")
		}
	}
	if !found {
		t.Fatal("SAT/CBL was marked USE, expected it in the used list")
	}
}

func TestSSFUNUnderscoresBecomeSpaces(t *testing.T) {
	s := newTestSession()
	s.handleLine("SSFUNSAT/CBL Set_Top_Box")
	s.handleLine("SSFUNEND")
	cell, ok := s.Status("SSFUN")
	if !ok || cell.SMap["SAT/CBL"] != "Set Top Box" {
		t.Fatalf("got %+v", cell)
	}
}

func TestPSToneCtrlStripsPrefix(t *testing.T) {
	s := newTestSession()
	s.handleLine("PSTONE CTRL ON")
	cell, ok := s.Status("PSTONE")
	if !ok || cell.Kind != avr.KindBool || !cell.Bool {
		t.Fatalf("got %+v, want boolean true", cell)
	}
}

func TestPowerLikeHandlesZoneMute(t *testing.T) {
	s := newTestSession()
	s.handleLine("Z2MUON")
	cell, ok := s.Status("Z2MU")
	if !ok || !cell.Bool {
		t.Fatalf("got %+v, want boolean true", cell)
	}
}

func TestZoneOverloadRoutesPowerVolumeSource(t *testing.T) {
	s := newTestSession()
	s.handleLine("Z2ON")
	if cell, ok := s.Status("Z2"); !ok || !cell.Bool {
		t.Fatalf("Z2 power: got %+v", cell)
	}
	s.handleLine("Z250")
	if cell, ok := s.Status("Z2MV"); !ok || cell.Float != 50 {
		t.Fatalf("Z2 volume: got %+v", cell)
	}
	s.handleLine("Z2CD")
	if cell, ok := s.Status("Z2SI"); !ok || avr.InputSource(cell.Enum) != avr.SourceCD {
		t.Fatalf("Z2 source: got %+v", cell)
	}
}

func TestUnrecognisedLineIsDroppedNotFatal(t *testing.T) {
	s := newTestSession()
	s.handleLine("ZZZZZZZZ garbage")
	if len(s.Snapshot()) != 0 {
		t.Fatal("an unrecognised line must not populate any cell")
	}
}
