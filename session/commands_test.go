package session

import (
	"testing"

	"github.com/hcavr/avrd/avr"
)

func TestSetVolumeClampsToCeiling(t *testing.T) {
	s := newTestSession()
	if err := s.SetVolume(avr.ZoneMain, 150); err != nil {
		t.Fatal(err)
	}
	items := s.drain()
	if len(items) != 1 || items[0].mnemonic != "MV" || items[0].payload != "98" {
		t.Fatalf("got %+v, want MV 98 (clamped to default ceiling)", items)
	}
}

func TestSetVolumeRoundsToHalfStep(t *testing.T) {
	s := newTestSession()
	if err := s.SetVolume(avr.ZoneMain, 42.3); err != nil {
		t.Fatal(err)
	}
	items := s.drain()
	if len(items) != 1 || items[0].payload != "425" {
		t.Fatalf("got %+v, want payload 425 (42.3 rounded to 42.5)", items)
	}
}

func TestSetVolumeUnknownZone(t *testing.T) {
	s := newTestSession()
	if err := s.SetVolume(avr.Zone(99), 10); err == nil {
		t.Fatal("expected an error for an unrecognised zone")
	}
}

func TestSetDelayClamps(t *testing.T) {
	s := newTestSession()
	s.SetDelay(-5)
	items := s.drain()
	if len(items) != 1 || items[0].payload != "000" {
		t.Fatalf("got %+v, want 000", items)
	}

	s.SetDelay(2000)
	items = s.drain()
	if len(items) != 1 || items[0].payload != "999" {
		t.Fatalf("got %+v, want 999", items)
	}
}

func TestSoundLFESignAndClamp(t *testing.T) {
	s := newTestSession()
	s.SoundLFE(5)
	items := s.drain()
	if len(items) != 1 || items[0].mnemonic != "PSLFE" || items[0].payload != "05" {
		t.Fatalf("got %+v, want PSLFE 05 (absolute value on the wire)", items)
	}

	s.SoundLFE(-15)
	items = s.drain()
	if len(items) != 1 || items[0].payload != "10" {
		t.Fatalf("got %+v, want 10 (clamped to -10 before negation)", items)
	}
}

func TestSetChannelBiasEncodesAndQueues(t *testing.T) {
	s := newTestSession()
	if err := s.SetChannelBias(avr.ChannelFrontLeft, 2); err != nil {
		t.Fatal(err)
	}
	items := s.drain()
	if len(items) != 1 || items[0].mnemonic != "CV" || items[0].payload != "FL 52" {
		t.Fatalf("got %+v, want CV \"FL 52\"", items)
	}
}

func TestSetChannelBiasUnknownChannel(t *testing.T) {
	s := newTestSession()
	if err := s.SetChannelBias(avr.Channel("ZZ"), 2); err != avr.ErrUnknownChannel {
		t.Fatalf("got %v, want ErrUnknownChannel", err)
	}
	if items := s.drain(); len(items) != 0 {
		t.Fatalf("expected no enqueue for an unknown channel, got %+v", items)
	}
}

func TestSetChannelBiasSkipsNoopWrite(t *testing.T) {
	s := newTestSession()
	s.status["CV"] = avr.ChannelMapCell(map[avr.Channel]float64{avr.ChannelFrontLeft: 2})
	if err := s.SetChannelBias(avr.ChannelFrontLeft, 2); err != nil {
		t.Fatal(err)
	}
	if items := s.drain(); len(items) != 0 {
		t.Fatalf("expected the write to be skipped since the value is unchanged, got %+v", items)
	}
}

func TestChannelBiasUpUnavailableChannel(t *testing.T) {
	s := newTestSession()
	if err := s.ChannelBiasUp(avr.ChannelFrontLeft); err != avr.ErrChannelUnavailable {
		t.Fatalf("got %v, want ErrChannelUnavailable", err)
	}
}

func TestChannelBiasUpAtLimitIsNoop(t *testing.T) {
	s := newTestSession()
	s.status["CV"] = avr.ChannelMapCell(map[avr.Channel]float64{avr.ChannelFrontLeft: 12})
	if err := s.ChannelBiasUp(avr.ChannelFrontLeft); err != nil {
		t.Fatal(err)
	}
	if items := s.drain(); len(items) != 0 {
		t.Fatalf("expected no write at the +12 ceiling, got %+v", items)
	}
}

func TestChannelBiasUpEnqueues(t *testing.T) {
	s := newTestSession()
	s.status["CV"] = avr.ChannelMapCell(map[avr.Channel]float64{avr.ChannelFrontLeft: 5})
	if err := s.ChannelBiasUp(avr.ChannelFrontLeft); err != nil {
		t.Fatal(err)
	}
	items := s.drain()
	if len(items) != 1 || items[0].payload != "FL UP" {
		t.Fatalf("got %+v, want CV \"FL UP\"", items)
	}
}

func TestDynamicEQReferenceLevelRejectsOffGrid(t *testing.T) {
	s := newTestSession()
	if err := s.DynamicEQReferenceLevel(7); err != avr.ErrOutOfRange {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
	if items := s.drain(); len(items) != 0 {
		t.Fatalf("expected no enqueue for an invalid level, got %+v", items)
	}
}

func TestDynamicEQReferenceLevelAccepted(t *testing.T) {
	s := newTestSession()
	if err := s.DynamicEQReferenceLevel(10); err != nil {
		t.Fatal(err)
	}
	items := s.drain()
	if len(items) != 1 || items[0].payload != "10" {
		t.Fatalf("got %+v", items)
	}
}

// Property 1: encodeStep and parseStep are exact inverses across the
// half-dB grid, over the ranges the protocol actually transmits: a plain
// 0..98 volume (offset 0, always non-negative on the wire) and a
// 50-anchored -12..+12 tone/bias trim (wire value always in 38..62, also
// non-negative).
func TestEncodeParseStepRoundTrip(t *testing.T) {
	for i := 0; i <= 196; i++ {
		v := float64(i) * 0.5
		raw := encodeStep(v, 0)
		got, ok := parseStep(raw, 0)
		if !ok {
			t.Fatalf("offset 0, v %v: parseStep(%q) failed", v, raw)
		}
		if got != v {
			t.Fatalf("offset 0, v %v: round-tripped to %v via %q", v, got, raw)
		}
	}
	for i := -24; i <= 24; i++ {
		v := float64(i) * 0.5
		raw := encodeStep(v, 50)
		got, ok := parseStep(raw, 50)
		if !ok {
			t.Fatalf("offset 50, v %v: parseStep(%q) failed", v, raw)
		}
		if got != v {
			t.Fatalf("offset 50, v %v: round-tripped to %v via %q", v, got, raw)
		}
	}
}

// buildLine depends on avr.NeedsSpace; SSLEV and SSLOC must glue directly
// (no space), matching every other sibling mnemonic's wire form.
func TestSpeakerLevelAndLockGlueWithoutSpace(t *testing.T) {
	s := newTestSession()
	if err := s.SetLevelChannel(avr.ChannelFrontLeft, 2); err != nil {
		t.Fatal(err)
	}
	items := s.drain()
	if len(items) != 1 {
		t.Fatalf("got %+v", items)
	}
	if line := buildLine(items[0]); line != "SSLEVFL 52" {
		t.Fatalf("got %q, want \"SSLEVFL 52\"", line)
	}

	s2 := newTestSession()
	s2.Lock(true)
	items = s2.drain()
	if len(items) != 1 {
		t.Fatalf("got %+v", items)
	}
	if line := buildLine(items[0]); line != "SSLOCON" {
		t.Fatalf("got %q, want \"SSLOCON\"", line)
	}
}

func TestBassTrebleStillGlueWithSpace(t *testing.T) {
	s := newTestSession()
	if err := s.SoundBass(avr.ZoneMain, 0); err != nil {
		t.Fatal(err)
	}
	items := s.drain()
	if len(items) != 1 {
		t.Fatalf("got %+v", items)
	}
	if line := buildLine(items[0]); line != "PSBAS 50" {
		t.Fatalf("got %q, want \"PSBAS 50\"", line)
	}
}
