package avr_test

import (
	"testing"

	"github.com/hcavr/avrd/avr"
)

func TestLongestMatchPrefersLongerCode(t *testing.T) {
	def, rest, ok := avr.LongestMatch("Z2PSBAS 062")
	if !ok {
		t.Fatal("expected a match")
	}
	if def.Code != "Z2PSBAS" {
		t.Fatalf("got code %q, want Z2PSBAS (not the shorter Z2)", def.Code)
	}
	if rest != " 062" {
		t.Fatalf("got remainder %q, want %q", rest, " 062")
	}
}

func TestLongestMatchNoCandidate(t *testing.T) {
	if _, _, ok := avr.LongestMatch("XYZZY"); ok {
		t.Fatal("expected no match for an unrecognised mnemonic")
	}
}

func TestLookup(t *testing.T) {
	def, ok := avr.Lookup("PW")
	if !ok {
		t.Fatal("expected PW to be catalogued")
	}
	if def.Label != "Main Power" {
		t.Fatalf("got label %q", def.Label)
	}
	if def.Zone != avr.ZoneUndefined {
		t.Fatalf("PW should be zone-undefined, got %v", def.Zone)
	}
}

func TestRefreshFormsExcludesNoRefresh(t *testing.T) {
	forms := avr.RefreshForms()
	seen := make(map[string]bool, len(forms))
	for _, f := range forms {
		seen[f] = true
	}
	for _, code := range []string{"PSTONE", "DASTN", "R1", "R2", "R3"} {
		def, ok := avr.Lookup(code)
		if !ok {
			t.Fatalf("expected %s to be catalogued", code)
		}
		if seen[def.QueryForm] && def.QueryForm != "" {
			t.Errorf("%s is marked NoRefresh but its query form was enqueued", code)
		}
	}
	// PW is refreshable and must appear exactly once.
	count := 0
	for _, f := range forms {
		if f == "PW?" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("PW?'s query form appeared %d times, want exactly 1", count)
	}
}

func TestValidChannel(t *testing.T) {
	if !avr.ValidChannel(avr.ChannelFrontLeft) {
		t.Fatal("FrontLeft should be a valid channel")
	}
	if avr.ValidChannel(avr.Channel("NOPE")) {
		t.Fatal("NOPE should not be a valid channel")
	}
}
