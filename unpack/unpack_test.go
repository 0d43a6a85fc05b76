package unpack

import (
	"bytes"
	"testing"

	"l1gct/jetcand"
)

// ============================================================================
// TEST DATA
// ============================================================================

// three slots: rank-1 jet, empty slot, rank-12 jet; plus one stray byte
var samplePayload = []byte{0x41, 0x00, 0x00, 0x00, 0xCC, 0x1E, 0xFF}

// ============================================================================
// DECODE TESTS
// ============================================================================

func TestJets_DecodesSlots(t *testing.T) {
	h := Header{Block: 0x58, Bx: -2, Tau: true}
	cands := Jets(samplePayload, h)

	if len(cands) != 3 {
		t.Fatalf("decoded %d candidates, want 3", len(cands))
	}

	wantRaw := []uint16{0x0041, 0x0000, 0x1ECC}
	for i, c := range cands {
		if c.Raw() != wantRaw[i] {
			t.Errorf("slot %d: Raw() = %#04x, want %#04x", i, c.Raw(), wantRaw[i])
		}
		if c.CapIndex() != uint32(i) || c.CapBlock() != 0x58 || c.Bx() != -2 {
			t.Errorf("slot %d: provenance block=%#x index=%d bx=%d", i, c.CapBlock(), c.CapIndex(), c.Bx())
		}
		if !c.IsTau() || c.IsForward() {
			t.Errorf("slot %d: flags not copied from header", i)
		}
	}

	if !cands[1].Empty() {
		t.Error("slot 1 should be empty")
	}
	if cands[2].Rank() != 12 || cands[2].EtaIndex() != 0b1011 || cands[2].PhiIndex() != 7 {
		t.Errorf("slot 2 decoded as %v", cands[2])
	}
}

func TestJets_ShortPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    int
	}{
		{"nil", nil, 0},
		{"one_byte", []byte{0x41}, 0},
		{"one_word", []byte{0x41, 0x00}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Jets(tt.payload, Header{})); got != tt.want {
				t.Errorf("len(Jets) = %d, want %d", got, tt.want)
			}
			if got := Words(tt.payload); got != tt.want {
				t.Errorf("Words() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestJets_IndexWrapsAtEightBits(t *testing.T) {
	payload := make([]byte, 300*2)
	cands := Jets(payload, Header{Block: 1})
	if cands[255].CapIndex() != 255 {
		t.Errorf("slot 255 index = %d", cands[255].CapIndex())
	}
	if cands[256].CapIndex() != 0 || cands[299].CapIndex() != 43 {
		t.Errorf("slot 256/299 index = %d/%d, want 0/43", cands[256].CapIndex(), cands[299].CapIndex())
	}
}

func TestAppendJets_KeepsExisting(t *testing.T) {
	prev := []jetcand.Candidate{jetcand.FromRaw(0x0002, false, true)}
	out := AppendJets(prev, samplePayload[:2], Header{Forward: true})
	if len(out) != 2 || out[0].Raw() != 0x0002 || out[1].Raw() != 0x0041 {
		t.Errorf("AppendJets = %v", out)
	}
	if out[1].CapIndex() != 0 {
		t.Errorf("capture index should restart at 0, got %d", out[1].CapIndex())
	}
}

// ============================================================================
// ENCODE TESTS
// ============================================================================

func TestAppendWords_RoundTrip(t *testing.T) {
	h := Header{Block: 3, Bx: 1, Forward: true}
	cands := Jets(samplePayload, h)

	words := AppendWords(nil, cands)
	if !bytes.Equal(words, samplePayload[:6]) {
		t.Errorf("AppendWords = % x, want % x", words, samplePayload[:6])
	}

	again := Jets(words, h)
	for i := range cands {
		if cands[i] != again[i] {
			t.Errorf("slot %d: %v != %v after round trip", i, cands[i], again[i])
		}
	}
}

func TestAppendWords_FromEmulator(t *testing.T) {
	cands := []jetcand.Candidate{
		jetcand.New(12, 7, 0b1011, false, false),
		jetcand.New(1, 0, 1, false, false),
	}
	got := AppendWords([]byte{0xAA}, cands)
	want := []byte{0xAA, 0xCC, 0x1E, 0x41, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendWords = % x, want % x", got, want)
	}
}

// ============================================================================
// FILTER TESTS
// ============================================================================

func TestNonEmpty(t *testing.T) {
	cands := Jets(samplePayload, Header{})
	kept := NonEmpty(cands)

	if len(kept) != 2 {
		t.Fatalf("kept %d, want 2", len(kept))
	}
	if kept[0].CapIndex() != 0 || kept[1].CapIndex() != 2 {
		t.Errorf("order not preserved: indices %d, %d", kept[0].CapIndex(), kept[1].CapIndex())
	}
	if len(NonEmpty(nil)) != 0 {
		t.Error("NonEmpty(nil) should be empty")
	}
}

// ============================================================================
// ALLOCATION TESTS
// ============================================================================

func TestAppendJets_ZeroAllocationWithCapacity(t *testing.T) {
	dst := make([]jetcand.Candidate, 0, 8)
	h := Header{Block: 0x58}

	allocs := testing.AllocsPerRun(1000, func() {
		dst = AppendJets(dst[:0], samplePayload, h)
	})
	if allocs > 0 {
		t.Errorf("AppendJets allocated with spare capacity: %f allocs/op", allocs)
	}
}
