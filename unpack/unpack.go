// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: unpack.go — GCT jet capture-block decoding
//
// Purpose:
//   - Turns a capture block payload (little-endian 16-bit bus words) into
//     jet candidates tagged with block, slot index and bunch crossing.
//   - Packs candidates back into bus words for emulator comparisons.
//
// Notes:
//   - One word per slot; slot i becomes capture index i (low 8 bits kept).
//   - A trailing odd byte is not a word and is ignored.
//   - Words are passed through unchanged: no range checks, no masking here.
// ─────────────────────────────────────────────────────────────────────────────

package unpack

import (
	"l1gct/constants"
	"l1gct/jetcand"
	"l1gct/utils"
)

// Header describes one capture block of jet words.
type Header struct {
	Block   uint16 // capture block id
	Bx      int16  // relative bunch crossing of every word in the block
	Tau     bool   // block carries tau jets
	Forward bool   // block carries forward jets
}

// MaxSlots is the number of slots an 8-bit capture index can tell apart.
// Slot MaxSlots reuses index 0.
const MaxSlots = constants.SourceByteMask + 1

// Words returns the number of complete bus words in payload.
//
//go:nosplit
//go:inline
func Words(payload []byte) int { return len(payload) / constants.WordBytes }

// Jets decodes every complete word in payload.
func Jets(payload []byte, h Header) []jetcand.Candidate {
	return AppendJets(make([]jetcand.Candidate, 0, Words(payload)), payload, h)
}

// AppendJets decodes payload and appends the candidates to dst.
// Capture indices restart at 0 for each call.
func AppendJets(dst []jetcand.Candidate, payload []byte, h Header) []jetcand.Candidate {
	n := Words(payload)
	for i := 0; i < n; i++ {
		word := utils.LoadLE16(payload[i*constants.WordBytes:])
		dst = append(dst, jetcand.FromRawSource(word, h.Tau, h.Forward, h.Block, uint16(i), h.Bx))
	}
	return dst
}

// AppendWords writes each candidate's raw word to dst, little-endian.
// Flags and provenance are not part of the bus word and are dropped.
func AppendWords(dst []byte, cands []jetcand.Candidate) []byte {
	for i := range cands {
		dst = utils.AppendLE16(dst, cands[i].Raw())
	}
	return dst
}

// NonEmpty drops empty slots in place, preserving order.
// The returned slice aliases cands.
func NonEmpty(cands []jetcand.Candidate) []jetcand.Candidate {
	out := cands[:0]
	for _, c := range cands {
		if !c.Empty() {
			out = append(out, c)
		}
	}
	return out
}
