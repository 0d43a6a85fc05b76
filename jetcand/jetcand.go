// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: jetcand.go — GCT Level-1 jet candidate record
//
// Purpose:
//   - Immutable value type for one jet candidate as carried on the 16-bit
//     GCT output bus, plus its capture provenance and bunch crossing.
//   - Single packing path shared by emulator-style (rank/eta/phi) and
//     unpacker-style (raw word) construction.
//
// Notes:
//   - Word layout: rank bits 0–5, eta bits 6–9 (bit 9 = sign, 1 = −Z),
//     phi bits 10–14. See package constants.
//   - Oversized inputs are truncated by masking, never rejected. Unpackers
//     rely on this.
//   - Rank 0 marks an empty slot. Empty candidates compare equal to each
//     other whatever their flags, position or provenance.
//   - The zero value Candidate{} is the default (empty) candidate.
//
// ⚠️ All fields are read-only after construction; share copies freely.
// ─────────────────────────────────────────────────────────────────────────────

package jetcand

import (
	"l1gct/constants"
	"l1gct/regionid"
)

// Candidate is a single GCT jet candidate.
type Candidate struct {
	data   uint16 // packed rank/eta/phi word
	source uint16 // capture block (hi byte) and index (lo byte)
	bx     int16  // relative bunch crossing
	isTau  bool
	isFor  bool
}

///////////////////////////////////////////////////////////////////////////////
// Construction
///////////////////////////////////////////////////////////////////////////////

// Pack encodes rank, phi and eta into a jet word.
// Eta arrives pre-encoded: bit 3 is the sign (1 = −Z), bits 0–2 the magnitude.
// Each field is masked to its width before shifting.
//
//go:nosplit
//go:inline
func Pack(rank, phi, eta uint32) uint16 {
	return uint16(rank&constants.RankMask |
		(eta&constants.EtaMask)<<constants.EtaShift |
		(phi&constants.PhiMask)<<constants.PhiShift)
}

// sourceTag folds capture block and index into one 16-bit tag, 8 bits each.
//
//go:nosplit
//go:inline
func sourceTag(block, index uint16) uint16 {
	return (block&constants.SourceByteMask)<<constants.SourceBlockShift | index&constants.SourceByteMask
}

// FromRaw wraps a word taken straight from the bus. Provenance is zero.
//
//go:nosplit
//go:inline
func FromRaw(word uint16, isTau, isForward bool) Candidate {
	return Candidate{data: word, isTau: isTau, isFor: isForward}
}

// FromRawSource wraps a bus word together with the capture block/index it was
// read from and its bunch crossing. Block and index keep their low 8 bits.
//
//go:nosplit
//go:inline
func FromRawSource(word uint16, isTau, isForward bool, block, index uint16, bx int16) Candidate {
	return Candidate{
		data:   word,
		source: sourceTag(block, index),
		bx:     bx,
		isTau:  isTau,
		isFor:  isForward,
	}
}

// New builds a candidate from decoded fields. Provenance is zero.
//
//go:nosplit
//go:inline
func New(rank, phi, eta uint32, isTau, isForward bool) Candidate {
	return FromRaw(Pack(rank, phi, eta), isTau, isForward)
}

// NewWithSource builds a candidate from decoded fields plus provenance.
//
//go:nosplit
//go:inline
func NewWithSource(rank, phi, eta uint32, isTau, isForward bool, block, index uint16, bx int16) Candidate {
	return FromRawSource(Pack(rank, phi, eta), isTau, isForward, block, index, bx)
}

///////////////////////////////////////////////////////////////////////////////
// Word Accessors
///////////////////////////////////////////////////////////////////////////////

// Raw returns the packed jet word.
func (c Candidate) Raw() uint16 { return c.data }

// Rank returns the 6-bit rank.
func (c Candidate) Rank() uint32 { return uint32(c.data) & constants.RankMask }

// EtaIndex returns the 4-bit eta index with the sign in bit 3.
func (c Candidate) EtaIndex() uint32 {
	return uint32(c.data) >> constants.EtaShift & constants.EtaMask
}

// EtaSign returns 1 for −Z, 0 for +Z.
func (c Candidate) EtaSign() uint32 { return uint32(c.data) >> constants.EtaSignShift & 1 }

// EtaMagnitude returns the eta index without its sign bit (0–6 when legal).
func (c Candidate) EtaMagnitude() uint32 { return c.EtaIndex() & constants.EtaMagnitudeMask }

// PhiIndex returns the 5-bit phi index (0–17 when legal).
func (c Candidate) PhiIndex() uint32 {
	return uint32(c.data) >> constants.PhiShift & constants.PhiMask
}

///////////////////////////////////////////////////////////////////////////////
// Category, Provenance & Geometry
///////////////////////////////////////////////////////////////////////////////

// IsCentral reports a jet that is neither tau-tagged nor forward.
func (c Candidate) IsCentral() bool { return !c.isTau && !c.isFor }

// IsTau reports the tau-jet flag.
func (c Candidate) IsTau() bool { return c.isTau }

// IsForward reports the forward-jet flag.
func (c Candidate) IsForward() bool { return c.isFor }

// Category returns "tau", "forward" or "central". Tau wins when a caller
// set both flags.
func (c Candidate) Category() string {
	switch {
	case c.isTau:
		return "tau"
	case c.isFor:
		return "forward"
	}
	return "central"
}

// CapBlock returns the capture block this candidate was read from.
func (c Candidate) CapBlock() uint32 {
	return uint32(c.source) >> constants.SourceBlockShift & constants.SourceByteMask
}

// CapIndex returns the slot within the capture block.
func (c Candidate) CapIndex() uint32 { return uint32(c.source) & constants.SourceByteMask }

// Bx returns the relative bunch crossing.
func (c Candidate) Bx() int16 { return c.bx }

// RegionID maps the candidate onto the standard GCT region grid.
func (c Candidate) RegionID() regionid.ID { return c.RegionIDFrom(regionid.Gct) }

// RegionIDFrom maps the candidate through a caller-supplied geometry.
func (c Candidate) RegionIDFrom(loc regionid.Locator) regionid.ID {
	return loc.Locate(c.EtaIndex(), c.EtaSign(), c.PhiIndex(), c.isFor)
}

// Name returns the object-kind label used in diagnostics.
func (Candidate) Name() string { return constants.JetName }

///////////////////////////////////////////////////////////////////////////////
// Emptiness & Equality
///////////////////////////////////////////////////////////////////////////////

// Empty reports whether the slot holds no candidate (rank 0).
//
//go:nosplit
//go:inline
func (c Candidate) Empty() bool { return c.data&constants.RankMask == 0 }

// Equal compares word and category flags. Two empty candidates are always
// equal; provenance and bunch crossing never take part.
//
//go:nosplit
//go:inline
func (c Candidate) Equal(o Candidate) bool {
	if c.Empty() && o.Empty() {
		return true
	}
	return c.data == o.data && c.isTau == o.isTau && c.isFor == o.isFor
}

// NotEqual is the negation of Equal.
//
//go:nosplit
//go:inline
func (c Candidate) NotEqual(o Candidate) bool { return !c.Equal(o) }
