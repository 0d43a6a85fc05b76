// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: regionid.go — calorimeter trigger region identifiers
//
// Purpose:
//   - Packs a (global eta, phi) region coordinate into a single word.
//   - Provides the Locator collaborator that turns a GCT jet's eta/phi
//     indices into a region on the 22 × 18 trigger grid.
//
// Notes:
//   - Global eta runs 0–21: 0–3 forward −Z, 4–10 central −Z, 11–17 central +Z,
//     18–21 forward +Z. Phi runs 0–17.
//   - Fields are masked to 5 bits on construction; no range validation.
// ─────────────────────────────────────────────────────────────────────────────

package regionid

import (
	"l1gct/constants"
	"l1gct/utils"
)

// ID identifies one calorimeter trigger region.
// Bits 0–4 hold global eta, bits 5–9 hold phi.
type ID uint32

// New builds a region id from global eta and phi, truncating each to 5 bits.
//
//go:nosplit
//go:inline
func New(ieta, iphi uint32) ID {
	return ID(ieta&constants.RegionFieldMask | (iphi&constants.RegionFieldMask)<<constants.RegionPhiShift)
}

// Raw returns the packed identifier.
func (id ID) Raw() uint32 { return uint32(id) }

// IEta returns the global eta index (0–21).
func (id ID) IEta() uint32 { return uint32(id) & constants.RegionFieldMask }

// IPhi returns the phi index (0–17).
func (id ID) IPhi() uint32 { return uint32(id) >> constants.RegionPhiShift & constants.RegionFieldMask }

// IsHF reports whether the region lies in the forward calorimeter.
func (id ID) IsHF() bool {
	ieta := id.IEta()
	return ieta <= constants.ForwardMinusZEdge || ieta >= constants.ForwardPlusZEdge
}

// IsMinusZ reports whether the region lies on the negative-Z side.
func (id ID) IsMinusZ() bool { return id.IEta() <= constants.CentralMinusZEdge }

// RctEta returns the eta position counted outward from the detector centre
// on the region's own side (0 = innermost).
func (id ID) RctEta() uint32 {
	ieta := id.IEta()
	if ieta <= constants.CentralMinusZEdge {
		return constants.CentralMinusZEdge - ieta
	}
	return ieta - constants.CentralMinusZEdge - 1
}

// AppendText appends "region(ieta=N, iphi=M)" to dst.
func (id ID) AppendText(dst []byte) []byte {
	dst = append(dst, "region(ieta="...)
	dst = utils.AppendUint(dst, uint64(id.IEta()))
	dst = append(dst, ", iphi="...)
	dst = utils.AppendUint(dst, uint64(id.IPhi()))
	return append(dst, ')')
}

// String implements fmt.Stringer.
func (id ID) String() string {
	var buf [32]byte
	return string(id.AppendText(buf[:0]))
}

///////////////////////////////////////////////////////////////////////////////
// Region Lookup
///////////////////////////////////////////////////////////////////////////////

// Locator maps decoded GCT jet coordinates onto a region.
//
// etaIndex is the full 4-bit eta value (sign in bit 3), etaSign is that
// sign bit on its own (1 = −Z), phiIndex is the 5-bit phi value.
type Locator interface {
	Locate(etaIndex, etaSign, phiIndex uint32, forward bool) ID
}

// GctLocator is the standard GCT geometry: central and tau jets cover ieta
// 4–17, forward jets cover ieta 0–3 and 18–21.
type GctLocator struct{}

// Locate implements Locator.
//
//go:nosplit
//go:inline
func (GctLocator) Locate(etaIndex, etaSign, phiIndex uint32, forward bool) ID {
	mag := etaIndex & constants.EtaMagnitudeMask
	var ieta uint32
	switch {
	case !forward && etaSign == 1:
		ieta = constants.CentralMinusZEdge - mag
	case !forward:
		ieta = constants.CentralMinusZEdge + 1 + mag
	case etaSign == 1:
		ieta = constants.ForwardMinusZEdge - mag
	default:
		ieta = constants.ForwardPlusZEdge + mag
	}
	return New(ieta, phiIndex)
}

// Gct is the shared default locator.
var Gct Locator = GctLocator{}
