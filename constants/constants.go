// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — GCT jet word layout & region geometry
//
// Purpose:
//   - Defines the 16-bit jet candidate bit layout shared by the record type,
//     the capture-block unpacker and the diagnostic tool.
//   - Defines the coarse calorimeter region grid used by region lookups.
//
// Notes:
//   - The jet word layout is a hardware contract: rank in bits 0–5, eta in
//     bits 6–9 (bit 9 = sign), phi in bits 10–14, bit 15 unused.
//   - Masks are applied before shifts so oversized inputs truncate, never spill.
//
// ⚠️ No runtime logic here; all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Jet Word Layout ─────────────────────────────

const (
	// RankBits is the width of the rank field (bits 0–5).
	RankBits = 6

	// RankMask isolates the rank after shifting. Rank 0 means "no candidate".
	RankMask = 1<<RankBits - 1 // 0x3F

	// EtaShift positions the 4-bit eta index (sign + magnitude) at bit 6.
	EtaShift = RankBits

	// EtaBits is the width of the eta index including its sign bit.
	EtaBits = 4

	// EtaMask isolates the eta index after shifting.
	EtaMask = 1<<EtaBits - 1 // 0xF

	// EtaMagnitudeMask isolates bits 0–2 of the eta index (magnitude 0–6).
	EtaMagnitudeMask = 0x7

	// EtaSignShift is the absolute position of the eta sign bit.
	// 1 = negative Z, 0 = positive Z.
	EtaSignShift = EtaShift + EtaBits - 1 // 9

	// PhiShift positions the 5-bit phi index at bit 10.
	PhiShift = EtaShift + EtaBits // 10

	// PhiBits is the width of the phi field. Legal values are 0–17.
	PhiBits = 5

	// PhiMask isolates the phi index after shifting.
	PhiMask = 1<<PhiBits - 1 // 0x1F

	// WordBytes is the size of one jet word on the capture bus.
	WordBytes = 2
)

// ───────────────────────────── Provenance Tag ──────────────────────────────

const (
	// SourceBlockShift positions the capture block in the upper byte of the source tag.
	SourceBlockShift = 8

	// SourceByteMask truncates capture block and index to 8 bits each.
	SourceByteMask = 0xFF
)

// ───────────────────────────── Region Geometry ─────────────────────────────

const (
	// NumRegionEta is the number of global eta regions (0–21).
	NumRegionEta = 22

	// NumRegionPhi is the number of phi regions (0–17).
	NumRegionPhi = 18

	// RegionFieldMask truncates ieta/iphi to the 5 bits each stored in a region id.
	RegionFieldMask = 0x1F

	// RegionPhiShift positions iphi within a region id.
	RegionPhiShift = 5

	// CentralMinusZEdge is the ieta of the central region at eta -0.
	// Central +Z starts one above it.
	CentralMinusZEdge = 10

	// ForwardMinusZEdge is the ieta of the forward region at eta -0.
	ForwardMinusZEdge = 3

	// ForwardPlusZEdge is the ieta of the forward region at eta +0.
	ForwardPlusZEdge = 18
)

// ───────────────────────────── Labels ──────────────────────────────────────

const (
	// JetName is the fixed object-kind label reported by the jet record.
	JetName = "jet"
)
