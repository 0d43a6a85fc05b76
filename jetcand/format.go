package jetcand

import "l1gct/utils"

// AppendText appends a one-line diagnostic rendering of c to dst.
//
//	jet: rank=12 eta=3 sign=1 phi=7 type=tau | cap block=0x58 index=2 bx=-1
//	jet: empty | cap block=0x00 index=0 bx=0
//
// The layout is for humans; nothing parses it.
func (c Candidate) AppendText(dst []byte) []byte {
	dst = append(dst, c.Name()...)
	if c.Empty() {
		dst = append(dst, ": empty"...)
	} else {
		dst = append(dst, ": rank="...)
		dst = utils.AppendUint(dst, uint64(c.Rank()))
		dst = append(dst, " eta="...)
		dst = utils.AppendUint(dst, uint64(c.EtaMagnitude()))
		dst = append(dst, " sign="...)
		dst = utils.AppendUint(dst, uint64(c.EtaSign()))
		dst = append(dst, " phi="...)
		dst = utils.AppendUint(dst, uint64(c.PhiIndex()))
		dst = append(dst, " type="...)
		dst = append(dst, c.Category()...)
	}
	dst = append(dst, " | cap block="...)
	dst = utils.AppendHex(dst, uint64(c.CapBlock()), 2)
	dst = append(dst, " index="...)
	dst = utils.AppendUint(dst, uint64(c.CapIndex()))
	dst = append(dst, " bx="...)
	return utils.AppendInt(dst, int64(c.bx))
}

// String implements fmt.Stringer.
func (c Candidate) String() string {
	var buf [96]byte
	return string(c.AppendText(buf[:0]))
}
