package jetcand

import (
	"github.com/sugawarayuuta/sonnet"

	"l1gct/utils"
)

// jsonView is the diagnostic JSON shape of a Candidate.
type jsonView struct {
	Raw      string `json:"raw"`
	Rank     uint32 `json:"rank"`
	EtaIndex uint32 `json:"eta_index"`
	EtaSign  uint32 `json:"eta_sign"`
	Phi      uint32 `json:"phi"`
	Type     string `json:"type"`
	Empty    bool   `json:"empty"`
	CapBlock uint32 `json:"cap_block"`
	CapIndex uint32 `json:"cap_index"`
	Bx       int16  `json:"bx"`
}

// MarshalJSON renders the decoded fields alongside the raw word ("0x0041").
// Output only; the bus word is the sole wire format.
func (c Candidate) MarshalJSON() ([]byte, error) {
	var raw [6]byte
	return sonnet.Marshal(jsonView{
		Raw:      string(utils.AppendHex(raw[:0], uint64(c.data), 4)),
		Rank:     c.Rank(),
		EtaIndex: c.EtaIndex(),
		EtaSign:  c.EtaSign(),
		Phi:      c.PhiIndex(),
		Type:     c.Category(),
		Empty:    c.Empty(),
		CapBlock: c.CapBlock(),
		CapIndex: c.CapIndex(),
		Bx:       c.bx,
	})
}
