package jetcand

import (
	"strings"
	"testing"

	"github.com/sugawarayuuta/sonnet"
)

// ============================================================================
// TEXT RENDERING TESTS
// ============================================================================

func TestString(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		want string
	}{
		{
			name: "tau_minus_z",
			c:    NewWithSource(12, 7, 0b1011, true, false, 0x58, 2, -1),
			want: "jet: rank=12 eta=3 sign=1 phi=7 type=tau | cap block=0x58 index=2 bx=-1",
		},
		{
			name: "forward_plus_z",
			c:    New(1, 0, 0, false, true),
			want: "jet: rank=1 eta=0 sign=0 phi=0 type=forward | cap block=0x00 index=0 bx=0",
		},
		{
			name: "central",
			c:    FromRawSource(0x0041, false, false, 300, 37, 7),
			want: "jet: rank=1 eta=1 sign=0 phi=0 type=central | cap block=0x2c index=37 bx=7",
		},
		{
			name: "empty_default",
			c:    Candidate{},
			want: "jet: empty | cap block=0x00 index=0 bx=0",
		},
		{
			name: "empty_keeps_provenance",
			c:    FromRawSource(0x7FC0, true, false, 0xAB, 4, -3),
			want: "jet: empty | cap block=0xab index=4 bx=-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String()\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestAppendText_AppendsToPrefix(t *testing.T) {
	c := FromRaw(0x0041, true, false)
	got := string(c.AppendText([]byte("0x0041 ")))
	if !strings.HasPrefix(got, "0x0041 jet: rank=1") {
		t.Errorf("AppendText dropped prefix: %q", got)
	}
}

func TestAppendText_ZeroAllocation(t *testing.T) {
	c := NewWithSource(63, 17, 0b1110, false, true, 0xFF, 0xFF, -32768)
	buf := make([]byte, 0, 128)

	allocs := testing.AllocsPerRun(1000, func() {
		buf = c.AppendText(buf[:0])
	})
	if allocs > 0 {
		t.Errorf("AppendText() allocated: %f allocs/op", allocs)
	}
}

// ============================================================================
// JSON RENDERING TESTS
// ============================================================================

func TestMarshalJSON(t *testing.T) {
	c := NewWithSource(12, 7, 0b1011, true, false, 0x58, 2, -1)
	js, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got map[string]any
	if err := sonnet.Unmarshal(js, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, js)
	}

	want := map[string]any{
		"raw":       "0x1ecc",
		"rank":      float64(12),
		"eta_index": float64(11),
		"eta_sign":  float64(1),
		"phi":       float64(7),
		"type":      "tau",
		"empty":     false,
		"cap_block": float64(0x58),
		"cap_index": float64(2),
		"bx":        float64(-1),
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v (%T), want %v", k, got[k], got[k], v)
		}
	}
	if len(got) != len(want) {
		t.Errorf("unexpected field count %d: %s", len(got), js)
	}
}

func TestMarshalJSON_Empty(t *testing.T) {
	js, err := Candidate{}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var got struct {
		Raw   string `json:"raw"`
		Empty bool   `json:"empty"`
		Type  string `json:"type"`
	}
	if err := sonnet.Unmarshal(js, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Raw != "0x0000" || !got.Empty || got.Type != "central" {
		t.Errorf("empty candidate rendered as %+v", got)
	}
}
