package utils

import "testing"

func TestToPaise(t *testing.T) {
	if got := ToPaise(500); got != 50000 {
		t.Fatalf("ToPaise(500) = %d, want 50000", got)
	}
	if got := ToPaise(0); got != 0 {
		t.Fatalf("ToPaise(0) = %d, want 0", got)
	}
}

func TestFormatINR(t *testing.T) {
	cases := map[int64]string{
		0:       "Rs 0",
		999:     "Rs 999",
		1000:    "Rs 1,000",
		1250000: "Rs 1,250,000",
		-500:    "-Rs 500",
	}
	for in, want := range cases {
		if got := FormatINR(in); got != want {
			t.Fatalf("FormatINR(%d) = %q, want %q", in, got, want)
		}
	}
}
