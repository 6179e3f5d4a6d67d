package fantasy

import "testing"

func TestPercent(t *testing.T) {
	if got := PercentOf(0.0525).String(); got != "5.25%" {
		t.Errorf("String() = %q, want %q", got, "5.25%")
	}
	if got := PercentOf(-0.1).String(); got != "-10.00%" {
		t.Errorf("String() = %q, want %q", got, "-10.00%")
	}

	tests := []struct {
		p    Percent
		want string
	}{
		{PercentOf(0.1), "+10.00%"},
		{PercentOf(-0.1), "-10.00%"},
		{0, "-"},
	}
	for _, tt := range tests {
		if got := tt.p.SignedString(); got != tt.want {
			t.Errorf("SignedString(%v) = %q, want %q", float64(tt.p), got, tt.want)
		}
	}

	if !PercentOf(0.1).Equal(Percent(10.00000001)) {
		t.Error("Equal() should tolerate sub-precision noise")
	}
	if PercentOf(0.1).Equal(Percent(10.1)) {
		t.Error("Equal() accepted a real difference")
	}
}
