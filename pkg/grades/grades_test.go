package grades

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw     string
		system  string
		wantErr bool
	}{
		{"6b+", SystemFrench, false},
		{"6B+", SystemFrench, false},
		{"8a", SystemFrench, false},
		{" 7c ", SystemFrench, false},
		{"V5", SystemVScale, false},
		{"v12", SystemVScale, false},
		{"", "", true},
		{"6d", "", true},
		{"hard", "", true},
		{"10a", "", true}, // YDS, not supported
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			g, err := Parse(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err == nil && g.System != tt.system {
				t.Errorf("Parse(%q) system = %s, want %s", tt.raw, g.System, tt.system)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	ordered := []string{"5a", "5c+", "6a", "6a+", "6b", "7a", "8b+"}
	for i := 1; i < len(ordered); i++ {
		lo, _ := Parse(ordered[i-1])
		hi, _ := Parse(ordered[i])
		if c, err := Compare(lo, hi); err != nil || c != -1 {
			t.Errorf("Compare(%s, %s) = %d, %v; want -1", ordered[i-1], ordered[i], c, err)
		}
	}

	a, _ := Parse("6b")
	b, _ := Parse("6B")
	if c, _ := Compare(a, b); c != 0 {
		t.Error("case must not affect ordering")
	}

	f, _ := Parse("7a")
	v, _ := Parse("V7")
	if _, err := Compare(f, v); err == nil {
		t.Error("cross-system comparison must error")
	}
}

func TestHighest(t *testing.T) {
	raws := []string{"6a", "V4", "7b+", "junk", "7b", "V6"}

	g, ok := Highest(raws, SystemFrench)
	if !ok || g.Raw != "7b+" {
		t.Errorf("Highest french = %v, %v; want 7b+", g.Raw, ok)
	}

	g, ok = Highest(raws, SystemVScale)
	if !ok || g.Raw != "V6" {
		t.Errorf("Highest v-scale = %v, %v; want V6", g.Raw, ok)
	}

	if _, ok := Highest([]string{"junk"}, SystemFrench); ok {
		t.Error("no parseable grades should report ok=false")
	}
}
