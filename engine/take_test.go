package engine

import "testing"

// fullBank returns a canonical bank with n of each basic color and 5 gold.
func fullBank(n int) TokenBank {
	b := NewTokenBank()
	for _, g := range BasicGems {
		b[g] = n
	}
	b[Gold] = 5
	return b
}

func TestIsValidTokenTake(t *testing.T) {
	tests := []struct {
		name      string
		requested TokenBank
		available TokenBank
		want      bool
	}{
		{
			name:      "three distinct singles",
			requested: TokenBank{Diamond: 1, Sapphire: 1, Emerald: 1},
			available: fullBank(4),
			want:      true,
		},
		{
			name:      "two of one color with four available",
			requested: TokenBank{Diamond: 2},
			available: fullBank(4),
			want:      true,
		},
		{
			name:      "two of one color with only three available",
			requested: TokenBank{Diamond: 2},
			available: func() TokenBank { b := fullBank(4); b[Diamond] = 3; return b }(),
			want:      false,
		},
		{
			name:      "two distinct singles",
			requested: TokenBank{Diamond: 1, Sapphire: 1},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "single token",
			requested: TokenBank{Ruby: 1},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "gold requested",
			requested: TokenBank{Gold: 1},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "gold alongside a legal shape",
			requested: TokenBank{Diamond: 1, Sapphire: 1, Emerald: 1, Gold: 1},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "gold present at zero is ignored",
			requested: TokenBank{Diamond: 1, Sapphire: 1, Emerald: 1, Gold: 0},
			available: fullBank(4),
			want:      true,
		},
		{
			name:      "more than three total",
			requested: TokenBank{Diamond: 2, Sapphire: 1, Emerald: 1},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "three of one color",
			requested: TokenBank{Onyx: 3},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "empty selection",
			requested: TokenBank{},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "all zero selection",
			requested: TokenBank{Diamond: 0, Ruby: 0},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "negative count",
			requested: TokenBank{Diamond: -1, Sapphire: 1, Emerald: 1},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "unknown color in request",
			requested: TokenBank{Gem("amber"): 1, Sapphire: 1, Emerald: 1},
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "distinct single unavailable",
			requested: TokenBank{Diamond: 1, Sapphire: 1, Emerald: 1},
			available: func() TokenBank { b := fullBank(4); b[Emerald] = 0; return b }(),
			want:      false,
		},
		{
			name:      "nil request",
			requested: nil,
			available: fullBank(4),
			want:      false,
		},
		{
			name:      "nil availability",
			requested: TokenBank{Diamond: 2},
			available: nil,
			want:      false,
		},
		{
			name:      "availability missing a color",
			requested: TokenBank{Diamond: 1, Sapphire: 1, Emerald: 1},
			available: func() TokenBank { b := fullBank(4); delete(b, Onyx); return b }(),
			want:      false,
		},
		{
			name:      "availability with negative count",
			requested: TokenBank{Diamond: 1, Sapphire: 1, Emerald: 1},
			available: func() TokenBank { b := fullBank(4); b[Ruby] = -2; return b }(),
			want:      false,
		},
		{
			name:      "availability with unknown color",
			requested: TokenBank{Diamond: 2},
			available: func() TokenBank { b := fullBank(4); b[Gem("amber")] = 1; return b }(),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTokenTake(tt.requested, tt.available); got != tt.want {
				t.Errorf("IsValidTokenTake() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The validator must be pure: repeated calls agree and inputs are untouched.
func TestIsValidTokenTakePure(t *testing.T) {
	requested := TokenBank{Diamond: 1, Sapphire: 1, Emerald: 1}
	available := fullBank(4)

	first := IsValidTokenTake(requested, available)
	second := IsValidTokenTake(requested, available)
	if first != second {
		t.Fatalf("repeated calls disagree: %v then %v", first, second)
	}
	if len(requested) != 3 || requested[Diamond] != 1 {
		t.Errorf("requested bank mutated: %v", requested)
	}
	for _, g := range BasicGems {
		if available[g] != 4 {
			t.Errorf("available[%s] mutated: %d", g, available[g])
		}
	}
}
