package streak

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		day     int
		perfect []int
		want    Variant
	}{
		{"single", TypeSingle, 1, nil, VariantCheckHighlighted},
		{"four last", TypeFour, 4, nil, VariantCheckHighlighted},
		{"four middle", TypeFour, 2, nil, VariantCheck},
		{"perfect closing day", TypePerfect, 7, []int{7}, VariantFlameHighlighted},
		{"perfect ordinary day", TypePerfect, 3, []int{7}, VariantFlame},
		{"perfect week day not last", TypePerfect, 7, []int{7, 14}, VariantFlame},
		{"perfect without week days", TypePerfect, 7, nil, VariantFlame},
		{"nine last", TypeNine, 9, []int{7}, VariantCheckHighlighted},
		{"nine eighth", TypeNine, 8, []int{7}, VariantCheck},
		{"nine first week", TypeNine, 3, []int{7}, VariantFlame},
		{"nine seventh", TypeNine, 7, []int{7}, VariantFlame},
		{"other", TypeOther, 5, nil, VariantCheck},
		{"other on week boundary", TypeOther, 14, []int{7, 14}, VariantCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.typ, tt.day, tt.perfect)
			if got != tt.want {
				t.Errorf("Resolve(%q, %d, %v) = %q, want %q", tt.typ, tt.day, tt.perfect, got, tt.want)
			}
		})
	}
}

func TestVariantPredicates(t *testing.T) {
	tests := []struct {
		v                         Variant
		plain, check, flame, high bool
	}{
		{VariantPlain, true, false, false, false},
		{VariantCheck, false, true, false, false},
		{VariantCheckHighlighted, false, true, false, true},
		{VariantFlame, false, false, true, false},
		{VariantFlameHighlighted, false, false, true, true},
	}

	for _, tt := range tests {
		if tt.v.IsPlain() != tt.plain || tt.v.IsCheck() != tt.check ||
			tt.v.IsFlame() != tt.flame || tt.v.IsHighlighted() != tt.high {
			t.Errorf("predicates for %q do not match", tt.v)
		}
	}
}
