package streak

// Type classifies a streak by its length.
type Type string

const (
	TypeSingle  Type = "single"
	TypeFour    Type = "four"
	TypePerfect Type = "perfect"
	TypeNine    Type = "nine"
	TypeOther   Type = "other"
)

// DisplayName returns a human-readable label for the streak type.
func (t Type) DisplayName() string {
	switch t {
	case TypeSingle:
		return "One Day Streak"
	case TypeFour:
		return "Four Day Streak"
	case TypePerfect:
		return "Perfect Week"
	case TypeNine:
		return "Nine Day Streak"
	default:
		return "Streak"
	}
}

// Variant is the visual treatment assigned to one calendar or weekday cell.
type Variant string

const (
	VariantPlain            Variant = "plain"
	VariantCheck            Variant = "check"
	VariantCheckHighlighted Variant = "checkHighlighted"
	VariantFlame            Variant = "flame"
	VariantFlameHighlighted Variant = "flameHighlighted"
)

// IsPlain reports whether no activity is recorded.
func (v Variant) IsPlain() bool {
	return v == VariantPlain || v == ""
}

// IsCheck reports whether v is an ordinary completion.
func (v Variant) IsCheck() bool {
	return v == VariantCheck || v == VariantCheckHighlighted
}

// IsFlame reports whether v is a completion inside a perfect-week context.
func (v Variant) IsFlame() bool {
	return v == VariantFlame || v == VariantFlameHighlighted
}

// IsHighlighted reports whether v marks the single emphasized day.
func (v Variant) IsHighlighted() bool {
	return v == VariantCheckHighlighted || v == VariantFlameHighlighted
}
