package dynamiccolor

// TonePolarity describes the direction of the tone difference between the two
// roles of a ToneDeltaPair.
type TonePolarity int

const (
	// PolarityDarker means role A is darker than role B.
	PolarityDarker TonePolarity = iota
	// PolarityLighter means role A is lighter than role B.
	PolarityLighter
	// PolarityNearer means role A is nearer in tone to the background.
	PolarityNearer
	// PolarityFarther means role A is farther in tone from the background.
	PolarityFarther
	// PolarityRelativeDarker means role A is darker in light mode and lighter
	// in dark mode.
	PolarityRelativeDarker
	// PolarityRelativeLighter means role A is lighter in light mode and
	// darker in dark mode.
	PolarityRelativeLighter
)

func (p TonePolarity) String() string {
	switch p {
	case PolarityDarker:
		return "darker"
	case PolarityLighter:
		return "lighter"
	case PolarityNearer:
		return "nearer"
	case PolarityFarther:
		return "farther"
	case PolarityRelativeDarker:
		return "relative_darker"
	case PolarityRelativeLighter:
		return "relative_lighter"
	}
	return "unknown"
}

// DeltaConstraint describes how strictly the delta of a pair is enforced.
type DeltaConstraint int

const (
	// ConstraintExact places the role exactly delta away from its partner.
	ConstraintExact DeltaConstraint = iota
	// ConstraintNearer moves the role no farther than delta from its partner.
	ConstraintNearer
	// ConstraintFarther moves the role at least delta away from its partner.
	ConstraintFarther
)

func (c DeltaConstraint) String() string {
	switch c {
	case ConstraintExact:
		return "exact"
	case ConstraintNearer:
		return "nearer"
	case ConstraintFarther:
		return "farther"
	}
	return "unknown"
}

// ToneDeltaPair requires two roles to keep a tone difference of at least
// Delta, in the direction given by Polarity.
//
// Both roles share the pair; whichever is being resolved treats the other as
// its reference.
type ToneDeltaPair struct {
	RoleA    *DynamicColor
	RoleB    *DynamicColor
	Delta    float64
	Polarity TonePolarity
	// StayTogether moves both roles out of the awkward tone zone together so
	// they never end up on opposite sides of it. Used by the 2021 rules.
	StayTogether bool
	// Constraint is used by the 2025 rules.
	Constraint DeltaConstraint
}

// NewToneDeltaPair creates a pair with an exact delta constraint.
func NewToneDeltaPair(roleA, roleB *DynamicColor, delta float64, polarity TonePolarity, stayTogether bool) *ToneDeltaPair {
	return &ToneDeltaPair{
		RoleA:        roleA,
		RoleB:        roleB,
		Delta:        delta,
		Polarity:     polarity,
		StayTogether: stayTogether,
		Constraint:   ConstraintExact,
	}
}

// NewToneDeltaPairWithConstraint creates a pair with an explicit constraint.
// The roles always stay together.
func NewToneDeltaPairWithConstraint(roleA, roleB *DynamicColor, delta float64, polarity TonePolarity, constraint DeltaConstraint) *ToneDeltaPair {
	return &ToneDeltaPair{
		RoleA:        roleA,
		RoleB:        roleB,
		Delta:        delta,
		Polarity:     polarity,
		StayTogether: true,
		Constraint:   constraint,
	}
}
