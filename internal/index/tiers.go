package index

// Tier is one rule of a tier table: fire when the observed value crosses
// Threshold, contributing Points and a status label.
type Tier struct {
	Threshold float64
	Points    int
	Label     string
}

// TierTable is an ordered rule set, highest threshold first. First match
// wins, so a value never collects points from more than one tier.
type TierTable []Tier

// Match returns the first tier whose threshold the value exceeds.
func (t TierTable) Match(value float64) (Tier, bool) {
	for _, tier := range t {
		if value > tier.Threshold {
			return tier, true
		}
	}
	return Tier{}, false
}

// MatchBelow returns the first tier the value falls under. Used by the
// distraction metric, whose table is inverted: lower observed interest
// scores higher. Tables used with MatchBelow are ordered lowest first.
func (t TierTable) MatchBelow(value float64) (Tier, bool) {
	for _, tier := range t {
		if value < tier.Threshold {
			return tier, true
		}
	}
	return Tier{}, false
}
