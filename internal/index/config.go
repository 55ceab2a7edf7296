package index

import "time"

// Instrument is one quote feed scored inside the economy metric.
// Falling instruments fire when the deviation drops below -Threshold;
// rising ones when it climbs above +Threshold.
type Instrument struct {
	Key     string
	Symbol  string
	Label   string
	Falling bool
	Tiers   TierTable
}

type EconomyConfig struct {
	Instruments []Instrument

	DebtQuery    string
	DebtKeywords []string
	DebtBaseline float64
	DebtTiers    TierTable

	StableSummary string
	Quote         string
}

type IncivilityConfig struct {
	Query    string
	Keywords []string
	Baseline float64
	Tiers    TierTable
	Quote    string
}

type DiscourseConfig struct {
	Query     string
	Community string
	Keywords  []string
	// Labels thresholds on the direct article count, highest first.
	Labels TierTable
	Quote  string
}

type DistractionConfig struct {
	Article          string
	NewsQuery        string
	NewsKeyword      string
	PageviewFallback int
	MentionsFallback int
	DailyBaseline    float64
	// Inverted table, matched with MatchBelow: less interest, more points.
	Tiers TierTable
	Quote string
}

type BlackoutConfig struct {
	RestDay    time.Weekday
	EveDay     time.Weekday
	CutoffHour int
	RestReason string
}

// Config carries every baseline, tier table, keyword list, and query the
// engine scores against. The values are editorial constants, not derived;
// they live here so tests can exercise tier boundaries directly.
type Config struct {
	Economy     EconomyConfig
	Incivility  IncivilityConfig
	Discourse   DiscourseConfig
	Distraction DistractionConfig
	Blackout    BlackoutConfig

	UpdateInterval time.Duration
}

// DefaultConfig returns the authoritative constants. See DESIGN.md for the
// provenance of each table.
func DefaultConfig() Config {
	return Config{
		Economy: EconomyConfig{
			Instruments: []Instrument{
				{
					Key: "sp500", Symbol: "^GSPC", Label: "S&P", Falling: true,
					Tiers: TierTable{{Threshold: 4, Points: 6}, {Threshold: 2, Points: 3}},
				},
				{
					Key: "usdils", Symbol: "ILS=X", Label: "USD/ILS", Falling: false,
					Tiers: TierTable{{Threshold: 3, Points: 5}, {Threshold: 1.5, Points: 2}},
				},
				{
					Key: "bitcoin", Symbol: "BTC-USD", Label: "BTC", Falling: false,
					Tiers: TierTable{{Threshold: 10, Points: 4}},
				},
				{
					Key: "gold", Symbol: "GC=F", Label: "Gold", Falling: false,
					Tiers: TierTable{{Threshold: 4, Points: 3}},
				},
				{
					Key: "ta35", Symbol: "^TA35.TA", Label: "TA-35", Falling: true,
					Tiers: TierTable{{Threshold: 3, Points: 5}},
				},
			},
			DebtQuery:    "חובות OR פשיטת רגל OR עיקול",
			DebtKeywords: []string{"חוב", "חובות", "פשיטת רגל", "הלוואה", "עיקול"},
			DebtBaseline: 15,
			DebtTiers: TierTable{
				{Threshold: 150, Points: 4, Label: "debt news surge"},
				{Threshold: 120, Points: 2, Label: "debt news rising"},
			},
			StableSummary: "economic stability",
			Quote:         "עד שתכלה פרוטה מן הכיס",
		},
		Incivility: IncivilityConfig{
			Query:    "אלימות OR שוד OR פשע OR תקיפה",
			Keywords: []string{"אלימות", "תקיפה", "שוד", "גניבה", "רצח", "פשע", "נעצר"},
			Baseline: 20,
			Tiers: TierTable{
				{Threshold: 150, Points: 20, Label: "extreme level"},
				{Threshold: 120, Points: 12, Label: "elevated level"},
				{Threshold: 100, Points: 6, Label: "above average"},
			},
			Quote: "חוצפה יסגא",
		},
		Discourse: DiscourseConfig{
			Query:     "חרדים ביקורת OR חרדים מחאה OR חרדים קיטוב",
			Community: "חרדים",
			Keywords:  []string{"ביקורת", "מחאה", "סכסוך", "קיטוב", "עימות", "משבר"},
			Labels: TierTable{
				{Threshold: 17, Label: "intense criticism"},
				{Threshold: 11, Label: "sharp criticism"},
				{Threshold: 6, Label: "significant criticism"},
				{Threshold: 2, Label: "mild criticism"},
				{Threshold: -1, Label: "relatively quiet"},
			},
			Quote: "חכמת חכמים תסרח",
		},
		Distraction: DistractionConfig{
			Article:          "משיח",
			NewsQuery:        "משיח OR גאולה",
			NewsKeyword:      "משיח",
			PageviewFallback: 80,
			MentionsFallback: 10,
			DailyBaseline:    90,
			Tiers: TierTable{
				{Threshold: 40, Points: 20, Label: "total distraction"},
				{Threshold: 60, Points: 14, Label: "severe distraction"},
				{Threshold: 80, Points: 8, Label: "low interest"},
				{Threshold: 100, Points: 4, Label: "near average"},
			},
			Quote: "אין בן דוד בא אלא בהיסח הדעת",
		},
		Blackout: BlackoutConfig{
			RestDay:    time.Saturday,
			EveDay:     time.Friday,
			CutoffHour: 15,
			RestReason: "Shabbat Shalom",
		},
		UpdateInterval: 10 * time.Minute,
	}
}
