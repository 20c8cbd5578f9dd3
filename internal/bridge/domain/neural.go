package domain

import (
	"github.com/brianvoe/gofakeit/v6"
)

func init() {
	register(neural{})
}

// neural models the trend-analysis engine: market direction, confidence and
// risk for a rotating set of verticals.
type neural struct{}

var neuralMarkets = []string{"ecommerce", "ai", "crypto", "fintech", "health"}

func (neural) Name() string     { return "neural" }
func (neural) DefaultPort() int { return 3002 }

func (neural) Snapshot() map[string]any {
	markets := make([]string, len(neuralMarkets))
	copy(markets, neuralMarkets)
	gofakeit.ShuffleStrings(markets)

	return map[string]any{
		"model_version": "v2.1",
		"trend":         gofakeit.RandomString([]string{"upward", "stable", "volatile"}),
		"confidence":    gofakeit.Float64Range(0.7, 0.99),
		"markets":       markets[:3],
		"growth_rate":   gofakeit.Float64Range(5.0, 25.0),
		"risk_level":    gofakeit.RandomString([]string{"low", "medium", "high"}),
	}
}

func (neural) OptimizeMessage() string {
	return "Neural engine retraining scheduled"
}
