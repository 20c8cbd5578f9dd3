package domain

import (
	"github.com/brianvoe/gofakeit/v6"
)

func init() {
	register(affiliate{})
}

// affiliate models the campaign/offer side: active offers, commission and
// payout figures.
type affiliate struct{}

func (affiliate) Name() string     { return "affiliate" }
func (affiliate) DefaultPort() int { return 3003 }

func (affiliate) Snapshot() map[string]any {
	return map[string]any{
		"active_offers":    gofakeit.Number(3, 12),
		"active_campaigns": gofakeit.Number(1, 8),
		"avg_commission":   gofakeit.Float64Range(12.0, 20.0),
		"top_payout":       gofakeit.Float64Range(18.5, 35.0),
		"conversions":      gofakeit.Number(50, 500),
		"top_category": gofakeit.RandomString([]string{
			"technology", "health", "services",
		}),
	}
}

func (affiliate) OptimizeMessage() string {
	return "Affiliate campaign optimization triggered"
}
