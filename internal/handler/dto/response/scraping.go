package response

import (
	"time"

	"creator-market/internal/domain/cooldown"
	"creator-market/internal/domain/scraping"
	"creator-market/internal/usecase/commands"
)

type CooldownResponse struct {
	Engine      string     `json:"engine"`
	Running     bool       `json:"running"`
	EndTime     *time.Time `json:"end_time"`
	RemainingMs int64      `json:"remaining_ms"`
	Remaining   string     `json:"remaining"`
}

type ScrapingRunResponse struct {
	Engine   string           `json:"engine"`
	BatchID  string           `json:"batch_id,omitempty"`
	Accepted int              `json:"accepted"`
	Keywords []string         `json:"keywords"`
	Cooldown CooldownResponse `json:"cooldown"`
}

func FromCooldownView(engine scraping.Engine, v *commands.CooldownView) *CooldownResponse {
	return &CooldownResponse{
		Engine:      engine.String(),
		Running:     v.Running,
		EndTime:     v.EndTime,
		RemainingMs: v.Remaining.Milliseconds(),
		Remaining:   v.Display,
	}
}

// FromStartRunResult reports the cooldown as armed at dispatch time.
func FromStartRunResult(r *commands.StartRunResult) *ScrapingRunResponse {
	end := r.Cooldown.EndTime()
	res := &ScrapingRunResponse{
		Engine:   r.Engine.String(),
		Keywords: r.Params.Keywords,
		Cooldown: CooldownResponse{
			Engine:      r.Engine.String(),
			Running:     true,
			EndTime:     &end,
			RemainingMs: r.Cooldown.Duration().Milliseconds(),
			Remaining:   cooldown.FormatRemaining(r.Cooldown.Duration()),
		},
	}
	if r.Receipt != nil {
		res.BatchID = r.Receipt.BatchID
		res.Accepted = r.Receipt.Accepted
	}
	return res
}
