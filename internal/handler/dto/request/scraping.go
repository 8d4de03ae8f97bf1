package request

import (
	"creator-market/internal/pkg/patch"
	"creator-market/internal/usecase/commands"
)

type StartScrapingRunRequest struct {
	Keywords   []string `json:"keywords" binding:"required,min=1,max=50,dive,max=100"`
	Location   *string  `json:"location" binding:"omitempty,max=100"`
	MaxResults *int     `json:"max_results" binding:"omitempty,min=1,max=500"`
	BatchSize  *int     `json:"batch_size" binding:"omitempty,min=1"`
}

func (r *StartScrapingRunRequest) ToCommand() commands.StartRunRequest {
	return commands.StartRunRequest{
		Keywords:   r.Keywords,
		Location:   patch.Coalesce(r.Location, ""),
		MaxResults: r.MaxResults,
		BatchSize:  r.BatchSize,
	}
}
