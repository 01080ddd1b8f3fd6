package scoring

import "github.com/molstack/scoreflow/pkg/vector"

type ScoreRequest struct {
	PipelineConfigId string   `json:"pipeline_config_id" binding:"required"`
	Smiles           []string `json:"smiles"`
}

// ScoreResponse maps component name to its per-endpoint score arrays.
// Missing predictions serialize as null.
type ScoreResponse struct {
	PipelineConfigId string                      `json:"pipeline_config_id"`
	Scores           map[string]vector.ResultSet `json:"scores"`
}
