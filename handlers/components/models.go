package components

import (
	"github.com/molstack/scoreflow/pkg/vector"
)

// ComponentRequest carries one scoring batch through a component. Smilies
// holds the canonical structure strings in submission order; that order
// defines the order of every ScoreVector a component produces.
type ComponentRequest struct {
	Smilies    []string
	PipelineId string
	Headers    map[string]string
}

// ScoringComponent is one registered scoring plugin. Score returns one
// ScoreVector per configured endpoint, each of length len(request.Smilies).
type ScoringComponent interface {
	GetComponentName() string
	Score(request ComponentRequest) (vector.ResultSet, error)
}
