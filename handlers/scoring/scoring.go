package scoring

import (
	"github.com/molstack/scoreflow/handlers/components"
	"github.com/molstack/scoreflow/handlers/config"
	"github.com/molstack/scoreflow/internal/errors"
	"github.com/molstack/scoreflow/pkg/configs"
	"github.com/molstack/scoreflow/pkg/logger"
	"github.com/molstack/scoreflow/pkg/metrics"
	"github.com/molstack/scoreflow/pkg/vector"
)

var componentProvider *ComponentProviderHandler

func InitScoringHandler(configs *configs.AppConfigs) {
	componentProvider = &ComponentProviderHandler{
		componentMap: make(map[string]components.ScoringComponent),
	}

	// register components declared in the pipeline config map
	componentProvider.RegisterComponents(config.GetPipelineConfigMap())
	logger.Info("Scoring handler initialized")
}

// Score runs every scoring component of the pipeline, in declaration order,
// against the same batch and collects one ResultSet per component. A hard
// failure from any component (a remote rejection) aborts the whole call.
func Score(pipelineConfigId string, smilies []string, headers map[string]string) (map[string]vector.ResultSet, error) {
	conf, err := config.GetPipelineConfig(pipelineConfigId)
	if err != nil {
		return nil, &errors.BadRequestError{ErrorMsg: err.Error()}
	}

	tags := []string{"pipeline-id", pipelineConfigId}
	metrics.Count("scoreflow.score.request.total", 1, tags)
	metrics.Count("scoreflow.score.request.batch.size", int64(len(smilies)), tags)

	results := make(map[string]vector.ResultSet)
	fCompMap := conf.ComponentConfig.FeasibilityComponentConfig
	for _, k := range fCompMap.Keys() {
		componentName := k.(string)
		scoringComponent := componentProvider.GetComponent(componentName)
		if scoringComponent == nil {
			return nil, &errors.RequestError{ErrorMsg: "component not registered: " + componentName}
		}
		resultSet, err := scoringComponent.Score(components.ComponentRequest{
			Smilies:    smilies,
			PipelineId: pipelineConfigId,
			Headers:    headers,
		})
		if err != nil {
			return nil, err
		}
		results[componentName] = resultSet
	}
	return results, nil
}
