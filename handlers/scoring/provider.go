package scoring

import (
	"sync"

	"github.com/molstack/scoreflow/handlers/components"
	"github.com/molstack/scoreflow/handlers/config"
)

type ComponentProviderHandler struct {
	componentMap map[string]components.ScoringComponent
	mapMutex     sync.RWMutex // To synchronize access to the map
}

func (cp *ComponentProviderHandler) RegisterComponents(pipelineConfig *config.PipelineConfig) {

	cp.mapMutex.Lock() // Lock for write access
	defer cp.mapMutex.Unlock()

	if pipelineConfig == nil || len(pipelineConfig.ConfigMap) == 0 {
		return
	}
	for _, value := range pipelineConfig.ConfigMap {
		componentConfig := value.ComponentConfig

		// populate synthetic feasibility components
		fCompMap := componentConfig.FeasibilityComponentConfig
		if fCompMap.Size() > 0 {
			for _, k := range fCompMap.Keys() {
				v, ok := fCompMap.Get(k)
				if !ok {
					continue
				}
				feasibilityConfig, ok := v.(config.FeasibilityComponentConfig)
				if !ok {
					continue
				}
				cp.componentMap[k.(string)] = components.NewSyntheticFeasibilityComponent(
					feasibilityConfig, componentConfig.ErrorLoggingPercent)
			}
		}
	}
}

func (cp *ComponentProviderHandler) GetComponent(componentName string) components.ScoringComponent {
	cp.mapMutex.RLock() // Lock for read access
	defer cp.mapMutex.RUnlock()
	return cp.componentMap[componentName]
}
