package config

import (
	"encoding/json"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

type PipelineConfig struct {
	ConfigMap map[string]Config `json:"pipeline_config_map"`
}

type Config struct {
	ComponentConfig ComponentConfig `json:"component_config"`
}

type ComponentConfig struct {
	ErrorLoggingPercent        int               `json:"error_logging_percent"`
	FeasibilityComponentConfig linkedhashmap.Map `json:"feasibility_components"`
}

// FeasibilityComponentConfig declares one synthetic feasibility scoring
// component. All endpoint parameters are lists because a component can fan
// out to multiple prediction servers; position i of each list describes
// endpoint i. Unset lists fall back to the documented single-endpoint
// defaults at component construction time.
type FeasibilityComponentConfig struct {
	Component      string   `json:"component"`
	ServerURL      []string `json:"server_url"`
	ServerPort     []int    `json:"server_port"`
	ServerEndpoint []string `json:"server_endpoint"`
}

func (c *ComponentConfig) UnmarshalJSON(data []byte) error {
	type Alias ComponentConfig
	aux := &struct {
		ErrorLoggingPercent        int                          `json:"error_logging_percent"`
		FeasibilityComponentConfig []FeasibilityComponentConfig `json:"feasibility_components"`
		*Alias
	}{
		Alias: (*Alias)(c),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	// Initialize the feasibility component linked hashmap.Map fields.
	// Declaration order is preserved because it defines output order.
	feasibilityComponentMap := linkedhashmap.New()
	for _, feasibilityConfig := range aux.FeasibilityComponentConfig {
		feasibilityComponentMap.Put(feasibilityConfig.Component, feasibilityConfig)
	}
	c.FeasibilityComponentConfig = *feasibilityComponentMap
	c.ErrorLoggingPercent = aux.ErrorLoggingPercent
	return nil
}
