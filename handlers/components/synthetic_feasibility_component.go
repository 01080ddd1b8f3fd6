package components

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/molstack/scoreflow/handlers/config"
	"github.com/molstack/scoreflow/handlers/external/feasibility"
	"github.com/molstack/scoreflow/internal/errors"
	"github.com/molstack/scoreflow/pkg/logger"
	"github.com/molstack/scoreflow/pkg/metrics"
	"github.com/molstack/scoreflow/pkg/vector"
)

var feasibilityMetricTags = []string{"ext-service:synthetic_feasibility"}

// SyntheticFeasibilityComponent scores a batch of molecules against one or
// more remote synthetic feasibility prediction servers. Endpoints are bound
// once at construction and queried in configuration order on every call.
type SyntheticFeasibilityComponent struct {
	ComponentName     string
	clients           []feasibility.FeasibilityClient
	errLoggingPercent int
}

func NewSyntheticFeasibilityComponent(conf config.FeasibilityComponentConfig, errLoggingPercent int) *SyntheticFeasibilityComponent {
	endpoints := BindEndpointConfigs(conf)
	clients := make([]feasibility.FeasibilityClient, 0, len(endpoints))
	for _, endpointConf := range endpoints {
		clients = append(clients, feasibility.GetFeasibilityClient(1, endpointConf))
	}
	return &SyntheticFeasibilityComponent{
		ComponentName:     conf.Component,
		clients:           clients,
		errLoggingPercent: errLoggingPercent,
	}
}

// BindEndpointConfigs zips the parallel parameter lists into one endpoint
// config per position. A wholly unset list falls back to a single-element
// default list (http://localhost, 5000, synthetic_feasibility_surrogate).
// The lists are expected to be equal length; when they are not, zipping
// truncates to the shortest list rather than failing.
func BindEndpointConfigs(conf config.FeasibilityComponentConfig) []feasibility.ClientConfig {
	urls := conf.ServerURL
	if len(urls) == 0 {
		urls = []string{feasibility.DefaultServerURL}
	}
	ports := conf.ServerPort
	if len(ports) == 0 {
		ports = []int{feasibility.DefaultServerPort}
	}
	paths := conf.ServerEndpoint
	if len(paths) == 0 {
		paths = []string{feasibility.DefaultServerEndpoint}
	}

	count := len(urls)
	if len(ports) < count {
		count = len(ports)
	}
	if len(paths) < count {
		count = len(paths)
	}

	endpoints := make([]feasibility.ClientConfig, 0, count)
	for i := 0; i < count; i++ {
		endpoints = append(endpoints, feasibility.ClientConfig{
			ServerURL:      urls[i],
			ServerPort:     ports[i],
			ServerEndpoint: paths[i],
		})
	}
	return endpoints
}

func (fComponent *SyntheticFeasibilityComponent) GetComponentName() string {
	return fComponent.ComponentName
}

// Score queries every configured endpoint with the full batch, sequentially
// in configuration order, and returns one ScoreVector per endpoint.
//
// Failure policy:
//   - transport error (connection refused, timeout, DNS): that endpoint's
//     vector is all-missing, the remaining endpoints still run
//   - non-200 status: the whole call fails with a RemoteRejectionError and
//     no ResultSet is returned, including for endpoints not yet queried
//   - malformed response body: missing slots in that endpoint's vector only
func (fComponent *SyntheticFeasibilityComponent) Score(request ComponentRequest) (vector.ResultSet, error) {
	metricTags := []string{pipelineId, request.PipelineId, component, fComponent.ComponentName}
	t := time.Now()
	metrics.Count("scoreflow.component.execution.total", 1, metricTags)

	scores := make(vector.ResultSet, 0, len(fComponent.clients))
	for _, client := range fComponent.clients {
		endpointTags := append([]string{endpoint, client.Address()}, feasibilityMetricTags...)
		endpointTags = append(endpointTags, metricTags...)

		t1 := time.Now()
		metrics.Count("scoreflow.external.api.request.total", 1, endpointTags)
		body, err := client.Predict(request.Smilies)
		metrics.Timing("scoreflow.external.api.request.latency", time.Since(t1), endpointTags)

		if err != nil {
			var rejection *errors.RemoteRejectionError
			if stderrors.As(err, &rejection) {
				metrics.Count("scoreflow.component.execution.error", 1, append(endpointTags, errorType, feasibilityApiError))
				logger.Error(fmt.Sprintf("Feasibility endpoint %s rejected the request for component %s", client.Address(), fComponent.ComponentName), err)
				metrics.Timing("scoreflow.component.execution.latency", time.Since(t), metricTags)
				return nil, err
			}
			// If the request fails at the transport level, return the
			// missing sentinel for all molecules of this endpoint.
			logger.PercentError(fmt.Sprintf("Error getting feasibility response from %s for component %s", client.Address(), fComponent.ComponentName), err, fComponent.errLoggingPercent)
			metrics.Count("scoreflow.component.execution.error", 1, append(endpointTags, errorType, feasibilityTransportErr))
			scores = append(scores, vector.NewMissing(len(request.Smilies)))
			continue
		}

		scores = append(scores, parseResponse(body, len(request.Smilies)))
	}

	metrics.Timing("scoreflow.component.execution.latency", time.Since(t), metricTags)
	return scores, nil
}
