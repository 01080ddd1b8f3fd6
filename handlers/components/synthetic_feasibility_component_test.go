package components

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molstack/scoreflow/handlers/config"
	"github.com/molstack/scoreflow/handlers/external/feasibility"
	"github.com/molstack/scoreflow/internal/errors"
)

func fakePredictionServer(t *testing.T, scores []float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var request struct {
			Smiles []string `json:"smiles"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		records := make([]feasibility.PredictionRecord, 0, len(request.Smiles))
		for i, smiles := range request.Smiles {
			records = append(records, feasibility.PredictionRecord{
				Smiles:     smiles,
				Prediction: scores[i%len(scores)],
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}))
}

func componentFor(servers ...*httptest.Server) *SyntheticFeasibilityComponent {
	conf := config.FeasibilityComponentConfig{Component: "synthetic_feasibility"}
	for _, server := range servers {
		parsed, _ := url.Parse(server.URL)
		port, _ := strconv.Atoi(parsed.Port())
		conf.ServerURL = append(conf.ServerURL, parsed.Scheme+"://"+parsed.Hostname())
		conf.ServerPort = append(conf.ServerPort, port)
		conf.ServerEndpoint = append(conf.ServerEndpoint, "synthetic_feasibility_surrogate")
	}
	return NewSyntheticFeasibilityComponent(conf, 100)
}

func TestBindEndpointConfigs(t *testing.T) {
	t.Run("unset parameters fall back to one default endpoint", func(t *testing.T) {
		endpoints := BindEndpointConfigs(config.FeasibilityComponentConfig{Component: "synthetic_feasibility"})
		require.Len(t, endpoints, 1)
		assert.Equal(t, feasibility.DefaultServerURL, endpoints[0].ServerURL)
		assert.Equal(t, feasibility.DefaultServerPort, endpoints[0].ServerPort)
		assert.Equal(t, feasibility.DefaultServerEndpoint, endpoints[0].ServerEndpoint)
	})

	t.Run("parallel lists zip positionally", func(t *testing.T) {
		endpoints := BindEndpointConfigs(config.FeasibilityComponentConfig{
			Component:      "synthetic_feasibility",
			ServerURL:      []string{"http://a", "http://b"},
			ServerPort:     []int{5000, 5001},
			ServerEndpoint: []string{"pathA", "pathB"},
		})
		require.Len(t, endpoints, 2)
		assert.Equal(t, feasibility.ClientConfig{ServerURL: "http://a", ServerPort: 5000, ServerEndpoint: "pathA"}, endpoints[0])
		assert.Equal(t, feasibility.ClientConfig{ServerURL: "http://b", ServerPort: 5001, ServerEndpoint: "pathB"}, endpoints[1])
	})

	t.Run("mismatched list lengths truncate to the shortest", func(t *testing.T) {
		endpoints := BindEndpointConfigs(config.FeasibilityComponentConfig{
			Component:      "synthetic_feasibility",
			ServerURL:      []string{"http://a", "http://b", "http://c"},
			ServerPort:     []int{5000, 5001},
			ServerEndpoint: []string{"pathA", "pathB", "pathC"},
		})
		assert.Len(t, endpoints, 2)
	})

	t.Run("partially set parameters zip against the default lists", func(t *testing.T) {
		endpoints := BindEndpointConfigs(config.FeasibilityComponentConfig{
			Component: "synthetic_feasibility",
			ServerURL: []string{"http://a", "http://b"},
		})
		require.Len(t, endpoints, 1)
		assert.Equal(t, "http://a", endpoints[0].ServerURL)
		assert.Equal(t, feasibility.DefaultServerPort, endpoints[0].ServerPort)
	})
}

func TestScoreSuccess(t *testing.T) {
	server := fakePredictionServer(t, []float64{0.576, 0.572})
	defer server.Close()

	fComponent := componentFor(server)
	result, err := fComponent.Score(ComponentRequest{
		Smilies:    []string{"C1=CC=CC=C1", "CCO"},
		PipelineId: "test-pipeline",
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0], 2)
	assert.InDelta(t, 0.576, result[0][0], 1e-9)
	assert.InDelta(t, 0.572, result[0][1], 1e-9)
}

func TestScoreOneVectorPerEndpoint(t *testing.T) {
	serverA := fakePredictionServer(t, []float64{0.1, 0.2, 0.3})
	defer serverA.Close()
	serverB := fakePredictionServer(t, []float64{0.4, 0.5, 0.6})
	defer serverB.Close()

	fComponent := componentFor(serverA, serverB)
	result, err := fComponent.Score(ComponentRequest{
		Smilies:    []string{"C", "CC", "CCC"},
		PipelineId: "test-pipeline",
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, scoreVector := range result {
		assert.Len(t, scoreVector, 3)
		assert.Equal(t, 0, scoreVector.MissingCount())
	}
	assert.InDelta(t, 0.1, result[0][0], 1e-9)
	assert.InDelta(t, 0.4, result[1][0], 1e-9)
}

func TestScoreEmptyBatch(t *testing.T) {
	server := fakePredictionServer(t, []float64{0.5})
	defer server.Close()

	fComponent := componentFor(server)
	result, err := fComponent.Score(ComponentRequest{Smilies: []string{}, PipelineId: "test-pipeline"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0], 0)
}

func TestScoreTransportFailureIsIsolatedPerEndpoint(t *testing.T) {
	live := fakePredictionServer(t, []float64{0.9, 0.8})
	defer live.Close()

	// second endpoint refuses connections
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	fComponent := componentFor(live, dead)
	result, err := fComponent.Score(ComponentRequest{
		Smilies:    []string{"C1=CC=CC=C1", "CCO"},
		PipelineId: "test-pipeline",
	})
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, 0, result[0].MissingCount())
	assert.InDelta(t, 0.9, result[0][0], 1e-9)

	assert.Len(t, result[1], 2)
	assert.Equal(t, 2, result[1].MissingCount())
}

func TestScoreRemoteRejectionAbortsTheCall(t *testing.T) {
	var secondEndpointCalls atomic.Int64

	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer rejecting.Close()
	notReached := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secondEndpointCalls.Add(1)
		fmt.Fprint(w, `[]`)
	}))
	defer notReached.Close()

	fComponent := componentFor(rejecting, notReached)
	result, err := fComponent.Score(ComponentRequest{
		Smilies:    []string{"CCO"},
		PipelineId: "test-pipeline",
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var rejection *errors.RemoteRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusInternalServerError, rejection.StatusCode)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "model not loaded")

	// endpoints after the rejecting one are never queried
	assert.Equal(t, int64(0), secondEndpointCalls.Load())
}

func TestScoreIsIdempotent(t *testing.T) {
	server := fakePredictionServer(t, []float64{0.11, 0.22, 0.33})
	defer server.Close()

	fComponent := componentFor(server)
	request := ComponentRequest{Smilies: []string{"C", "CC", "CCC"}, PipelineId: "test-pipeline"}

	first, err := fComponent.Score(request)
	require.NoError(t, err)
	second, err := fComponent.Score(request)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
