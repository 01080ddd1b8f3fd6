package feasibility

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/molstack/scoreflow/internal/errors"
)

const (
	V1Prefix = "FEASIBILITY_CLIENT_V1_"

	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
)

type ClientV1 struct {
	ClientConfigs *ClientConfig
	HttpClient    *http.Client
	address       string
}

func InitV1Client(conf ClientConfig) FeasibilityClient {
	if conf.TimeoutSec <= 0 {
		conf.TimeoutSec = getTimeoutSec(V1Prefix)
	}
	return &ClientV1{
		ClientConfigs: &conf,
		HttpClient: &http.Client{
			Timeout: time.Duration(conf.TimeoutSec) * time.Second,
		},
		address: BuildHttpUrl(conf.ServerURL, conf.ServerPort, conf.ServerEndpoint),
	}
}

func (c *ClientV1) Address() string {
	return c.address
}

// Predict posts the full batch in one request. Single attempt, no retries;
// the caller decides how each error class is handled.
func (c *ClientV1) Predict(smilies []string) ([]byte, error) {
	payload, err := json.Marshal(predictRequest{Smiles: smilies})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, c.address, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set(contentTypeHeader, contentTypeJSON)

	res, err := c.HttpClient.Do(req)
	if err != nil {
		// transport failure: connection refused, timeout, DNS
		return nil, err
	}
	defer res.Body.Close()

	body, readErr := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		return nil, &errors.RemoteRejectionError{
			Endpoint:   c.address,
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       body,
		}
	}
	if readErr != nil {
		return nil, readErr
	}
	return body, nil
}
