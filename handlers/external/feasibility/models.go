package feasibility

// FeasibilityClient issues one prediction call against a single endpoint.
// Predict returns the raw response body on HTTP 200, a RemoteRejectionError
// on any other status, and the transport error otherwise.
type FeasibilityClient interface {
	Predict(smilies []string) ([]byte, error)
	Address() string
}

type predictRequest struct {
	Smiles []string `json:"smiles"`
}

// PredictionRecord is one entry of a successful response body, e.g.
// {"smiles": "C1=CC=CC=C1", "prediction": 0.576}. The smiles field echoes
// the input molecule and is not used for alignment. Prediction stays untyped
// so a single malformed value never fails the whole response decode.
type PredictionRecord struct {
	Smiles     string      `json:"smiles"`
	Prediction interface{} `json:"prediction"`
}
