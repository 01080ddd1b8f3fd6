package components

const (
	pipelineId = "pipeline-id"
	component  = "component"
	endpoint   = "endpoint"

	errorType               = "error-type"
	feasibilityApiError     = "feasibility-api-error"
	feasibilityTransportErr = "feasibility-transport-error"
)
