package scoring

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/molstack/scoreflow/internal/errors"
	"github.com/molstack/scoreflow/internal/middleware"
)

// ScoreHandler is the HTTP entry point for one scoring batch. A remote
// rejection maps to 502 so callers can tell a misbehaving prediction server
// apart from a bad request.
func ScoreHandler(c *gin.Context) {
	var request ScoreRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headers := middleware.PropagatedHeaders(c)
	scores, err := Score(request.PipelineConfigId, request.Smiles, headers)
	if err != nil {
		var rejection *errors.RemoteRejectionError
		var badRequest *errors.BadRequestError
		switch {
		case stderrors.As(err, &rejection):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		case stderrors.As(err, &badRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{
		PipelineConfigId: request.PipelineConfigId,
		Scores:           scores,
	})
}
