package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// fail logs unexpected errors and writes the JSON error response.
func fail(c *gin.Context, log *zap.Logger, err error, fallbackCode string) {
	if _, ok := httperr.BusinessCode(err); !ok {
		_ = c.Error(err)
		log.Error(fallbackCode,
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	httperr.Respond(c, err, fallbackCode)
}
