package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/sessionnotes/internal/utils"
)

// Recovery turns a panic into a 500 carrying only msg; the panic value goes to
// the log.
func Recovery(l *logrus.Logger, msg string) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		l.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"panic": fmt.Sprint(recovered),
		}).Error("panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"code":  utils.CodeInternal,
			"error": msg,
		})
	})
}
