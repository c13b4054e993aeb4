package middleware

import (
	"github.com/gin-gonic/gin"
)

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(method, route string, code int)
}

// Metrics reports each request under its matched route pattern so ids in
// paths do not explode label cardinality.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		obs.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
