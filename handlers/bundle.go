// File: bookwise/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Resolution endpoints
	ResolveHandler gin.HandlerFunc

	// Memory endpoints
	GetMemoryHandler   gin.HandlerFunc
	ClearMemoryHandler gin.HandlerFunc

	// History endpoints
	GetHistoryHandler    gin.HandlerFunc
	DeleteHistoryHandler gin.HandlerFunc
}
