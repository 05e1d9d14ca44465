package router

import "github.com/gin-gonic/gin"

// Module registers one feature's routes under the registry's prefix group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
