package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
