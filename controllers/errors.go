package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-chain-api/utils"
)

// ErrStorage is the only message a caller sees for unclassified
// data-access failures; the real error goes to the log.
var ErrStorage = &CustomError{"internal server error"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func respondStorageError(c *gin.Context, err error) {
	utils.ErrorLogger.Printf("storage error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.RespondError(c, http.StatusInternalServerError, ErrStorage)
}
