package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/sessionnotes/internal/utils"
)

type APIError struct {
	Code  utils.Code `json:"code"`
	Error string     `json:"error"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)

	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Message != "" {
		c.JSON(status, APIError{
			Code:  ae.Code,
			Error: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:  utils.CodeInternal,
		Error: http.StatusText(status),
	})
}
