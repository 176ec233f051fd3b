package handler

import (
	"errors"
	"net/http"

	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// LogicErrorResponse 把logic层错误映射为HTTP状态码
func LogicErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, statusForError(err), err.Error())
}

var notFoundErrors = []error{
	logic.ErrProjectNotFound,
	logic.ErrRewardNotFound,
	logic.ErrPledgeNotFound,
	logic.ErrBackerNotFound,
	logic.ErrCategoryNotFound,
	logic.ErrUpdateNotFound,
	logic.ErrTemplateNotFound,
}

var validationErrors = []error{
	logic.ErrStartAfterEnd,
	logic.ErrDurationTooLong,
	logic.ErrGoalNotPositive,
	logic.ErrUnknownCurrency,
	logic.ErrCurrencyLocked,
	logic.ErrEndLocked,
	logic.ErrRewardWrongProject,
	logic.ErrRewardExhausted,
	logic.ErrRewardMinimum,
	logic.ErrQuantityBelowAwarded,
	logic.ErrAmountNotPositive,
	logic.ErrInvalidStatus,
	logic.ErrStatusRegression,
	logic.ErrBackerNoContact,
	logic.ErrUnknownMailAction,
}

func statusForError(err error) int {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
