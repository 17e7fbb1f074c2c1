package response

import (
	"net/http"

	"unistay/errors"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope of every endpoint
type Response struct {
	Code       int                 `json:"code"`
	Mess       string              `json:"mess"`
	Data       interface{}         `json:"data,omitempty"`
	Errors     []errors.FieldError `json:"errors,omitempty"`
	Pagination *Pagination         `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Server error",
	})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Unauthorized",
	})
}

func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Forbidden",
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

var statusByCode = map[errors.ErrorCode]int{
	errors.ErrCodeUnauthorized:     http.StatusUnauthorized,
	errors.ErrCodeInvalidToken:     http.StatusUnauthorized,
	errors.ErrCodeMissingToken:     http.StatusUnauthorized,
	errors.ErrCodeInvalidPassword:  http.StatusBadRequest,
	errors.ErrCodeUserNotFound:     http.StatusNotFound,
	errors.ErrCodeUserExists:       http.StatusConflict,
	errors.ErrCodeForbidden:        http.StatusForbidden,
	errors.ErrCodeNotFound:         http.StatusNotFound,
	errors.ErrCodeRoomUnavailable:  http.StatusConflict,
	errors.ErrCodePaymentFailed:    http.StatusPaymentRequired,
	errors.ErrCodeInvalidOperation: http.StatusConflict,
	errors.ErrCodeDBError:          http.StatusInternalServerError,
	errors.ErrCodeValidation:       http.StatusBadRequest,
	errors.ErrCodeRequiredField:    http.StatusBadRequest,
	errors.ErrCodeInvalidFormat:    http.StatusBadRequest,
}

// StatusFor maps an error to its HTTP status
func StatusFor(err error) int {
	if appErr := errors.GetAppError(err); appErr != nil {
		if status, ok := statusByCode[appErr.Code]; ok {
			return status
		}
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, errors.ErrPropertyNotFound),
		errors.Is(err, errors.ErrBookingNotFound),
		errors.Is(err, errors.ErrUserNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Fail writes err with the status StatusFor picks; unknown errors hide their details
func Fail(c *gin.Context, err error) {
	status := StatusFor(err)
	appErr := errors.GetAppError(err)
	switch {
	case appErr != nil:
		c.JSON(status, Response{Code: 0, Mess: appErr.Message, Errors: appErr.Fields})
	case status == http.StatusInternalServerError:
		ServerError(c)
	default:
		c.JSON(status, Response{Code: 0, Mess: err.Error()})
	}
}

// FailWithData is Fail carrying a payload, used when the failure still produced a resource
func FailWithData(c *gin.Context, err error, data interface{}) {
	status := StatusFor(err)
	resp := Response{Code: 0, Mess: err.Error(), Data: data}
	if appErr := errors.GetAppError(err); appErr != nil {
		resp.Mess = appErr.Message
		resp.Errors = appErr.Fields
	}
	c.JSON(status, resp)
}
