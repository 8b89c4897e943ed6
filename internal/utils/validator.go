package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate binds the JSON request body to obj and validates it. On
// failure it writes a 400 with a single human-readable message (the wire
// format the storefront shows to the user) and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(bindErrorMessage(err)))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		switch e.Tag() {
		case "required":
			return "All fields are required"
		case "email":
			return fmt.Sprintf("Field '%s' must be a valid email address", e.Field())
		default:
			return fmt.Sprintf("Field '%s' is invalid", e.Field())
		}
	}
	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("Field '%s' has invalid type", jsonErr.Field)
	}
	return "Malformed JSON or invalid request body"
}
