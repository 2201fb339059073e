package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func init() {
	// Report validation failures under the JSON field names, not the Go ones.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Every error response carries a human-readable message; validation
// failures additionally carry per-field detail under "errors".

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func respondFieldErrors(c *gin.Context, message string, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"errors":  fields,
	})
}

// respondBindingError translates a ShouldBindJSON failure into a 400.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string][]string{}
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
		}
		respondFieldErrors(c, "request validation failed", fields)
		return
	}
	respondError(c, http.StatusBadRequest, "invalid request body")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// uuidParam parses a route parameter as an opaque id, responding 400 when it
// does not match the id format.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondFieldErrors(c, "invalid "+name+" parameter", map[string][]string{
			name: {"must be a valid id"},
		})
		return uuid.Nil, false
	}
	return id, true
}
