package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"paralympics-api/internal/region"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into obj, describing type
// mismatches against the offending field
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return errors.New("request body is empty")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return region.NewValidationError(field, "must be of type "+jsonTypeName(typeErr))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("request body is not valid JSON")
	default:
		return err
	}
}

func jsonTypeName(err *json.UnmarshalTypeError) string {
	name := err.Type.String()
	name = strings.TrimPrefix(name, "*")
	if strings.HasPrefix(name, "model.") {
		return "object"
	}
	return name
}

// respondInvalid writes a 400 describing why the body was rejected
func respondInvalid(c *gin.Context, err error) {
	var verr *region.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
