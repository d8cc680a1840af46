package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"items-api/internal/transport/dto"
	"items-api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const validatedBodyKey = "validatedBody"

// ValidateItemCreate validates POST /items bodies against the create schema.
func ValidateItemCreate() gin.HandlerFunc {
	return validateBody(validation.ValidateCreate, false)
}

// ValidateItemUpdate validates PUT /items/:id bodies against the update
// schema. Form-encoded bodies are accepted as well as JSON.
func ValidateItemUpdate() gin.HandlerFunc {
	return validateBody(validation.ValidateUpdate, true)
}

// ValidatedBody returns the sanitized payload stored by the validation
// middleware. ok is false when the route was not wired through it.
func ValidatedBody[T any](c *gin.Context) (value T, ok bool) {
	v, exists := c.Get(validatedBodyKey)
	if !exists {
		return value, false
	}
	value, ok = v.(T)
	return value, ok
}

// validateBody either aborts with 400 and the collected field errors, or
// stores the sanitized value, swaps the request body for its JSON encoding
// and continues. It never lets a panic escape.
func validateBody[T any](validate func([]byte) validation.Outcome[T], allowForm bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("Validation middleware recovered from panic")
				reject(c, []dto.FieldError{{Message: validation.MsgUnprocessable}})
			}
		}()

		body, err := readBody(c, allowForm)
		if err != nil {
			logrus.WithError(err).Debug("Failed to read request body")
			reject(c, []dto.FieldError{{Message: validation.MsgUnprocessable}})
			return
		}

		switch out := validate(body).(type) {
		case validation.Valid[T]:
			sanitized, err := json.Marshal(out.Value)
			if err != nil {
				reject(c, []dto.FieldError{{Message: validation.MsgUnprocessable}})
				return
			}
			c.Set(validatedBodyKey, out.Value)
			c.Request.Body = io.NopCloser(bytes.NewReader(sanitized))
			c.Request.ContentLength = int64(len(sanitized))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Next()
		case validation.Invalid[T]:
			reject(c, out.Errors)
		default:
			reject(c, []dto.FieldError{{Message: validation.MsgUnprocessable}})
		}
	}
}

func reject(c *gin.Context, details []dto.FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Response{
		Success: false,
		Error:   "Validation failed",
		Details: details,
	})
}

// readBody returns the raw JSON body, or the form fields re-encoded as a JSON
// object when allowForm is set and the request is form-encoded. Repeated form
// keys keep their first value.
func readBody(c *gin.Context, allowForm bool) ([]byte, error) {
	contentType := c.ContentType()
	isForm := contentType == gin.MIMEPOSTForm || contentType == gin.MIMEMultipartPOSTForm
	if !allowForm || !isForm {
		return c.GetRawData()
	}

	if contentType == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
			return nil, err
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return json.Marshal(fields)
}
