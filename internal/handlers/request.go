package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// decodeStrict decodes the request body into v, rejecting unknown fields.
// fiber's BodyParser silently drops unrecognized keys, so the product
// creation route decodes by hand.
func decodeStrict(c *fiber.Ctx, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// isUnknownFieldError reports whether a decode error was caused by an
// unrecognized key rather than malformed JSON. encoding/json exports no
// typed error for this, so match the exact message prefix the decoder
// produces.
func isUnknownFieldError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "json: unknown field")
}

// validationMessages flattens validator errors into a field-to-message map
// so a failed request reports every offending field at once.
func validationMessages(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string)
	for _, e := range errs {
		messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return messages
}
