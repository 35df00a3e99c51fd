// error_utils.go
package utils

import (
	"errors"
	"strings"

	"Tracer-Study-Portal/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// ParseAndValidate reads the JSON body into out and runs its validate tags.
// On failure the 400 response has already been written and the returned error
// is the result of writing it.
func ParseAndValidate(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()[:1])+fe.Field()[1:]+":"+fe.Tag())
			}
			return false, c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Validation failed",
				Fields:  fields,
			})
		}
		return false, HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return true, nil
}
