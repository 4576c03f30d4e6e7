package middleware

import (
	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalCategoryIndex = "validated_category_index"
	LocalQuestionIndex = "validated_question_index"
	LocalNamesRequest  = "validated_names_request"
	LocalAnswerValue   = "validated_answer_value"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuestionParams parses the :category and :question path parameters.
func (vm *ValidationMiddleware) ValidateQuestionParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors

		categoryIndex, catErrs := vm.validator.ParseIndex("category", c.Params("category"))
		errs = append(errs, catErrs...)
		questionIndex, qErrs := vm.validator.ParseIndex("question", c.Params("question"))
		errs = append(errs, qErrs...)

		if len(errs) > 0 {
			return errs
		}

		c.Locals(LocalCategoryIndex, categoryIndex)
		c.Locals(LocalQuestionIndex, questionIndex)
		return c.Next()
	}
}

// ValidateConfirmNames parses and checks the names body.
func (vm *ValidationMiddleware) ValidateConfirmNames() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ConfirmNamesRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", string(c.Body()))}
		}
		if errs := vm.validator.ValidateConfirmNamesRequest(req.Player1, req.Player2); len(errs) > 0 {
			return errs
		}

		c.Locals(LocalNamesRequest, req)
		return c.Next()
	}
}

// ValidateSubmitAnswer parses the answer body.
func (vm *ValidationMiddleware) ValidateSubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SubmitAnswerRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", string(c.Body()))}
		}
		if errs := vm.validator.ValidateSubmitAnswerRequest(req.Value); len(errs) > 0 {
			return errs
		}

		c.Locals(LocalAnswerValue, *req.Value)
		return c.Next()
	}
}
