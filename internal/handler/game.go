package handler

import (
	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/logger"
	"quiz-board/internal/middleware"
	"quiz-board/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GameHandler exposes the game commands over HTTP
type GameHandler struct {
	service service.GameService
}

// NewGameHandler creates a new GameHandler instance
func NewGameHandler(service service.GameService) *GameHandler {
	return &GameHandler{
		service: service,
	}
}

// RegisterRoutes mounts the game routes on router.
func (h *GameHandler) RegisterRoutes(router fiber.Router, vm *middleware.ValidationMiddleware) {
	game := router.Group("/game")
	game.Get("/", h.GetGame)
	game.Post("/names", vm.ValidateConfirmNames(), h.ConfirmNames)
	game.Post("/categories/:category/questions/:question/open", vm.ValidateQuestionParams(), h.OpenQuestion)
	game.Post("/answer", vm.ValidateSubmitAnswer(), h.SubmitAnswer)
	game.Post("/question/close", h.CloseQuestion)
	game.Post("/winner", h.RevealWinner)
	game.Post("/restart", h.RequestRestart)
	game.Post("/restart/cancel", h.CancelRestart)
	game.Post("/restart/confirm", h.ConfirmRestart)
}

func respond(c *fiber.Ctx, command string, state domain.GameState, applied bool) error {
	if !applied {
		logger.Get().Debug("Command ignored in current state",
			zap.String("command", command),
			zap.String("mode", string(state.Mode)),
		)
	}
	return c.JSON(dto.GameResponse{Applied: applied, Game: dto.NewGameView(state)})
}

// GetGame godoc
// @Summary Get the current game
// @Description Returns the board, scores and the open modal
// @Tags game
// @Produce json
// @Success 200 {object} dto.GameView
// @Router /game [get]
func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	return c.JSON(dto.NewGameView(h.service.State()))
}

// ConfirmNames godoc
// @Summary Confirm player names
// @Description Leaves name setup. Blank names fall back to "Player 1" and "Player 2"
// @Tags game
// @Accept json
// @Produce json
// @Param names body dto.ConfirmNamesRequest true "Player names"
// @Success 200 {object} dto.GameResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /game/names [post]
func (h *GameHandler) ConfirmNames(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalNamesRequest).(dto.ConfirmNamesRequest)
	state, applied := h.service.ConfirmNames(c.UserContext(), req.Player1, req.Player2)
	return respond(c, "confirm_names", state, applied)
}

// OpenQuestion godoc
// @Summary Open a question
// @Tags game
// @Produce json
// @Param category path int true "Category index"
// @Param question path int true "Question index within the category"
// @Success 200 {object} dto.GameResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /game/categories/{category}/questions/{question}/open [post]
func (h *GameHandler) OpenQuestion(c *fiber.Ctx) error {
	categoryIndex := c.Locals(middleware.LocalCategoryIndex).(int)
	questionIndex := c.Locals(middleware.LocalQuestionIndex).(int)
	state, applied := h.service.OpenQuestion(c.UserContext(), categoryIndex, questionIndex)
	return respond(c, "open_question", state, applied)
}

// SubmitAnswer godoc
// @Summary Answer the open question
// @Description Option index for choice questions, 1..10 for scale questions
// @Tags game
// @Accept json
// @Produce json
// @Param answer body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.GameResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /game/answer [post]
func (h *GameHandler) SubmitAnswer(c *fiber.Ctx) error {
	value := c.Locals(middleware.LocalAnswerValue).(int)
	state, applied := h.service.SubmitAnswer(c.UserContext(), value)
	return respond(c, "submit_answer", state, applied)
}

// CloseQuestion godoc
// @Summary Close the evaluated question and pass the turn
// @Tags game
// @Produce json
// @Success 200 {object} dto.GameResponse
// @Router /game/question/close [post]
func (h *GameHandler) CloseQuestion(c *fiber.Ctx) error {
	state, applied := h.service.CloseQuestion(c.UserContext())
	return respond(c, "close_question", state, applied)
}

// RevealWinner godoc
// @Summary Announce the winner once every question is answered
// @Tags game
// @Produce json
// @Success 200 {object} dto.GameResponse
// @Router /game/winner [post]
func (h *GameHandler) RevealWinner(c *fiber.Ctx) error {
	state, applied := h.service.RevealWinner(c.UserContext())
	return respond(c, "reveal_winner", state, applied)
}

// RequestRestart godoc
// @Summary Ask for confirmation before restarting
// @Tags game
// @Produce json
// @Success 200 {object} dto.GameResponse
// @Router /game/restart [post]
func (h *GameHandler) RequestRestart(c *fiber.Ctx) error {
	state, applied := h.service.RequestRestart(c.UserContext())
	return respond(c, "request_restart", state, applied)
}

// CancelRestart godoc
// @Summary Dismiss the restart confirmation
// @Tags game
// @Produce json
// @Success 200 {object} dto.GameResponse
// @Router /game/restart/cancel [post]
func (h *GameHandler) CancelRestart(c *fiber.Ctx) error {
	state, applied := h.service.CancelRestart(c.UserContext())
	return respond(c, "cancel_restart", state, applied)
}

// ConfirmRestart godoc
// @Summary Discard the game and start over at name setup
// @Tags game
// @Produce json
// @Success 200 {object} dto.GameResponse
// @Router /game/restart/confirm [post]
func (h *GameHandler) ConfirmRestart(c *fiber.Ctx) error {
	state, applied := h.service.ConfirmRestart(c.UserContext())
	return respond(c, "confirm_restart", state, applied)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *GameHandler) Health(c *fiber.Ctx) error {
	if err := h.service.Ping(c.UserContext()); err != nil {
		logger.Get().Warn("Snapshot store unhealthy", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Store: "unavailable"})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Store: "ok"})
}
