package controller

import (
	"errors"
	"strconv"

	"github.com/benbeisheim/jungle-backend/internal/model"
	"github.com/benbeisheim/jungle-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// moveBody accepts either notation squares ("E3") or raw coordinates.
type moveBody struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	FromPos *model.Position `json:"fromPos"`
	ToPos   *model.Position `json:"toPos"`
}

func (b moveBody) request() (model.MoveRequest, error) {
	if b.FromPos != nil && b.ToPos != nil {
		return model.MoveRequest{From: *b.FromPos, To: *b.ToPos}, nil
	}
	from, err := model.ParsePosition(b.From)
	if err != nil {
		return model.MoveRequest{}, err
	}
	to, err := model.ParsePosition(b.To)
	if err != nil {
		return model.MoveRequest{}, err
	}
	return model.MoveRequest{From: from, To: to}, nil
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var body moveBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid move payload"})
	}
	req, err := body.request()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := gc.gameService.HandleMove(c.Params("gameId"), req); err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Move made"})
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	if err := gc.gameService.Undo(c.Params("gameId")); err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Move undone"})
}

func (gc *GameController) Redo(c *fiber.Ctx) error {
	if err := gc.gameService.Redo(c.Params("gameId")); err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Move redone"})
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	pos, err := model.ParsePosition(c.Params("square"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), pos)
	if err != nil {
		return gameError(c, err)
	}
	squares := make([]string, 0, len(moves))
	for _, m := range moves {
		squares = append(squares, m.Notation())
	}
	return c.JSON(fiber.Map{
		"moves":   moves,
		"squares": squares,
	})
}

func (gc *GameController) GetHistory(c *fiber.Ctx) error {
	history, err := gc.gameService.MoveHistory(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	notation := make([]string, 0, len(history))
	for _, m := range history {
		notation = append(notation, m.Notation())
	}
	return c.JSON(fiber.Map{
		"moves":    history,
		"notation": notation,
	})
}

func (gc *GameController) GetReplayPosition(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid move index"})
	}
	board, err := gc.gameService.ReplayPosition(c.Params("gameId"), n)
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{"board": board, "index": n})
}

func (gc *GameController) SaveGame(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "save name is required"})
	}
	if err := gc.gameService.SaveGame(c.Params("gameId"), body.Name); err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Game saved", "name": body.Name})
}

func (gc *GameController) LoadGame(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "save name is required"})
	}
	gameID, err := gc.gameService.LoadGame(body.Name)
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Game loaded", "game_id": gameID})
}

func (gc *GameController) ListSaves(c *fiber.Ctx) error {
	names, err := gc.gameService.ListSaves()
	if err != nil {
		return gameError(c, err)
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(fiber.Map{"saves": names})
}

// gameError maps engine and persistence errors onto HTTP statuses. Every
// rejection keeps its distinct reason so clients can render it.
func gameError(c *fiber.Ctx, err error) error {
	if reason, ok := model.RejectionReason(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  err.Error(),
			"reason": reason,
		})
	}
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrNoPieceAtSource),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrGameOver),
		errors.Is(err, model.ErrNothingToUndo),
		errors.Is(err, model.ErrNothingToRedo):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrCorruptSave):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, model.ErrIOFailure):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
