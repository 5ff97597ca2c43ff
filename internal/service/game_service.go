package service

import (
	"fmt"

	"github.com/benbeisheim/jungle-backend/internal/model"
	"github.com/benbeisheim/jungle-backend/internal/storage"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
	store       *storage.FS
}

func NewGameService(gameManager *GameManager, store *storage.FS) *GameService {
	return &GameService{
		gameManager: gameManager,
		store:       store,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Player, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.ClientState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, move model.MoveRequest) error {
	return gs.gameManager.MakeMove(gameID, move)
}

func (gs *GameService) Undo(gameID string) error {
	return gs.gameManager.Undo(gameID)
}

func (gs *GameService) Redo(gameID string) error {
	return gs.gameManager.Redo(gameID)
}

func (gs *GameService) LegalMoves(gameID string, pos model.Position) ([]model.Position, error) {
	return gs.gameManager.LegalMoves(gameID, pos)
}

func (gs *GameService) MoveHistory(gameID string) ([]model.Move, error) {
	return gs.gameManager.MoveHistory(gameID)
}

func (gs *GameService) ReplayPosition(gameID string, n int) ([][]*model.Piece, error) {
	return gs.gameManager.ReplayPosition(gameID, n)
}

// SaveGame writes the game's save document under the given name.
func (gs *GameService) SaveGame(gameID string, name string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return gs.store.Save(name, game.Save())
}

// LoadGame restores a saved game under a fresh game ID and returns it.
func (gs *GameService) LoadGame(name string) (string, error) {
	doc, err := gs.store.Load(name)
	if err != nil {
		return "", err
	}
	state, err := model.RestoreGameState(doc)
	if err != nil {
		return "", err
	}
	gameID := uuid.New().String()
	gs.gameManager.AdoptGame(model.NewGameFromState(gameID, state))
	return gameID, nil
}

func (gs *GameService) ListSaves() ([]string, error) {
	return gs.store.List()
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
