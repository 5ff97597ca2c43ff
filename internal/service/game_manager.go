package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/jungle-backend/internal/model"
	"github.com/benbeisheim/jungle-backend/internal/replay"
	"github.com/gofiber/websocket/v2"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager is the registry of live games. Each game serializes its own
// engine calls; the manager only guards the map.
type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}
	gm.games[gameID] = model.NewGame(gameID)
	return nil
}

// AdoptGame registers an already constructed game, e.g. one restored
// from a save document.
func (gm *GameManager) AdoptGame(game *model.Game) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.games[game.ID] = game
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Player, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.ClientState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.ClientState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, move model.MoveRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(move)
}

func (gm *GameManager) Undo(gameID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Undo()
}

func (gm *GameManager) Redo(gameID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Redo()
}

func (gm *GameManager) LegalMoves(gameID string, pos model.Position) ([]model.Position, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(pos)
}

func (gm *GameManager) MoveHistory(gameID string) ([]model.Move, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.MoveHistory(), nil
}

// ReplayPosition rebuilds the board as it stood after the first n moves
// of the game's history.
func (gm *GameManager) ReplayPosition(gameID string, n int) ([][]*model.Piece, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	engine := replay.New(game.MoveHistory())
	if !engine.Goto(n) {
		return nil, errors.New("move index out of range")
	}
	return engine.Board().Grid(), nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}
