package model

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/benbeisheim/jungle-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// GameConnections tracks the websocket connections observing one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game wraps one GameState with the seat assignments and observer
// connections of a session. All engine calls are serialized through its
// mutex, as the engine itself is single-threaded.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       *GameState
	connections *GameConnections
	seats       map[Player]string // seat -> playerID
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		state:       NewGameState(),
		connections: NewGameConnections(),
		seats:       make(map[Player]string),
	}
}

// NewGameFromState wraps a restored engine state, e.g. after loading a
// save document.
func NewGameFromState(id string, state *GameState) *Game {
	return &Game{
		ID:          id,
		state:       state,
		connections: NewGameConnections(),
		seats:       make(map[Player]string),
	}
}

// AddPlayer seats a player, RED first, then BLUE.
func (g *Game) AddPlayer(playerID string) (Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seats[PlayerRed] == "" {
		g.seats[PlayerRed] = playerID
		return PlayerRed, nil
	}
	if g.seats[PlayerBlue] == "" {
		g.seats[PlayerBlue] = playerID
		return PlayerBlue, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	return playerID != "" && (g.seats[PlayerRed] == playerID || g.seats[PlayerBlue] == playerID)
}

func (g *Game) GetState() ClientState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.ClientState()
}

func (g *Game) MakeMove(req MoveRequest) error {
	g.mu.Lock()
	err := g.state.MakeMove(req.From, req.To)
	g.mu.Unlock()
	if err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

func (g *Game) Undo() error {
	g.mu.Lock()
	err := g.state.Undo()
	g.mu.Unlock()
	if err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

func (g *Game) Redo() error {
	g.mu.Lock()
	err := g.state.Redo()
	g.mu.Unlock()
	if err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

func (g *Game) LegalMoves(pos Position) ([]Position, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.LegalMovesAt(pos)
}

func (g *Game) MoveHistory() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Move(nil), g.state.MoveHistory()...)
}

// Save produces the persistable document for the current state.
func (g *Game) Save() *SaveDocument {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Save()
}

// RegisterConnection attaches a websocket observer to the game and sends
// it the current state.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the existing connection, reject the duplicate.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, playerID)
}

// broadcastState pushes the current state to every observer. Failed
// connections are dropped from the registry.
func (g *Game) broadcastState() {
	state := g.GetState()
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("marshal state: %v", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("send state to %s: %v", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
