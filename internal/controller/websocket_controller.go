package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/benbeisheim/jungle-backend/internal/model"
	"github.com/benbeisheim/jungle-backend/internal/service"
	"github.com/benbeisheim/jungle-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	playerID, _ := c.Locals("wsPlayerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("failed to register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			wsc.sendError(c, err)
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, move)

	case ws.MessageTypeUndo:
		return wsc.gameService.Undo(gameID)

	case ws.MessageTypeRedo:
		return wsc.gameService.Redo(gameID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, err error) {
	payload := struct {
		Message string             `json:"message"`
		Reason  model.RejectReason `json:"reason,omitempty"`
	}{Message: err.Error()}
	if reason, ok := model.RejectionReason(err); ok {
		payload.Reason = reason
	}
	data, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return
	}
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(data),
	})
}
