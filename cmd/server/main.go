package main

import (
	"log"
	"os"

	"github.com/benbeisheim/jungle-backend/internal/controller"
	"github.com/benbeisheim/jungle-backend/internal/middleware"
	"github.com/benbeisheim/jungle-backend/internal/service"
	"github.com/benbeisheim/jungle-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	saveDir := os.Getenv("JUNGLE_SAVE_DIR")
	if saveDir == "" {
		saveDir = "./saves"
	}

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager, storage.NewFS(saveDir))

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{"http://localhost:5173"},
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/load", gameController.LoadGame)
	gameRoutes.Get("/saves", gameController.ListSaves)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/undo", gameController.Undo)
	gameRoutes.Post("/:gameId/redo", gameController.Redo)
	gameRoutes.Get("/:gameId/moves/:square", gameController.LegalMoves)
	gameRoutes.Get("/:gameId/history", gameController.GetHistory)
	gameRoutes.Get("/:gameId/replay/:index", gameController.GetReplayPosition)
	gameRoutes.Post("/:gameId/save", gameController.SaveGame)

	addr := os.Getenv("PORT")
	if addr == "" {
		addr = "3000"
	}
	log.Fatal(app.Listen(":" + addr))
}
