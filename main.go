package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/origin-shift-api/api"
	api_i "github.com/beka-birhanu/origin-shift-api/api/i"
	"github.com/beka-birhanu/origin-shift-api/api/identity"
	"github.com/beka-birhanu/origin-shift-api/api/mazeapi"
	"github.com/beka-birhanu/origin-shift-api/config"
	"github.com/beka-birhanu/origin-shift-api/infrastruture/token"
	"github.com/beka-birhanu/origin-shift-api/maze"
	"github.com/beka-birhanu/origin-shift-api/service"
	"github.com/beka-birhanu/origin-shift-api/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	appLogger          *log.Logger
	jwtTokenizer       i.Tokenizer
	mazeSessionManager i.MazeSessionManager
	mazeController     api_i.Controller
	router             *api.Router
)

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Println("JWT Tokenizer initialized")
}

func initSessionManager() {
	sessionLogger := log.New(os.Stdout, config.ColorCyan+"[SESSION-MANAGER] "+config.ColorReset, log.LstdFlags)

	var err error
	mazeSessionManager, err = service.NewMazeSessionManager(&service.Config{
		MazeFactory: func(width, height int) (i.Maze, error) {
			return maze.New(width, height)
		},
		MaxDimension: config.Envs.MazeMaxDimension,
		Logger:       sessionLogger,
	})
	if err != nil {
		appLogger.Printf("Creating maze session manager: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze session manager initialized")
}

func initMazeController() {
	tokenTTL := time.Duration(config.Envs.SessionTokenTTLHours) * time.Hour

	var err error
	mazeController, err = mazeapi.NewMazeController(mazeSessionManager, jwtTokenizer, tokenTTL)
	if err != nil {
		appLogger.Printf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Println("Router initialized")
}

func main() {
	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)
	gin.SetMode(config.Envs.GinMode)

	initJWTTokenizer()
	initSessionManager()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("Starting server: %v", err)
		os.Exit(1)
	}
}
