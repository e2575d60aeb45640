package mazeapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/origin-shift-api/api/identity"
	"github.com/beka-birhanu/origin-shift-api/maze"
	"github.com/beka-birhanu/origin-shift-api/service"
	"github.com/beka-birhanu/origin-shift-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze session operations.
type MazeController struct {
	sessionManager i.MazeSessionManager
	tokenizer      i.Tokenizer
	tokenTTL       time.Duration
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm i.MazeSessionManager, tokenizer i.Tokenizer, tokenTTL time.Duration) (*MazeController, error) {
	if sm == nil || tokenizer == nil {
		return nil, errors.New("session manager and tokenizer are required")
	}
	return &MazeController{
		sessionManager: sm,
		tokenizer:      tokenizer,
		tokenTTL:       tokenTTL,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID", mc.state)
		mazes.GET("/:ID/walls", mc.walls)
		mazes.GET("/:ID/origin", mc.origin)
	}
}

// RegisterProtected registers routes that mutate a maze; they require the
// session token issued at creation.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/:ID/step", mc.step)
		mazes.POST("/:ID/shuffle", mc.shuffle)
		mazes.DELETE("/:ID", mc.end)
	}
}

// create handles maze session creation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := mc.sessionManager.Create(request.Width, request.Height, request.Seed, request.Shuffled)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	token, err := mc.tokenizer.Generate(map[string]interface{}{
		identity.MazeIDClaim: id.String(),
	}, mc.tokenTTL)
	if err != nil {
		_ = mc.sessionManager.End(id)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing session token"})
		return
	}

	ctx.JSON(http.StatusCreated, &CreateMazeResponse{ID: id.String(), Token: token})
}

// state returns the textual snapshot of a maze. The "parents" query flag adds
// the debug pointer glyphs to the render.
func (mc *MazeController) state(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	showParents := ctx.Query("parents") == "true"
	render, err := mc.sessionManager.Render(id, showParents)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	origin, err := mc.sessionManager.Origin(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &MazeStateResponse{
		ID:     id.String(),
		Render: render,
		Origin: origin,
	})
}

// walls returns the bulk wall state for visualizers.
func (mc *MazeController) walls(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	snapshot, err := mc.sessionManager.Walls(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}

// origin returns the maze's current origin cell.
func (mc *MazeController) origin(ctx *gin.Context) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return
	}

	origin, err := mc.sessionManager.Origin(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, &OriginResponse{Origin: origin})
}

// step advances a maze by one origin move.
func (mc *MazeController) step(ctx *gin.Context) {
	id, ok := mc.ownedSessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessionManager.Step(id); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	origin, err := mc.sessionManager.Origin(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, &OriginResponse{Origin: origin})
}

// shuffle randomizes a maze.
func (mc *MazeController) shuffle(ctx *gin.Context) {
	id, ok := mc.ownedSessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessionManager.Shuffle(id); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// end discards a maze session.
func (mc *MazeController) end(ctx *gin.Context) {
	id, ok := mc.ownedSessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessionManager.End(id); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// sessionID parses the :ID path parameter, writing the error response itself.
func (mc *MazeController) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// ownedSessionID parses the :ID path parameter and checks the session token
// grants access to it.
func (mc *MazeController) ownedSessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := mc.sessionID(ctx)
	if !ok {
		return uuid.Nil, false
	}
	if !identity.GrantsMaze(ctx, id) {
		ctx.Status(http.StatusForbidden)
		return uuid.Nil, false
	}
	return id, true
}

// statusFor maps service and maze errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrDegenerateGrid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
