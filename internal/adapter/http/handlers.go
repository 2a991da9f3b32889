package http

import (
	"net/http"
	"time"

	"koperasi-loan-service/internal/domain/actor"

	"github.com/labstack/echo/v4"
)

// actorKey is where the auth middleware parks the resolved caller.
const actorKey = "actor"

func ActorFromContext(c echo.Context) (*actor.Actor, bool) {
	a, ok := c.Get(actorKey).(*actor.Actor)
	return a, ok
}

func SetActor(c echo.Context, a *actor.Actor) { c.Set(actorKey, a) }

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
