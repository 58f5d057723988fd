package http

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/viewer"

	"github.com/labstack/echo/v4"
)

// Caller identity headers. Authentication itself happens upstream; these
// headers carry the already-authenticated principal into the service.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

var (
	ErrActorHeadersMissing = errors.New("X-Actor-Id and X-Actor-Role headers are required")
	ErrActorRoleMismatch   = errors.New("actor role does not permit this operation")
)

// actorFromRequest builds the viewer context from the identity headers.
func actorFromRequest(ctx echo.Context) (viewer.Context, error) {
	rawID := ctx.Request().Header.Get(HeaderActorID)
	rawRole := ctx.Request().Header.Get(HeaderActorRole)
	if rawID == "" || rawRole == "" {
		return viewer.Context{}, ErrActorHeadersMissing
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return viewer.Context{}, err
	}

	role, err := viewer.RoleFromString(rawRole)
	if err != nil {
		return viewer.Context{}, err
	}

	return viewer.NewContext(role, id)
}

// requireRole builds the viewer context and rejects any role but the wanted one.
func requireRole(ctx echo.Context, role viewer.Role) (viewer.Context, error) {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return viewer.Context{}, err
	}
	if actor.Role() != role {
		return viewer.Context{}, ErrActorRoleMismatch
	}
	return actor, nil
}
