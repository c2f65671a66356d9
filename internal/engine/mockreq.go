package engine

import (
	"github.com/google/uuid"

	"github.com/toyz/weld/internal/errors"
	"github.com/toyz/weld/internal/models"
)

// RequestMock decides whether a mock surface is requested for the interface
// and under what name. Weld never renders the mock itself; the request is
// realized as a go:generate directive addressed to the configured library.
func RequestMock(def *models.InterfaceDefinition, cfg models.Config, loc errors.SourceLocation) (*models.MockRequest, error) {
	req := &models.MockRequest{
		ID:            uuid.New().String(),
		Requested:     cfg.MockRequested(),
		InterfaceName: def.Name,
		Library:       cfg.MockLib,
		Exported:      cfg.Export,
	}
	if !req.Requested {
		return req, nil
	}

	if req.Library == models.MockLibraryNone {
		req.Library = models.MockLibraryGoMock
	}

	req.SurfaceName = cfg.MockName
	if req.SurfaceName == "" {
		if req.Library.RequiresSurfaceName() {
			// moq renders into the annotated package, so the collision-free
			// name has to come from the user
			return nil, errors.NewMissingSurfaceName(req.Library.String(), loc)
		}
		req.SurfaceName = "Mock" + def.Name
	}

	return req, nil
}
