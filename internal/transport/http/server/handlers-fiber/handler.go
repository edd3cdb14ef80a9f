// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Vedant634/flowdesk-project/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the HTTP API using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with its dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}
