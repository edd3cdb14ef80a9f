package usecase

import (
	"context"
	"time"

	"github.com/Vedant634/flowdesk-project/internal/advisor"
	"github.com/Vedant634/flowdesk-project/internal/events"
	"github.com/Vedant634/flowdesk-project/internal/repository"
	"github.com/Vedant634/flowdesk-project/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	TeamUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	CommentUsecaseInterface
	SubtaskUsecaseInterface
	DashboardUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	adv advisor.Advisor,
	sink events.Sink,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, adv, sink, timeout)
}
