package service

import (
	"github.com/dom/champion-rotations/internal/config"
	"github.com/dom/champion-rotations/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	Rotation *RotationService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, logger *zap.Logger) *Services {
	return &Services{
		Rotation: NewRotationService(repos.Rotation, cfg, logger),
	}
}
