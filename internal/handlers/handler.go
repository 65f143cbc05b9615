package handlers

import (
	"log/slog"

	"memoapp/internal/config"
	"memoapp/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg         config.Config
	logger      *slog.Logger
	db          *gorm.DB
	rdb         *redis.Client
	memoService *services.MemoService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	memoService *services.MemoService,
) *Handler {
	return &Handler{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		rdb:         rdb,
		memoService: memoService,
	}
}
