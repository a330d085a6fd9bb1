package api

import (
	"time"

	"github.com/mirelleva/lunara/internal/db"
	"github.com/mirelleva/lunara/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	contextUserKey = "current_user"
	authTokenTTL   = 30 * 24 * time.Hour
)

type Handler struct {
	secretKey    []byte
	authService  *services.AuthService
	cycleService *services.CycleService
	log          *logrus.Logger
}

func NewHandler(database *gorm.DB, secret string) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:    []byte(secret),
		authService:  services.NewAuthService(repositories.Users),
		cycleService: services.NewCycleService(repositories.Cycles),
		log:          logrus.StandardLogger(),
	}
}
