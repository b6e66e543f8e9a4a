package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"maatricare/internal/conversation"
	"maatricare/internal/profile"
	"maatricare/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain usecases
	conversationUC conversation.UseCase
	profileUC      profile.UseCase

	// Per-user rate limiting
	ratePerMinute int
	rateBurst     int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ConversationUC conversation.UseCase
	ProfileUC      profile.UseCase

	RatePerMinute int
	RateBurst     int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		conversationUC: cfg.ConversationUC,
		profileUC:      cfg.ProfileUC,
		ratePerMinute:  cfg.RatePerMinute,
		rateBurst:      cfg.RateBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation usecase is required")
	}
	if srv.profileUC == nil {
		return errors.New("profile usecase is required")
	}
	return nil
}
