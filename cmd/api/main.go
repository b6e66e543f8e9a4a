package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maatricare/config"
	_ "maatricare/docs" // Swagger docs
	conversationMemory "maatricare/internal/conversation/repository/memory"
	conversationUC "maatricare/internal/conversation/usecase"
	"maatricare/internal/httpserver"
	profileMemory "maatricare/internal/profile/repository/memory"
	profileUC "maatricare/internal/profile/usecase"
	"maatricare/internal/risk"
	"maatricare/internal/router"
	schedulerUC "maatricare/internal/scheduler/usecase"
	"maatricare/pkg/apimonitor"
	"maatricare/pkg/dateparse"
	"maatricare/pkg/gcalendar"
	"maatricare/pkg/llmprovider"
	"maatricare/pkg/log"
	"maatricare/pkg/youtube"
)

// @title       MaatriCare API
// @description Conversational maternal health assistant: stage-aware guidance, symptom risk triage, and antenatal visit scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MaatriCare...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Renderer provider chain with fallback
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize renderer providers: ", err)
		return
	}

	monitor := apimonitor.New(5 * time.Minute)
	renderer := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 30*time.Second),
	}, monitor, logger)
	logger.Infof(ctx, "Renderer initialized with %d provider(s)", len(providers))

	// 4. Date parsing in the clinic's timezone
	timezone := cfg.Scheduler.Timezone
	dateParser, dtErr := dateparse.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateParser, _ = dateparse.NewParser("UTC")
		timezone = "UTC"
	}

	// 5. Google Calendar mirror (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. YouTube search for exercise/relaxation videos (optional)
	var videoClient youtube.IYouTube
	if cfg.YouTube.APIKey != "" {
		videoClient, err = youtube.New(ctx, youtube.Config{
			APIKey:     cfg.YouTube.APIKey,
			MaxResults: cfg.YouTube.MaxResults,
		})
		if err != nil {
			logger.Warnf(ctx, "YouTube not available (optional): %v", err)
			videoClient = nil
		}
	}

	// 7. Domain wiring
	profiles := profileUC.New(logger, profileMemory.New())
	assessor := risk.New(logger, risk.Config{
		WatchThreshold:  cfg.Risk.WatchThreshold,
		UrgentThreshold: cfg.Risk.UrgentThreshold,
		WeightOverrides: cfg.Risk.WeightOverrides,
	})
	scheduler := schedulerUC.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID, timezone)
	states := conversationMemory.New(parseDuration(cfg.Chat.SessionTTL, 30*time.Minute))

	conversations := conversationUC.New(
		logger,
		conversationUC.Config{
			RendererTimeout: parseDuration(cfg.Chat.RendererTimeout, 15*time.Second),
			HistoryLimit:    cfg.Chat.HistoryLimit,
			EmergencyNumber: cfg.Emergency.EmergencyNumber,
			MaternalHotline: cfg.Emergency.MaternalHotline,
		},
		profiles,
		router.New(logger),
		assessor,
		scheduler,
		renderer,
		videoClient,
		states,
		dateParser,
	)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ConversationUC: conversations,
		ProfileUC:      profiles,
		RatePerMinute:  cfg.Chat.RatePerMinute,
		RateBurst:      cfg.Chat.RateBurst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
