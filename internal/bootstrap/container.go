package bootstrap

import (
	"time"

	"notesai-be/internal/config"
	"notesai-be/internal/controller"
	"notesai-be/internal/pkg/logger"
	"notesai-be/internal/repository/unitofwork"
	"notesai-be/internal/service"
	"notesai-be/pkg/summarizer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const noteEventsTopic = "NOTE_EVENTS"

type Container struct {
	// Controllers
	NoteController controller.INoteController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(noteEventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, noteEventsTopic, sysLogger)

	// 3. Services
	noteSummarizer := summarizer.NewGeminiSummarizer(cfg.Keys.GoogleGemini, cfg.Summarize.Model)
	cacheTTL := time.Duration(cfg.Summarize.CacheTTLMinutes) * time.Minute

	noteService := service.NewNoteService(uowFactory, publisherService, noteSummarizer, cacheTTL)
	analyticsService := service.NewAnalyticsService(uowFactory)

	// 4. Controllers
	noteController := controller.NewNoteController(noteService, analyticsService)

	return &Container{
		NoteController:  noteController,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
