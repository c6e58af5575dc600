package bootstrap

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"insights-console-be/internal/catalog"
	"insights-console-be/internal/config"
	"insights-console-be/internal/controller"
	"insights-console-be/internal/pkg/logger"
	"insights-console-be/internal/repository/contract"
	"insights-console-be/internal/repository/implementation"
	"insights-console-be/internal/repository/memory"
	"insights-console-be/internal/service"
	"insights-console-be/pkg/backend"
	pktNats "insights-console-be/pkg/nats"
	"insights-console-be/pkg/storage"
	"insights-console-be/pkg/wizard"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	eventTopic = "insights.events"
	stateTTL   = time.Hour
)

type Container struct {
	// Controllers
	CatalogController    controller.ICatalogController
	WizardController     controller.IWizardController
	SubmissionController controller.ISubmissionController
	UploadController     controller.IUploadController
	ProxyController      controller.IProxyController
	SessionController    controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires every dependency. db may be nil, in which case the
// submission ledger stays in memory.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	eventLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "events.log"))
	c.Logger = sysLogger

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	blobStore, err := newBlobStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Using storage provider: %s", cfg.Storage.Provider)

	backendClient := backend.NewClient(cfg.Backend.BaseURL, nil)
	log.Printf("[INFO] Analysis backend: %s", backendClient.BaseURL())

	// 2. Infrastructure
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	wizardRepo, err := c.newWizardRepository(cfg)
	if err != nil {
		return nil, err
	}

	var submissionRepo contract.SubmissionRepository
	if db != nil {
		submissionRepo = implementation.NewSubmissionRepository(db)
	} else {
		log.Println("[INFO] No database configured, submission ledger kept in memory")
		submissionRepo = memory.NewSubmissionRepository()
	}

	viewRepo := memory.NewViewRepository(stateTTL)

	// 3. Services
	publisherService := service.NewPublisherService(eventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, eventTopic, eventLogger, forwarder)

	uploadService := service.NewUploadService(blobStore, publisherService, sysLogger)
	previewService := service.NewPreviewService(blobStore, cfg.Preview.RowLimit, sysLogger)
	proxyService := service.NewProxyService(backendClient, cfg.Backend)
	wizardService := service.NewWizardService(
		cat,
		wizardRepo,
		submissionRepo,
		proxyService,
		uploadService,
		wizard.NewOutcomeChecker(cfg.Wizard.ErrorMarkers),
		publisherService,
		sysLogger,
	)
	chatService := service.NewChatService(viewRepo, backendClient, backendClient, publisherService, sysLogger)
	insightService := service.NewInsightService(viewRepo, backendClient, sysLogger)
	submissionService := service.NewSubmissionService(submissionRepo)

	// 4. Controllers
	c.CatalogController = controller.NewCatalogController(cat)
	c.WizardController = controller.NewWizardController(wizardService)
	c.UploadController = controller.NewUploadController(uploadService, previewService)
	c.ProxyController = controller.NewProxyController(proxyService)
	c.SessionController = controller.NewSessionController(chatService, insightService)
	c.SubmissionController = controller.NewSubmissionController(submissionService)
	c.ConsumerService = consumerService

	return c, nil
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func (c *Container) newWizardRepository(cfg *config.Config) (contract.WizardRepository, error) {
	switch cfg.Wizard.Store {
	case "", "memory":
		return memory.NewWizardRepository(stateTTL), nil
	case "redis":
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		return implementation.NewWizardRepositoryRedis(rdb, stateTTL), nil
	default:
		return nil, fmt.Errorf("unknown WIZARD_STORE %q", cfg.Wizard.Store)
	}
}

func newBlobStore(cfg config.StorageConfig) (storage.BlobStore, error) {
	switch cfg.Provider {
	case "supabase":
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return nil, fmt.Errorf("supabase storage needs SUPABASE_URL and SUPABASE_KEY")
		}
		return storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Bucket), nil
	case "", "local":
		return storage.NewLocalStore(cfg.LocalDir), nil
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_PROVIDER %q", cfg.Provider)
	}
}
