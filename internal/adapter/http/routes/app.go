package routes

import (
	"context"
	"fmt"
	"log"

	"engagement_service/internal/adapter/http/handlers"
	"engagement_service/internal/adapter/persistence/memory"
	"engagement_service/internal/adapter/persistence/repository"
	"engagement_service/internal/infrastructure/config"
	"engagement_service/internal/infrastructure/database"
	"engagement_service/internal/infrastructure/dispatch"
	"engagement_service/internal/infrastructure/messaging"
	"engagement_service/internal/infrastructure/notifications"
	"engagement_service/internal/usecase"
	"engagement_service/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/mongo"
)

const serviceName = "engagement-service"

type app struct {
	handlers   Handlers
	dispatcher *dispatch.Dispatcher
	mongo      *mongo.Client
}

func (a *app) close() {
	a.dispatcher.Close()
	if a.mongo != nil {
		if err := a.mongo.Disconnect(context.Background()); err != nil {
			log.Printf("[mongo] disconnect err=%v", err)
		}
	}
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	deps, err := storeDependencies(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var messenger interfaces.IMessenger = messaging.LogMessenger{}
	var mongoClient *mongo.Client
	if cfg.MongoURI != "" {
		mongoClient, err = database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		mm := messaging.NewMongoMessenger(mongoClient, cfg.MongoDB, cfg.MessagesCollection)
		if err := mm.EnsureIndexes(ctx); err != nil {
			log.Printf("[mongo] ensure indexes err=%v", err)
		}
		messenger = mm
	}

	notifier := notifications.NewWebhookNotifier(serviceName, cfg.NotifyWebhookURL)
	dispatcher := dispatch.NewDispatcher(messenger, notifier, cfg.DispatchBuffer, cfg.DispatchWorkers)

	deps.Effects = dispatcher
	deps.Locks = usecase.NewKeyedLocker()

	return &app{
		handlers:   newHandlers(deps, cfg),
		dispatcher: dispatcher,
		mongo:      mongoClient,
	}, nil
}

func storeDependencies(ctx context.Context, cfg *config.Config) (usecase.Dependencies, error) {
	switch cfg.StoreType {
	case config.StoreMemory:
		store := memory.NewStore()
		return usecase.Dependencies{
			Requests:   store,
			Quotes:     store.Quotes(),
			Statuses:   store.ProviderStatuses(),
			Agreements: store.Agreements(),
			Workflows:  store.Workflows(),
			UnitOfWork: store,
		}, nil
	default:
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return usecase.Dependencies{}, fmt.Errorf("create dynamodb client: %w", err)
		}
		return usecase.Dependencies{
			Requests:   repository.NewServiceRequestDynamoRepository(ddb),
			Quotes:     repository.NewQuoteDynamoRepository(ddb),
			Statuses:   repository.NewProviderStatusDynamoRepository(ddb),
			Agreements: repository.NewAgreementDynamoRepository(ddb),
			Workflows:  repository.NewWorkflowDynamoRepository(ddb),
			UnitOfWork: repository.NewDynamoUnitOfWork(ddb),
		}, nil
	}
}

func newHandlers(deps usecase.Dependencies, cfg *config.Config) Handlers {
	return Handlers{
		Requests:       handlers.NewServiceRequestHandler(usecase.NewRequestLifecycleUseCase(deps)),
		Quotes:         handlers.NewQuoteHandler(usecase.NewQuoteUseCase(deps, cfg.QuoteTTL)),
		Agreements:     handlers.NewAgreementHandler(usecase.NewAgreementUseCase(deps)),
		ProviderStatus: handlers.NewProviderStatusHandler(usecase.NewProviderStatusUseCase(deps)),
		Workflows:      handlers.NewWorkflowHandler(usecase.NewWorkflowUseCase(deps)),
	}
}
