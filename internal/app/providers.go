// Package app assembles the catalog service from its infrastructure.
package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	bookingHTTP "github.com/tair/bookmypanditji/internal/booking/delivery/http"
	bookingDomain "github.com/tair/bookmypanditji/internal/booking/domain"
	bookingCommand "github.com/tair/bookmypanditji/internal/booking/usecase/command"
	bookingQuery "github.com/tair/bookmypanditji/internal/booking/usecase/query"
	catalogHTTP "github.com/tair/bookmypanditji/internal/catalog/delivery/http"
	catalogDomain "github.com/tair/bookmypanditji/internal/catalog/domain"
	catalogRepository "github.com/tair/bookmypanditji/internal/catalog/repository"
	catalogQuery "github.com/tair/bookmypanditji/internal/catalog/usecase/query"
	chatHTTP "github.com/tair/bookmypanditji/internal/chat/delivery/http"
	chatDomain "github.com/tair/bookmypanditji/internal/chat/domain"
	chatUsecase "github.com/tair/bookmypanditji/internal/chat/usecase"
	collectionHTTP "github.com/tair/bookmypanditji/internal/collection/delivery/http"
	collectionUsecase "github.com/tair/bookmypanditji/internal/collection/usecase"
	"github.com/tair/bookmypanditji/internal/config"
	registrationHTTP "github.com/tair/bookmypanditji/internal/registration/delivery/http"
	registrationDomain "github.com/tair/bookmypanditji/internal/registration/domain"
	registrationRepository "github.com/tair/bookmypanditji/internal/registration/repository"
	registrationCommand "github.com/tair/bookmypanditji/internal/registration/usecase/command"
	registrationQuery "github.com/tair/bookmypanditji/internal/registration/usecase/query"
	"github.com/tair/bookmypanditji/kafka"
	"github.com/tair/bookmypanditji/pkg/httpx"
	"github.com/tair/bookmypanditji/pkg/kvstore"
)

// Infrastructure is everything main connects before the service is built
type Infrastructure struct {
	Catalog       catalogDomain.CatalogRepository
	Bookings      bookingDomain.BookingRepository
	Registrations registrationDomain.RegistrationRepository
	Store         kvstore.Store
	Publisher     kafka.EventPublisher
	Registerer    prometheus.Registerer
}

// App is the assembled service
type App struct {
	Router   *mux.Router
	Snapshot *catalogRepository.Snapshot
}

// Handlers groups the HTTP delivery of every module
type Handlers struct {
	Catalog      *catalogHTTP.CatalogHandler
	Booking      *bookingHTTP.BookingHandler
	Collection   *collectionHTTP.CollectionHandler
	Registration *registrationHTTP.RegistrationHandler
	Chat         *chatHTTP.ChatHandler
}

// Catalog

// ProvideSnapshot caches the traced catalog source
func ProvideSnapshot(infra Infrastructure) *catalogRepository.Snapshot {
	return catalogRepository.NewSnapshot(catalogRepository.NewTracingCatalogRepository(infra.Catalog), infra.Registerer)
}

// ProvideCatalogRepository serves reads from the snapshot
func ProvideCatalogRepository(snapshot *catalogRepository.Snapshot) catalogDomain.CatalogRepository {
	return snapshot
}

func ProvideListItemsHandler(repo catalogDomain.CatalogRepository) *catalogQuery.ListItemsHandler {
	return catalogQuery.NewListItemsHandler(repo)
}

func ProvideGetItemHandler(repo catalogDomain.CatalogRepository) *catalogQuery.GetItemHandler {
	return catalogQuery.NewGetItemHandler(repo)
}

func ProvideGetStatsHandler(repo catalogDomain.CatalogRepository) *catalogQuery.GetStatsHandler {
	return catalogQuery.NewGetStatsHandler(repo)
}

func ProvideRelatedItemsHandler(repo catalogDomain.CatalogRepository) *catalogQuery.RelatedItemsHandler {
	return catalogQuery.NewRelatedItemsHandler(repo)
}

func ProvidePageSizes(cfg config.Config) catalogHTTP.PageSizes {
	return catalogHTTP.PageSizes{Products: cfg.ProductsPageSize, Pandits: cfg.PanditsPageSize}
}

// ProvideMetrics registers the shared request instruments
func ProvideMetrics(infra Infrastructure) *httpx.Metrics {
	return httpx.NewMetrics(infra.Registerer, "catalog")
}

// Booking

func ProvideBookingSettings(cfg config.Config) bookingCommand.Settings {
	return bookingCommand.Settings{SubmitDelay: cfg.SubmitDelay}
}

func ProvideQuoteBookingHandler(repo catalogDomain.CatalogRepository, settings bookingCommand.Settings) *bookingCommand.QuoteBookingHandler {
	return bookingCommand.NewQuoteBookingHandler(repo, settings)
}

func ProvideCreateBookingHandler(
	quoter *bookingCommand.QuoteBookingHandler,
	infra Infrastructure,
	settings bookingCommand.Settings,
) *bookingCommand.CreateBookingHandler {
	return bookingCommand.NewCreateBookingHandler(quoter, infra.Bookings, infra.Publisher, settings, infra.Registerer)
}

func ProvideGetBookingHandler(infra Infrastructure) *bookingQuery.GetBookingHandler {
	return bookingQuery.NewGetBookingHandler(infra.Bookings)
}

// Collections and chat

func ProvideCollectionService(infra Infrastructure, repo catalogDomain.CatalogRepository) *collectionUsecase.CollectionService {
	return collectionUsecase.NewCollectionService(infra.Store, repo, infra.Registerer)
}

func ProvideChatService(infra Infrastructure) *chatUsecase.ChatService {
	return chatUsecase.NewChatService(infra.Store, chatDomain.NewBot(), infra.Registerer)
}

// Registration

func ProvideRegistrationSettings(cfg config.Config) registrationCommand.Settings {
	return registrationCommand.Settings{SubmitDelay: cfg.SubmitDelay}
}

func ProvideSessionStore(infra Infrastructure) registrationDomain.SessionStore {
	return registrationRepository.NewKVSessionStore(infra.Store)
}

func ProvideStartRegistrationHandler(
	sessions registrationDomain.SessionStore,
	settings registrationCommand.Settings,
) *registrationCommand.StartRegistrationHandler {
	return registrationCommand.NewStartRegistrationHandler(registrationDomain.DefaultFlows(), sessions, settings)
}

func ProvideNavigateRegistrationHandler(
	sessions registrationDomain.SessionStore,
	infra Infrastructure,
	settings registrationCommand.Settings,
) *registrationCommand.NavigateRegistrationHandler {
	return registrationCommand.NewNavigateRegistrationHandler(
		registrationDomain.DefaultFlows(), sessions, infra.Registrations, infra.Publisher, settings, infra.Registerer,
	)
}

func ProvideGetSessionHandler(sessions registrationDomain.SessionStore) *registrationQuery.GetSessionHandler {
	return registrationQuery.NewGetSessionHandler(sessions)
}

func ProvideGetRegistrationHandler(infra Infrastructure) *registrationQuery.GetRegistrationHandler {
	return registrationQuery.NewGetRegistrationHandler(infra.Registrations)
}

// ProvideHandlers groups the HTTP handlers
func ProvideHandlers(
	catalog *catalogHTTP.CatalogHandler,
	booking *bookingHTTP.BookingHandler,
	collection *collectionHTTP.CollectionHandler,
	registration *registrationHTTP.RegistrationHandler,
	chat *chatHTTP.ChatHandler,
) Handlers {
	return Handlers{
		Catalog:      catalog,
		Booking:      booking,
		Collection:   collection,
		Registration: registration,
		Chat:         chat,
	}
}

// NewApp registers every module's routes and a readiness probe on a new router
func NewApp(handlers Handlers, snapshot *catalogRepository.Snapshot) *App {
	router := mux.NewRouter()
	handlers.Catalog.RegisterRoutes(router)
	handlers.Booking.RegisterRoutes(router)
	handlers.Collection.RegisterRoutes(router)
	handlers.Registration.RegisterRoutes(router)
	handlers.Chat.RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !snapshot.Ready() {
			httpx.RespondError(w, http.StatusServiceUnavailable, "Catalog not loaded")
			return
		}
		httpx.RespondJSON(w, http.StatusOK, httpx.Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")

	return &App{Router: router, Snapshot: snapshot}
}
