//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	bookingHTTP "github.com/tair/bookmypanditji/internal/booking/delivery/http"
	catalogHTTP "github.com/tair/bookmypanditji/internal/catalog/delivery/http"
	chatHTTP "github.com/tair/bookmypanditji/internal/chat/delivery/http"
	collectionHTTP "github.com/tair/bookmypanditji/internal/collection/delivery/http"
	"github.com/tair/bookmypanditji/internal/config"
	registrationHTTP "github.com/tair/bookmypanditji/internal/registration/delivery/http"
)

// Wire sets
var CatalogSet = wire.NewSet(
	ProvideSnapshot,
	ProvideCatalogRepository,
	ProvideListItemsHandler,
	ProvideGetItemHandler,
	ProvideGetStatsHandler,
	ProvideRelatedItemsHandler,
	ProvidePageSizes,
	catalogHTTP.NewCatalogHandler,
)

var BookingSet = wire.NewSet(
	ProvideBookingSettings,
	ProvideQuoteBookingHandler,
	ProvideCreateBookingHandler,
	ProvideGetBookingHandler,
	bookingHTTP.NewBookingHandler,
)

var VisitorSet = wire.NewSet(
	ProvideCollectionService,
	collectionHTTP.NewCollectionHandler,
	ProvideChatService,
	chatHTTP.NewChatHandler,
)

var RegistrationSet = wire.NewSet(
	ProvideRegistrationSettings,
	ProvideSessionStore,
	ProvideStartRegistrationHandler,
	ProvideNavigateRegistrationHandler,
	ProvideGetSessionHandler,
	ProvideGetRegistrationHandler,
	registrationHTTP.NewRegistrationHandler,
)

var AllHandlersSet = wire.NewSet(
	ProvideMetrics,
	CatalogSet,
	BookingSet,
	VisitorSet,
	RegistrationSet,
	ProvideHandlers,
)

// InitializeApp builds the service with all dependencies
func InitializeApp(cfg config.Config, infra Infrastructure) (*App, error) {
	wire.Build(
		AllHandlersSet,
		NewApp,
	)
	return nil, nil
}
