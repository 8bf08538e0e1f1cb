package components

import (
	"store-reservation/internal/handler"
	"store-reservation/internal/handler/api"
	"store-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMemberHandler,
		api.NewStoreHandler,
		api.NewReservationHandler,
		api.NewKioskHandler,
		api.NewReviewHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	member *api.MemberHandler,
	store *api.StoreHandler,
	reservation *api.ReservationHandler,
	kiosk *api.KioskHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Member:      member,
		Store:       store,
		Reservation: reservation,
		Kiosk:       kiosk,
		Review:      review,
	}
}
