package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/cartrepo"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/notificationrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/paymentrepo"
	"fooddelivery/internal/adapters/out/postgres/reviewrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns or reads, in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&catalogrepo.OptionDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartLineDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&notificationrepo.NotificationDTO{},
		&reviewrepo.ReviewDTO{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
