package reviewrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/review"

	"github.com/google/uuid"
)

type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating       int       `gorm:"type:int;not null"`
	Comment      string    `gorm:"type:text;not null"`
	Verdict      int       `gorm:"type:int;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:           r.ID().Bytes(),
		OrderID:      r.OrderID().Bytes(),
		UserID:       r.UserID().Bytes(),
		RestaurantID: r.RestaurantID().Bytes(),
		Rating:       r.Rating(),
		Comment:      r.Comment(),
		Verdict:      int(r.Verdict()),
		CreatedAt:    r.CreatedAt().UTC().Truncate(time.Microsecond),
	}
}
