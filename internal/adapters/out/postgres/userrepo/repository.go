// Package userrepo reads the users table owned by the account service.
package userrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Active bool      `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// Add provisions a user row. Accounts are normally written by the account service.
func (d *GormUserDirectory) Add(ctx context.Context, id kernel.UUID, name string, active bool) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return d.db.WithContext(ctx).Create(&UserDTO{ID: id.Bytes(), Name: name, Active: active}).Error
}

// IsActive is false both for unknown and for deactivated users.
func (d *GormUserDirectory) IsActive(ctx context.Context, userID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).Select("active").First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return dto.Active, nil
}
