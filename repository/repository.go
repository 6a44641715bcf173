package repository

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-chain-api/models"
)

// ClientRepo answers existence checks against the clients table.
type ClientRepo struct {
	DB *gorm.DB
}

func NewClientRepo(db *gorm.DB) *ClientRepo {
	return &ClientRepo{DB: db}
}

func (r *ClientRepo) ClientExists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.Client{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MenuRepo looks up menu items for the order service.
type MenuRepo struct {
	DB *gorm.DB
}

func NewMenuRepo(db *gorm.DB) *MenuRepo {
	return &MenuRepo{DB: db}
}

func (r *MenuRepo) FindMenu(id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := r.DB.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepo) MenuReferenced(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.OrderItem{}).Where("menu_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
