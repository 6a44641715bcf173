package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-chain-api/models"
)

// Domain errors surfaced by the order service. Controllers map them to
// HTTP status codes; anything else is an unclassified storage failure.
var (
	ErrClientNotFound    = errors.New("client not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrMenuNotFound      = errors.New("menu item not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrOrderNotDeletable = errors.New("cannot delete order in current state")
	ErrInvalidQuantity   = fmt.Errorf("quantity must be between 1 and %d", MaxQuantity)
)

// MaxQuantity caps a single order line.
const MaxQuantity = 1000

// ClientDirectory answers whether a client exists.
type ClientDirectory interface {
	ClientExists(id uint) (bool, error)
}

// Catalog looks up menu items. FindMenu returns (nil, nil) when absent.
type Catalog interface {
	FindMenu(id uint) (*models.Menu, error)
}

// OrderService owns the order lifecycle: creation, forward-only status
// transitions, line items, totals and guarded deletion.
type OrderService struct {
	db      *gorm.DB
	clients ClientDirectory
	catalog Catalog
}

func NewOrderService(db *gorm.DB, clients ClientDirectory, catalog Catalog) *OrderService {
	return &OrderService{
		db:      db,
		clients: clients,
		catalog: catalog,
	}
}

// CreateOrder inserts a new queued order for the given client.
func (s *OrderService) CreateOrder(clientID uint) (*models.Order, error) {
	exists, err := s.clients.ClientExists(clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	order := models.Order{
		ClientID: clientID,
		Status:   models.StatusQueued,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// AdvanceStatus moves an order one step forward. Once delivered it stays
// delivered; the second return value reports that case.
func (s *OrderService) AdvanceStatus(orderID uint) (string, bool, error) {
	order, err := s.findOrder(orderID)
	if err != nil {
		return "", false, err
	}

	if order.Status == models.StatusDelivered {
		return models.StatusDelivered, true, nil
	}

	next := models.NextStatus(order.Status)
	if err := s.db.Model(order).Update("status", next).Error; err != nil {
		return "", false, err
	}
	return next, false, nil
}

// AttachItem adds a line to an order. Attaching the same menu item twice
// creates two separate lines, never a merged quantity.
func (s *OrderService) AttachItem(orderID, menuID uint, quantity int) (*models.OrderItem, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.findOrder(orderID); err != nil {
		return nil, err
	}

	menu, err := s.catalog.FindMenu(menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}

	item := models.OrderItem{
		OrderID:  orderID,
		MenuID:   menuID,
		Quantity: quantity,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes one line after verifying it belongs to the order.
func (s *OrderService) RemoveItem(orderID, detailID uint) error {
	var item models.OrderItem
	err := s.db.Where("id = ? AND order_id = ?", detailID, orderID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderItemNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

// DeleteOrder removes an order together with its lines. Delivered orders
// are kept forever.
func (s *OrderService) DeleteOrder(orderID uint) error {
	order, err := s.findOrder(orderID)
	if err != nil {
		return err
	}
	if !models.Deletable(order.Status) {
		return ErrOrderNotDeletable
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}

// TotalPrice sums price * quantity over every line of the order. An order
// without lines totals 0.
func (s *OrderService) TotalPrice(orderID uint) (float64, error) {
	if _, err := s.findOrder(orderID); err != nil {
		return 0, err
	}

	var total float64
	err := s.db.Model(&models.OrderItem{}).
		Joins("JOIN menus ON menus.id = order_items.menu_id").
		Where("order_items.order_id = ?", orderID).
		Select("COALESCE(SUM(menus.price * order_items.quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ListOrders returns every order without its lines.
func (s *OrderService) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListItems returns the lines of one order.
func (s *OrderService) ListItems(orderID uint) ([]models.OrderItem, error) {
	if _, err := s.findOrder(orderID); err != nil {
		return nil, err
	}

	var items []models.OrderItem
	if err := s.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *OrderService) findOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}
