package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-chain-api/repository"
	"restaurant-chain-api/services"
	"restaurant-chain-api/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	svc := services.NewOrderService(db, repository.NewClientRepo(db), repository.NewMenuRepo(db))
	return &OrderController{Service: svc}
}

// CreateOrder -> POST /orders/add?client_id=
func (oc *OrderController) CreateOrder(c *gin.Context) {
	clientID, err := queryUint(c, "client_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.CreateOrder(clientID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order added successfully", order)
}

// ChangeStatus -> PUT /orders/:order_id/change_status
func (oc *OrderController) ChangeStatus(c *gin.Context) {
	orderID := paramUint(c, "order_id")

	status, delivered, err := oc.Service.AdvanceStatus(orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	msg := "Order status changed successfully"
	if delivered {
		msg = "Order has already been delivered"
	}
	utils.RespondJSON(c, http.StatusOK, msg, gin.H{"order_id": orderID, "status": status})
}

// AddItems -> POST /orders/:order_id/add_items?item_id=&quantity=
func (oc *OrderController) AddItems(c *gin.Context) {
	orderID := paramUint(c, "order_id")

	itemID, err := queryUint(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid quantity"))
		return
	}

	item, err := oc.Service.AttachItem(orderID, itemID, quantity)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Items added to order successfully", item)
}

// RemoveItem -> DELETE /orders/:order_id/remove_item/:detail_id
func (oc *OrderController) RemoveItem(c *gin.Context) {
	orderID := paramUint(c, "order_id")
	detailID := paramUint(c, "detail_id")

	if err := oc.Service.RemoveItem(orderID, detailID); err != nil {
		respondOrderError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed from order successfully", gin.H{
		"order_id":  orderID,
		"detail_id": detailID,
	})
}

// DeleteOrder -> DELETE /orders/:order_id
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID := paramUint(c, "order_id")

	if err := oc.Service.DeleteOrder(orderID); err != nil {
		respondOrderError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order and details deleted successfully", gin.H{"order_id": orderID})
}

// TotalPrice -> GET /orders/:order_id/total_price
func (oc *OrderController) TotalPrice(c *gin.Context) {
	orderID := paramUint(c, "order_id")

	total, err := oc.Service.TotalPrice(orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order total price", gin.H{
		"order_id":    orderID,
		"total_price": total,
	})
}

// GetAllOrders -> GET /orders/all_info
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.ListOrders()
	if err != nil {
		respondOrderError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderDetails -> GET /orders/:order_id/details
func (oc *OrderController) GetOrderDetails(c *gin.Context) {
	orderID := paramUint(c, "order_id")

	items, err := oc.Service.ListItems(orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order details", items)
}

// respondOrderError maps service errors onto the status-code convention:
// missing entities 404, rule violations 400, everything else 500.
func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrOrderItemNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrOrderNotDeletable),
		errors.Is(err, services.ErrInvalidQuantity):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		respondStorageError(c, err)
	}
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(v)
}

func queryUint(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return uint(v), nil
}
