package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-chain-api/models"
	"restaurant-chain-api/repository"
	"restaurant-chain-api/utils"
)

type MenuController struct {
	DB   *gorm.DB
	Repo *repository.MenuRepo
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db, Repo: repository.NewMenuRepo(db)}
}

type menuReq struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

// GetAllMenus -> list every menu item
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Find(&menus).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByID -> detail of one menu item
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		respondStorageError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req menuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}

	menu := models.Menu{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := mc.DB.Create(&menu).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var req menuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must not be negative"))
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		respondStorageError(c, err)
		return
	}

	menu.Name = req.Name
	menu.Price = req.Price
	if err := mc.DB.Save(&menu).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu refuses to remove an item that orders still reference.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		respondStorageError(c, err)
		return
	}

	referenced, err := mc.Repo.MenuReferenced(menu.ID)
	if err != nil {
		respondStorageError(c, err)
		return
	}
	if referenced {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menu item is referenced by existing orders"))
		return
	}

	if err := mc.DB.Delete(&menu).Error; err != nil {
		respondStorageError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"item_id": menu.ID})
}
