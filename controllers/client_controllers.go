package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-chain-api/models"
	"restaurant-chain-api/utils"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

type clientReq struct {
	Name       string  `json:"name" binding:"required"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	SessionKey *string `json:"session_key"`
}

// GetAllClients
func (cc *ClientController) GetAllClients(c *gin.Context) {
	var clients []models.Client
	if err := cc.DB.Find(&clients).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of clients", clients)
}

// CreateClient
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req clientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	client := models.Client{
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		SessionKey: req.SessionKey,
	}
	if err := cc.DB.Create(&client).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	utils.InfoLogger.Printf("New client created (ID=%d)", client.ID)

	utils.RespondJSON(c, http.StatusCreated, "Client created", client)
}

// UpdateClient
func (cc *ClientController) UpdateClient(c *gin.Context) {
	idStr := c.Param("client_id")
	id, _ := strconv.Atoi(idStr)

	var req clientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := cc.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
			return
		}
		respondStorageError(c, err)
		return
	}

	client.Name = req.Name
	client.Address = req.Address
	client.Phone = req.Phone
	if req.SessionKey != nil {
		client.SessionKey = req.SessionKey
	}
	if err := cc.DB.Save(&client).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client updated", client)
}

// DeleteClient
func (cc *ClientController) DeleteClient(c *gin.Context) {
	idStr := c.Param("client_id")
	id, _ := strconv.Atoi(idStr)

	var client models.Client
	if err := cc.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
			return
		}
		respondStorageError(c, err)
		return
	}

	if err := cc.DB.Delete(&client).Error; err != nil {
		respondStorageError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client deleted", gin.H{"client_id": client.ID})
}
