package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"restaurant-chain-api/models"
	"restaurant-chain-api/repository"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Client{}, &models.Menu{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func TestClientExists(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewClientRepo(db)

	exists, err := repo.ClientExists(1)
	require.NoError(t, err)
	assert.False(t, exists)

	client := models.Client{Name: "Diego Salas"}
	require.NoError(t, db.Create(&client).Error)

	exists, err = repo.ClientExists(client.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFindMenu(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewMenuRepo(db)

	menu, err := repo.FindMenu(1)
	require.NoError(t, err)
	assert.Nil(t, menu)

	seeded := models.Menu{Name: "Anticuchos", Price: 7.0}
	require.NoError(t, db.Create(&seeded).Error)

	menu, err = repo.FindMenu(seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, menu)
	assert.Equal(t, "Anticuchos", menu.Name)
}

func TestMenuReferenced(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewMenuRepo(db)

	menu := models.Menu{Name: "Causa", Price: 5.0}
	require.NoError(t, db.Create(&menu).Error)

	referenced, err := repo.MenuReferenced(menu.ID)
	require.NoError(t, err)
	assert.False(t, referenced)

	client := models.Client{Name: "Ines"}
	require.NoError(t, db.Create(&client).Error)
	order := models.Order{ClientID: client.ID, Status: models.StatusQueued}
	require.NoError(t, db.Create(&order).Error)
	item := models.OrderItem{OrderID: order.ID, MenuID: menu.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	referenced, err = repo.MenuReferenced(menu.ID)
	require.NoError(t, err)
	assert.True(t, referenced)
}
