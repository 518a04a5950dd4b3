package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sopejohn/freshmart/controllers"
	"github.com/Sopejohn/freshmart/models"
)

// ---- mock menu repository ----

type mockMenuRepo struct {
	items       []models.MenuItem
	byID        *models.MenuItem
	findErr     error
	createErr   error
	updateErr   error
	deleteErr   error
	gotCategory string
	gotSearch   string
}

func (m *mockMenuRepo) Create(_ context.Context, item *models.MenuItem) error {
	return m.createErr
}
func (m *mockMenuRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.MenuItem, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byID, nil
}
func (m *mockMenuRepo) FindAll(_ context.Context, category, search string) ([]models.MenuItem, error) {
	m.gotCategory = category
	m.gotSearch = search
	return m.items, m.findErr
}
func (m *mockMenuRepo) Update(_ context.Context, _ *models.MenuItem) error { return m.updateErr }
func (m *mockMenuRepo) SetAvailability(_ context.Context, _ uuid.UUID, _ bool) error {
	return m.updateErr
}
func (m *mockMenuRepo) Delete(_ context.Context, _ uuid.UUID) error { return m.deleteErr }

func menuRouter(repo *mockMenuRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mc := controllers.NewMenuController(repo, zap.NewNop())
	r.GET("/admin/menu", mc.ListItems)
	r.POST("/admin/menu", mc.CreateItem)
	r.PUT("/admin/menu/:id", mc.UpdateItem)
	r.PATCH("/admin/menu/:id/availability", mc.SetAvailability)
	r.DELETE("/admin/menu/:id", mc.DeleteItem)
	return r
}

// ---- tests ----

func TestListItems_PassesFilters(t *testing.T) {
	repo := &mockMenuRepo{items: []models.MenuItem{
		{Name: "Jollof Rice", Price: 18.99, Category: "main", Available: true},
	}}
	r := menuRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/menu?category=main&search=jollof", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "main", repo.gotCategory)
	assert.Equal(t, "jollof", repo.gotSearch)

	var items []models.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestCreateItem_Valid(t *testing.T) {
	r := menuRouter(&mockMenuRepo{})

	body, _ := json.Marshal(map[string]any{
		"name":        "Pepper Soup",
		"description": "Aromatic and spicy",
		"price":       15.99,
		"category":    "soup",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/menu", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.MenuItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.True(t, item.Available, "new items default to available")
}

func TestCreateItem_RejectsNonPositivePrice(t *testing.T) {
	r := menuRouter(&mockMenuRepo{})

	body := `{"name": "Free Lunch", "price": 0, "category": "main"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/menu", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItem_NotFound(t *testing.T) {
	r := menuRouter(&mockMenuRepo{findErr: gorm.ErrRecordNotFound})

	body := `{"name": "Suya Platter", "price": 22.99, "category": "main"}`
	req := httptest.NewRequest(http.MethodPut, "/admin/menu/"+uuid.NewString(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetAvailability_InvalidID(t *testing.T) {
	r := menuRouter(&mockMenuRepo{})

	req := httptest.NewRequest(http.MethodPatch, "/admin/menu/not-a-uuid/availability", bytes.NewBufferString(`{"available": false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteItem_NotFound(t *testing.T) {
	r := menuRouter(&mockMenuRepo{deleteErr: gorm.ErrRecordNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/admin/menu/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
