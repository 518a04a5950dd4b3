package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sopejohn/freshmart/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindRecent(ctx context.Context, limit int) ([]models.Order, error)
	TopItems(ctx context.Context, limit int) ([]models.TopItem, error)
	DailyCounts(ctx context.Context, days int) ([]models.DailyCount, error)
	MonthlyRevenue(ctx context.Context, months int) ([]models.MonthlyRevenue, error)
}

type gormOrderRepo struct {
	db *gorm.DB
}

func NewGormOrderRepo(db *gorm.DB) OrderRepository {
	return &gormOrderRepo{db: db}
}

func (r *gormOrderRepo) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepo) FindRecent(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepo) TopItems(ctx context.Context, limit int) ([]models.TopItem, error) {
	var items []models.TopItem
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("name, SUM(quantity) AS orders, SUM(quantity * unit_price) AS revenue").
		Group("name").
		Order("orders desc").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormOrderRepo) DailyCounts(ctx context.Context, days int) ([]models.DailyCount, error) {
	since := time.Now().AddDate(0, 0, -days)

	var counts []models.DailyCount
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS orders").
		Where("created_at >= ?", since).
		Group("day").
		Order("day asc").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *gormOrderRepo) MonthlyRevenue(ctx context.Context, months int) ([]models.MonthlyRevenue, error) {
	since := time.Now().AddDate(0, -months, 0)

	var rows []models.MonthlyRevenue
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("to_char(created_at, 'YYYY-MM') AS month, SUM(total) AS revenue, COUNT(*) AS orders").
		Where("created_at >= ?", since).
		Group("month").
		Order("month asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
