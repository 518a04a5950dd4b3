package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sopejohn/freshmart/models"
	"github.com/Sopejohn/freshmart/repository"
)

type OrderLine struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName string      `json:"customer_name" binding:"required"`
	Items        []OrderLine `json:"items" binding:"required,dive"`
}

type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

type OrderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
	logger    *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, menuRepo repository.MenuRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		logger:    logger,
	}
}

// CreateOrder resolves each line against the menu, prices the order and
// persists it. The total is computed server-side; client-supplied totals are
// never trusted.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "At least one item is required"}
	}

	order := &models.Order{
		CustomerName: req.CustomerName,
		Status:       models.OrderStatusPlaced,
	}

	for _, line := range req.Items {
		item, err := s.menuRepo.FindByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Unknown menu item: " + line.MenuItemID.String()}
		}
		if !item.Available {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: item.Name + " is currently unavailable"}
		}

		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			UnitPrice:  item.Price,
		})
		order.Total += float64(line.Quantity) * item.Price
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist order", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create order"}
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)),
	)
	return order, nil
}

func (s *OrderService) RecentOrders(ctx context.Context, limit int) ([]models.Order, *ServiceError) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	orders, err := s.orderRepo.FindRecent(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to load recent orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load orders"}
	}
	return orders, nil
}
