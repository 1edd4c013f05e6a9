package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-commerce/internal/orders/domain"
	apperrors "go-commerce/pkg/errors"
)

// OrderModel is the GORM model for orders (persistence layer)
type OrderModel struct {
	ID            string             `gorm:"primaryKey;size:64"`
	CustomerID    string             `gorm:"index;size:64;not null"`
	Status        domain.OrderStatus `gorm:"size:20;not null;default:'created'"`
	TransactionID string             `gorm:"size:64"`
	CreatedAt     time.Time
	PaidAt        *time.Time
	Lines         []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM model for order lines
type OrderLineModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     string `gorm:"index;size:64;not null"`
	Position    int    `gorm:"not null"`
	ProductID   string `gorm:"size:64;not null"`
	ProductName string `gorm:"size:255"`
	Quantity    int    `gorm:"not null"`
	// Amounts are persisted as decimal strings to avoid float drift
	Price    string `gorm:"size:32;not null"`
	Currency string `gorm:"size:8;not null"`
}

// TableName returns the table name for GORM
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *gorm.DB
}

// NewPostgresOrderRepository creates a new PostgreSQL order repository
func NewPostgresOrderRepository(db *gorm.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Migrate runs auto-migration for the order models
func (r *PostgresOrderRepository) Migrate() error {
	return r.db.AutoMigrate(&OrderModel{}, &OrderLineModel{})
}

// GetByID retrieves an order by ID
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var model OrderModel

	result := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewErrorf(domain.KindOrderNotFound, "order %s not found", id)
		}
		return nil, apperrors.NewInternal("failed to get order", result.Error)
	}

	return toDomain(&model)
}

// Save persists an order, replacing its line set
func (r *PostgresOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	model := toModel(order)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&OrderModel{
			ID:            model.ID,
			CustomerID:    model.CustomerID,
			Status:        model.Status,
			TransactionID: model.TransactionID,
			CreatedAt:     model.CreatedAt,
			PaidAt:        model.PaidAt,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", model.ID).Delete(&OrderLineModel{}).Error; err != nil {
			return err
		}
		if len(model.Lines) == 0 {
			return nil
		}
		return tx.Create(&model.Lines).Error
	})
	if err != nil {
		return apperrors.NewInternal("failed to save order", err)
	}
	return nil
}

// Delete removes an order by ID
func (r *PostgresOrderRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewInternal("failed to delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewErrorf(domain.KindOrderNotFound, "order %s not found", id)
	}
	return nil
}

// toModel converts a domain aggregate to GORM models
func toModel(order *domain.Order) *OrderModel {
	model := &OrderModel{
		ID:            order.ID(),
		CustomerID:    order.CustomerID(),
		Status:        order.Status(),
		TransactionID: order.TransactionID(),
		CreatedAt:     order.CreatedAt(),
		PaidAt:        order.PaidAt(),
	}
	for i, line := range order.Lines() {
		model.Lines = append(model.Lines, OrderLineModel{
			OrderID:     order.ID(),
			Position:    i,
			ProductID:   line.ProductID(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			Price:       line.Price().Amount().String(),
			Currency:    line.Price().Currency(),
		})
	}
	return model
}

// toDomain converts GORM models back to the domain aggregate
func toDomain(model *OrderModel) (*domain.Order, error) {
	lines := make([]domain.OrderLine, 0, len(model.Lines))
	for _, lm := range model.Lines {
		price, err := domain.NewMoneyFromString(lm.Price, lm.Currency)
		if err != nil {
			return nil, apperrors.NewInternal("corrupt line price", err)
		}
		line, err := domain.NewOrderLine(lm.ProductID, lm.ProductName, lm.Quantity, price)
		if err != nil {
			return nil, apperrors.NewInternal("corrupt order line", err)
		}
		lines = append(lines, line)
	}

	order, err := domain.Restore(
		model.ID,
		model.CustomerID,
		lines,
		model.Status,
		model.CreatedAt,
		model.PaidAt,
		model.TransactionID,
	)
	if err != nil {
		return nil, apperrors.NewInternal("corrupt order lines", err)
	}
	return order, nil
}
