package application

import (
	"context"

	"go-commerce/internal/orders/domain"
	"go-commerce/internal/orders/ports"
	"go-commerce/pkg/logger"

	"go.uber.org/zap"
)

// OrderUseCase handles order business logic
type OrderUseCase struct {
	repo      ports.OrderRepository
	gateway   ports.PaymentGateway
	publisher ports.EventPublisher
	log       *logger.Logger
}

// NewOrderUseCase creates a new order use case
func NewOrderUseCase(
	repo ports.OrderRepository,
	gateway ports.PaymentGateway,
	publisher ports.EventPublisher,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		log:       log,
	}
}

// LineInput describes one order line in a create or add request
type LineInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       domain.Money
}

// CreateOrderInput represents the input for creating an order
type CreateOrderInput struct {
	OrderID    string
	CustomerID string
	Lines      []LineInput
}

// CreateOrderOutput represents the output of creating an order
type CreateOrderOutput struct {
	Order *domain.Order
}

// CreateOrder creates a new order with the given lines
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	order, err := domain.NewOrder(input.OrderID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	for _, line := range input.Lines {
		if err := order.AddLine(line.ProductID, line.ProductName, line.Quantity, line.Price); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	// Publish event (async, don't fail on error)
	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderCreated(ctx, order); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish order created event",
				zap.Error(err),
				zap.String("order_id", order.ID()),
			)
		}
	}

	uc.log.WithContext(ctx).Info("order created",
		zap.String("order_id", order.ID()),
		zap.String("customer_id", order.CustomerID()),
		zap.Int("lines", len(order.Lines())),
	)

	return &CreateOrderOutput{Order: order}, nil
}

// GetOrderInput represents the input for getting an order
type GetOrderInput struct {
	OrderID string
}

// GetOrderOutput represents the output of getting an order
type GetOrderOutput struct {
	Order *domain.Order
}

// GetOrder retrieves an order by ID
func (uc *OrderUseCase) GetOrder(ctx context.Context, input GetOrderInput) (*GetOrderOutput, error) {
	order, err := uc.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	return &GetOrderOutput{Order: order}, nil
}

// AddLineInput represents the input for adding a line to an order
type AddLineInput struct {
	OrderID string
	Line    LineInput
}

// AddLine adds a line to an order, merging quantity on duplicate product
func (uc *OrderUseCase) AddLine(ctx context.Context, input AddLineInput) error {
	order, err := uc.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	line := input.Line
	if err := order.AddLine(line.ProductID, line.ProductName, line.Quantity, line.Price); err != nil {
		return err
	}

	return uc.repo.Save(ctx, order)
}

// RemoveLineInput represents the input for removing a line from an order
type RemoveLineInput struct {
	OrderID   string
	ProductID string
}

// RemoveLine removes a line from an order
func (uc *OrderUseCase) RemoveLine(ctx context.Context, input RemoveLineInput) error {
	order, err := uc.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	if err := order.RemoveLine(input.ProductID); err != nil {
		return err
	}

	return uc.repo.Save(ctx, order)
}

// UpdateQuantityInput represents the input for changing a line quantity
type UpdateQuantityInput struct {
	OrderID   string
	ProductID string
	Quantity  int
}

// UpdateQuantity changes the quantity of an existing line
func (uc *OrderUseCase) UpdateQuantity(ctx context.Context, input UpdateQuantityInput) error {
	order, err := uc.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	if err := order.UpdateQuantity(input.ProductID, input.Quantity); err != nil {
		return err
	}

	return uc.repo.Save(ctx, order)
}

// PayOrderInput represents the input for paying an order
type PayOrderInput struct {
	OrderID string
}

// Receipt summarizes a completed payment
type Receipt struct {
	OrderID       string
	TransactionID string
	Amount        string
	Status        string
}

// PayOrder charges an order through the payment gateway. The charge runs
// between eligibility validation and the status commit, so a gateway
// failure leaves the order in the Created state and unsaved.
func (uc *OrderUseCase) PayOrder(ctx context.Context, input PayOrderInput) (*Receipt, error) {
	order, err := uc.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if err := order.PrepareForPayment(); err != nil {
		return nil, err
	}

	transactionID, err := uc.gateway.Charge(ctx, order.ID(), order.TotalAmount())
	if err != nil {
		uc.log.WithContext(ctx).Error("payment charge failed",
			zap.Error(err),
			zap.String("order_id", order.ID()),
		)
		return nil, err
	}

	if err := order.CommitPaid(transactionID); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderPaid(ctx, order, transactionID); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish order paid event",
				zap.Error(err),
				zap.String("order_id", order.ID()),
			)
		}
	}

	uc.log.WithContext(ctx).Info("order paid",
		zap.String("order_id", order.ID()),
		zap.String("transaction_id", transactionID),
		zap.String("amount", order.TotalAmount().String()),
	)

	return &Receipt{
		OrderID:       order.ID(),
		TransactionID: transactionID,
		Amount:        order.TotalAmount().String(),
		Status:        string(order.Status()),
	}, nil
}

// CancelOrderInput represents the input for cancelling an order
type CancelOrderInput struct {
	OrderID string
}

// CancelOrder cancels an unpaid order
func (uc *OrderUseCase) CancelOrder(ctx context.Context, input CancelOrderInput) error {
	order, err := uc.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	if err := order.Cancel(); err != nil {
		return err
	}

	if err := uc.repo.Save(ctx, order); err != nil {
		return err
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishOrderCancelled(ctx, order); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish order cancelled event",
				zap.Error(err),
				zap.String("order_id", order.ID()),
			)
		}
	}

	return nil
}

// RefundOrderInput represents the input for refunding a paid order
type RefundOrderInput struct {
	OrderID string
}

// RefundOrder refunds the full amount of a paid order's transaction.
// The order stays Paid; only the gateway transaction flips to refunded.
func (uc *OrderUseCase) RefundOrder(ctx context.Context, input RefundOrderInput) error {
	order, err := uc.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	if !order.IsPaid() {
		return domain.NewError(domain.KindTransactionNotFound, "order has no completed payment")
	}

	if err := uc.gateway.Refund(ctx, order.TransactionID(), order.TotalAmount()); err != nil {
		return err
	}

	uc.log.WithContext(ctx).Info("order refunded",
		zap.String("order_id", order.ID()),
		zap.String("transaction_id", order.TransactionID()),
	)

	return nil
}
