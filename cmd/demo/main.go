package main

import (
	"context"
	"fmt"
	"strings"

	"go-commerce/internal/orders/adapters"
	"go-commerce/internal/orders/application"
	"go-commerce/internal/orders/domain"
	"go-commerce/pkg/logger"
)

// Console walkthrough of the order and payment flow over in-memory
// adapters. No external services required.
func main() {
	log := logger.New("demo", "error", "console")
	defer log.Sync()

	ctx := context.Background()

	repo := adapters.NewInMemoryOrderRepository()
	gateway := adapters.NewFakePaymentGateway()
	useCase := application.NewOrderUseCase(repo, gateway, nil, log)

	fmt.Println("ORDER AND PAYMENT MANAGEMENT DEMO")
	separator()

	// Order 1: electronics
	fmt.Println("1. CREATING ORDERS")
	fmt.Println("\nORDER #1: electronics")
	order1, err := useCase.CreateOrder(ctx, application.CreateOrderInput{
		CustomerID: "cust-001",
		Lines: []application.LineInput{
			{ProductID: "laptop-001", ProductName: "Lenovo laptop", Quantity: 1, Price: money("899.99")},
			{ProductID: "mouse-001", ProductName: "Wireless mouse", Quantity: 2, Price: money("29.99")},
			{ProductID: "keyboard-001", ProductName: "Mechanical keyboard", Quantity: 1, Price: money("89.99")},
		},
	})
	if err != nil {
		fmt.Println("   ✗ error:", err)
		return
	}
	printOrder(order1.Order)

	// Order 2: books
	fmt.Println("\nORDER #2: books")
	order2, err := useCase.CreateOrder(ctx, application.CreateOrderInput{
		CustomerID: "cust-002",
		Lines: []application.LineInput{
			{ProductID: "book-001", ProductName: "Clean Code", Quantity: 1, Price: money("49.99")},
			{ProductID: "book-002", ProductName: "Design Patterns", Quantity: 2, Price: money("39.99")},
		},
	})
	if err != nil {
		fmt.Println("   ✗ error:", err)
		return
	}
	printOrder(order2.Order)

	separator()
	fmt.Println("2. PAYMENT FLOW")

	fmt.Println("\nPAYING ORDER #1:")
	receipt1, err := useCase.PayOrder(ctx, application.PayOrderInput{OrderID: order1.Order.ID()})
	if err != nil {
		fmt.Println("   ✗ error:", err)
	} else {
		printReceipt(receipt1)
	}

	fmt.Println("\nPAYING AN EMPTY ORDER:")
	emptyOrder, _ := useCase.CreateOrder(ctx, application.CreateOrderInput{CustomerID: "cust-003"})
	if _, err := useCase.PayOrder(ctx, application.PayOrderInput{OrderID: emptyOrder.Order.ID()}); err != nil {
		fmt.Println("   ✓ correctly rejected:", err)
	} else {
		fmt.Println("   ✗ should have been rejected")
	}

	separator()
	fmt.Println("3. INVARIANT CHECKS")

	fmt.Println("\nMODIFYING PAID ORDER #1:")
	if err := useCase.AddLine(ctx, application.AddLineInput{
		OrderID: order1.Order.ID(),
		Line:    application.LineInput{ProductID: "cable-001", ProductName: "USB-C cable", Quantity: 1, Price: money("19.99")},
	}); err != nil {
		fmt.Println("   ✓ correctly rejected:", err)
	} else {
		fmt.Println("   ✗ should have been rejected")
	}

	fmt.Println("\nPAYING ORDER #1 AGAIN:")
	if _, err := useCase.PayOrder(ctx, application.PayOrderInput{OrderID: order1.Order.ID()}); err != nil {
		fmt.Println("   ✓ correctly rejected:", err)
	} else {
		fmt.Println("   ✗ should have been rejected")
	}

	fmt.Println("\nPAYING ORDER #2:")
	receipt2, err := useCase.PayOrder(ctx, application.PayOrderInput{OrderID: order2.Order.ID()})
	if err != nil {
		fmt.Println("   ✗ error:", err)
	} else {
		printReceipt(receipt2)
	}

	separator()
	fmt.Println("4. GATEWAY OUTAGE")

	order3, _ := useCase.CreateOrder(ctx, application.CreateOrderInput{
		CustomerID: "cust-004",
		Lines: []application.LineInput{
			{ProductID: "monitor-001", ProductName: "4K monitor", Quantity: 1, Price: money("349.99")},
		},
	})
	gateway.SetFailMode(true)
	fmt.Println("\nPAYING ORDER #3 WITH GATEWAY DOWN:")
	if _, err := useCase.PayOrder(ctx, application.PayOrderInput{OrderID: order3.Order.ID()}); err != nil {
		fmt.Println("   ✓ charge failed:", err)
	}
	saved3, _ := useCase.GetOrder(ctx, application.GetOrderInput{OrderID: order3.Order.ID()})
	fmt.Println("   status after failure:", saved3.Order.Status())
	gateway.SetFailMode(false)

	separator()
	fmt.Println("5. GATEWAY TRANSACTION LOG")
	fmt.Println("   transactions:", gateway.TransactionCount())
	i := 0
	for id, transaction := range gateway.Transactions() {
		i++
		fmt.Printf("\n   transaction #%d:\n", i)
		fmt.Println("   id:", id)
		fmt.Println("   order:", transaction.OrderID)
		fmt.Println("   amount:", transaction.Amount)
		fmt.Println("   status:", transaction.Status)
	}

	separator()
	fmt.Println("6. SUMMARY")

	total := domain.Zero(domain.DefaultCurrency)
	paid := 0
	ids := []string{order1.Order.ID(), order2.Order.ID(), emptyOrder.Order.ID(), order3.Order.ID()}
	for _, id := range ids {
		saved, err := useCase.GetOrder(ctx, application.GetOrderInput{OrderID: id})
		if err != nil {
			continue
		}
		if saved.Order.IsPaid() {
			paid++
			total, _ = total.Add(saved.Order.TotalAmount())
		}
	}
	fmt.Println("   orders:", len(ids))
	fmt.Println("   paid:", paid)
	fmt.Println("   awaiting payment:", len(ids)-paid)
	fmt.Println("   revenue:", total)

	separator()
	fmt.Println("done")
}

func money(amount string) domain.Money {
	m, err := domain.NewMoneyFromString(amount, domain.DefaultCurrency)
	if err != nil {
		panic(err)
	}
	return m
}

func printOrder(order *domain.Order) {
	fmt.Println("   id:", order.ID())
	fmt.Println("   customer:", order.CustomerID())
	fmt.Println("   lines:", len(order.Lines()))
	fmt.Println("   total:", order.TotalAmount())
	fmt.Println("   status:", order.Status())
}

func printReceipt(receipt *application.Receipt) {
	fmt.Println("   ✓ paid")
	fmt.Println("   transaction id:", receipt.TransactionID)
	fmt.Println("   amount:", receipt.Amount)
	fmt.Println("   status:", receipt.Status)
}

func separator() {
	fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
}
