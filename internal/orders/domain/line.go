package domain

// OrderLine is an immutable record of a product position within an order.
// Quantity changes produce a new instance via WithQuantity.
type OrderLine struct {
	productID   string
	productName string
	quantity    int
	price       Money
}

// NewOrderLine creates an order line with validation
func NewOrderLine(productID, productName string, quantity int, price Money) (OrderLine, error) {
	if productID == "" {
		return OrderLine{}, NewError(KindInvalidProduct, "product id is required")
	}
	if quantity <= 0 {
		return OrderLine{}, NewError(KindInvalidQuantity, "quantity must be positive")
	}
	return OrderLine{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		price:       price,
	}, nil
}

// ProductID returns the product identifier
func (l OrderLine) ProductID() string {
	return l.productID
}

// ProductName returns the display name of the product
func (l OrderLine) ProductName() string {
	return l.productName
}

// Quantity returns the ordered quantity
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Price returns the unit price
func (l OrderLine) Price() Money {
	return l.price
}

// Total returns the line subtotal: unit price times quantity
func (l OrderLine) Total() Money {
	total, _ := l.price.Multiply(int64(l.quantity))
	return total
}

// WithQuantity returns a copy of the line with a new quantity
func (l OrderLine) WithQuantity(newQuantity int) (OrderLine, error) {
	if newQuantity <= 0 {
		return OrderLine{}, NewError(KindInvalidQuantity, "quantity must be positive")
	}
	return OrderLine{
		productID:   l.productID,
		productName: l.productName,
		quantity:    newQuantity,
		price:       l.price,
	}, nil
}
