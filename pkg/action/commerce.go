package action

// OrderStatus is the closed status enumeration for order actions. Tokens
// concatenate verbatim into the markup status URI.
type OrderStatus string

const (
	OrderProcessing      OrderStatus = "Processing"
	OrderInTransit       OrderStatus = "InTransit"
	OrderDelivered       OrderStatus = "Delivered"
	OrderCancelled       OrderStatus = "Cancelled"
	OrderReturned        OrderStatus = "Returned"
	OrderProblem         OrderStatus = "Problem"
	OrderPaymentDue      OrderStatus = "PaymentDue"
	OrderPickupAvailable OrderStatus = "PickupAvailable"
)

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderProcessing, OrderInTransit, OrderDelivered, OrderCancelled,
		OrderReturned, OrderProblem, OrderPaymentDue, OrderPickupAvailable:
		return true
	}
	return false
}

// PaymentStatus is the closed status enumeration for invoices.
type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "Paid"
	PaymentUnpaid        PaymentStatus = "Unpaid"
	PaymentPartiallyPaid PaymentStatus = "PartiallyPaid"
	PaymentOverdue       PaymentStatus = "Overdue"
)

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPaid, PaymentUnpaid, PaymentPartiallyPaid, PaymentOverdue:
		return true
	}
	return false
}

// OrderItem is one purchased line item.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	SKU      string  `json:"sku,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// Order is the OrderAction payload.
type Order struct {
	OrderNumber  string      `json:"orderNumber"`
	OrderDate    string      `json:"orderDate"`
	OrderStatus  OrderStatus `json:"orderStatus"`
	MerchantName string      `json:"merchantName"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Tax          *float64    `json:"tax,omitempty"`
	Shipping     *float64    `json:"shipping,omitempty"`
	Total        float64     `json:"total"`
	Currency     string      `json:"currency"`
	ViewOrderURL string      `json:"viewOrderUrl,omitempty"`
}

// InvoiceItem is one billed line item.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Invoice is the Invoice payload.
type Invoice struct {
	InvoiceNumber     string        `json:"invoiceNumber"`
	InvoiceDate       string        `json:"invoiceDate"`
	DueDate           string        `json:"dueDate"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	ProviderName      string        `json:"providerName"`
	CustomerName      string        `json:"customerName"`
	AccountID         string        `json:"accountId"`
	Items             []InvoiceItem `json:"items"`
	Subtotal          float64       `json:"subtotal"`
	Tax               *float64      `json:"tax,omitempty"`
	Total             float64       `json:"total"`
	MinimumPaymentDue *float64      `json:"minimumPaymentDue,omitempty"`
	Currency          string        `json:"currency"`
	PaymentURL        string        `json:"paymentUrl,omitempty"`
}
