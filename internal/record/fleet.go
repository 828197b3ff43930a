package record

// Driver is a courier that can be marked available or offline.
type Driver struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Available bool   `yaml:"available"`
}

// OrderStatus is the delivery stage of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderInTransit OrderStatus = "In Transit"
	OrderDelivered OrderStatus = "Delivered"
)

// OrderStatuses lists every stage in delivery order.
var OrderStatuses = []OrderStatus{OrderPending, OrderInTransit, OrderDelivered}

// Order is a delivery on the orders board.
type Order struct {
	ID      string      `yaml:"id"`
	Address string      `yaml:"address"`
	Status  OrderStatus `yaml:"status"`
}
