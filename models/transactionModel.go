package models

import "time"

// Payment methods accepted at checkout.
const (
	PaymentMethodEsewa  = "esewa"
	PaymentMethodKhalti = "khalti"
	PaymentMethodCash   = "cash"
)

// Transaction statuses. A payment webhook may overwrite any status with any
// other; no transition graph is enforced at this layer.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionRefunded  = "refunded"
)

type Transaction struct {
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	OrderID       string    `bson:"orderId" json:"orderId" binding:"required"`
	Amount        float64   `bson:"amount" json:"amount" binding:"required,gt=0"`
	PaymentMethod string    `bson:"paymentMethod" json:"paymentMethod" binding:"required,oneof=esewa khalti cash"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
