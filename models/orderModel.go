package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId" binding:"required"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Price     int                `bson:"price" json:"price" binding:"required,gt=0"`
	Quantity  int                `bson:"quantity" json:"quantity" binding:"required,gt=0"`
}

type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	Items            []OrderItem        `bson:"items" json:"items" binding:"required,dive"`
	Total            int                `bson:"total" json:"total" binding:"required,gt=0"`
	DeliveryLocation string             `bson:"deliveryLocation" json:"deliveryLocation" binding:"required"`
	Phone            string             `bson:"phone" json:"phone" binding:"required"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
