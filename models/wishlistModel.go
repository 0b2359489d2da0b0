package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type WishListItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
}

// WishList has no duplicate-product invariant, unlike Cart. The asymmetry is
// deliberate; see DESIGN.md.
type WishList struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	Products []WishListItem     `bson:"products" json:"products"`
}
