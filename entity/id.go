package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"hackportal-backend/errs"
)

func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errs.ErrInvalidID
	}
	return id, nil
}
