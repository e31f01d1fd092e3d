// Package sellerdto chứa các cấu trúc đầu vào của domain seller.
package sellerdto

// SellerCreateInput đầu vào tạo seller thủ công qua CRUD quản trị.
// Luồng bình thường tạo seller qua đồng bộ từ API bên ngoài.
type SellerCreateInput struct {
	ExternalID string `json:"externalId" bson:"externalId" validate:"required"`
	Name       string `json:"name,omitempty" bson:"name,omitempty"`
	Email      string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Status     string `json:"status,omitempty" bson:"status,omitempty"`
}

// SellerUpdateInput đầu vào cập nhật seller qua CRUD quản trị.
type SellerUpdateInput struct {
	Name   string `json:"name" bson:"name,omitempty"`
	Email  string `json:"email" bson:"email,omitempty" validate:"omitempty,email"`
	Phone  string `json:"phone" bson:"phone,omitempty"`
	Status string `json:"status" bson:"status,omitempty"`
}
