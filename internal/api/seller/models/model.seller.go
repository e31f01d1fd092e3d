// Package models - model người bán đồng bộ từ API nghiệp vụ bên ngoài.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller một người bán được đồng bộ từ hệ thống bên ngoài.
// ExternalID là khóa nghiệp vụ: mỗi lần đồng bộ upsert theo externalId,
// Raw giữ nguyên payload gốc để đối soát khi schema bên ngoài thay đổi.
type Seller struct {
	ID           primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	ExternalID   string                 `json:"externalId" bson:"externalId" index:"unique"`
	Name         string                 `json:"name,omitempty" bson:"name,omitempty"`
	Email        string                 `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string                 `json:"phone,omitempty" bson:"phone,omitempty"`
	Status       string                 `json:"status,omitempty" bson:"status,omitempty"`
	Raw          map[string]interface{} `json:"raw,omitempty" bson:"raw,omitempty"`
	LastSyncedAt int64                  `json:"lastSyncedAt" bson:"lastSyncedAt"`
	CreatedAt    int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                  `json:"updatedAt" bson:"updatedAt"`
}

// SyncResult kết quả một lần đồng bộ seller.
type SyncResult struct {
	RunID   string `json:"runId"`
	Fetched int    `json:"fetched"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
}
