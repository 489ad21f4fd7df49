package model

import "gorm.io/datatypes"

// Shop is a tenant. Slug is immutable once assigned.
type Shop struct {
	BaseModel
	ShopId   string            `gorm:"column:shop_id;size:36;uniqueIndex" json:"id"`
	Name     string            `gorm:"column:name;size:255;not null" json:"name"`
	Slug     string            `gorm:"column:slug;size:64;uniqueIndex" json:"slug"`
	Settings datatypes.JSONMap `gorm:"column:settings" json:"settings"`
}

func (Shop) TableName() string {
	return "t_shop"
}

// ShopPublic is the part of a shop the public apply form may see.
type ShopPublic struct {
	ShopId string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
}

func (s *Shop) Public() *ShopPublic {
	return &ShopPublic{ShopId: s.ShopId, Name: s.Name, Slug: s.Slug}
}

type CreateShopReq struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
