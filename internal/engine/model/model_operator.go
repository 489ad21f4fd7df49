package model

// Operator links an authenticated identity to at most one shop.
type Operator struct {
	BaseModel
	UserId string `gorm:"column:user_id;size:64;uniqueIndex" json:"userId"`
	Email  string `gorm:"column:email;size:255" json:"email"`
	ShopId string `gorm:"column:shop_id;size:36;index" json:"shopId"`
}

func (Operator) TableName() string {
	return "t_operator"
}

// HasShop reports whether onboarding already happened for this operator.
func (o *Operator) HasShop() bool {
	return o != nil && o.ShopId != ""
}
