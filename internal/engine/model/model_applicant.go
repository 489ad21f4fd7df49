package model

import (
	"github.com/go-arcade/ats/pkg/statemachine"
	"gorm.io/datatypes"
)

// Applicant is owned by exactly one shop. ShopId never changes after creation.
type Applicant struct {
	BaseModel
	ApplicantId     string             `gorm:"column:applicant_id;size:36;uniqueIndex" json:"id"`
	ShopId          string             `gorm:"column:shop_id;size:36;index;not null" json:"shop_id"`
	FullName        string             `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Email           string             `gorm:"column:email;size:255;not null" json:"email"`
	Phone           string             `gorm:"column:phone;size:64;not null" json:"phone"`
	PositionApplied string             `gorm:"column:position_applied;size:128;index" json:"position_applied"`
	Status          statemachine.Stage `gorm:"column:status;size:32;index;not null" json:"status"`
	Source          *string            `gorm:"column:source;size:64" json:"source"`
	FormData        datatypes.JSONMap  `gorm:"column:form_data" json:"form_data"`
	InternalData    datatypes.JSONMap  `gorm:"column:internal_data" json:"internal_data"`
}

func (Applicant) TableName() string {
	return "t_applicant"
}

// ApplicantSummary is the list view of an applicant.
type ApplicantSummary struct {
	ApplicantId     string             `json:"id"`
	CreatedAt       string             `json:"created_at"`
	FullName        string             `json:"full_name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	PositionApplied string             `json:"position_applied"`
	Status          statemachine.Stage `json:"status"`
	Source          *string            `json:"source"`
}

// SummaryColumns are the columns loaded for list queries.
var SummaryColumns = []string{
	"id", "applicant_id", "shop_id", "created_at", "updated_at",
	"full_name", "email", "phone", "position_applied", "status", "source",
}

func (a *Applicant) Summary() *ApplicantSummary {
	return &ApplicantSummary{
		ApplicantId:     a.ApplicantId,
		CreatedAt:       a.CreatedAt.UTC().Format(TimeLayout),
		FullName:        a.FullName,
		Email:           a.Email,
		Phone:           a.Phone,
		PositionApplied: a.PositionApplied,
		Status:          a.Status,
		Source:          a.Source,
	}
}

// TimeLayout is RFC 3339 with fixed millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// ApplicantDraft is a public application. Shop is a slug or a shop id; ShopId
// is accepted as an alias. Status is read only so it can be discarded.
type ApplicantDraft struct {
	Shop            string         `json:"shop"`
	ShopId          string         `json:"shop_id"`
	FullName        string         `json:"full_name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	PositionApplied string         `json:"position_applied"`
	Source          *string        `json:"source"`
	Status          string         `json:"status"`
	FormData        map[string]any `json:"form_data"`
}

// TenantRef returns the public shop reference of the draft.
func (d *ApplicantDraft) TenantRef() string {
	if d.Shop != "" {
		return d.Shop
	}
	return d.ShopId
}

// ApplicantPatch is a partial update. Nil fields are left untouched.
type ApplicantPatch struct {
	FullName        *string        `json:"full_name"`
	Email           *string        `json:"email"`
	Phone           *string        `json:"phone"`
	PositionApplied *string        `json:"position_applied"`
	Source          *string        `json:"source"`
	Status          *string        `json:"status"`
	FormData        map[string]any `json:"form_data"`
	InternalData    map[string]any `json:"internal_data"`
}

// HasFieldChanges reports whether the patch touches anything besides status.
func (p *ApplicantPatch) HasFieldChanges() bool {
	return p.FullName != nil || p.Email != nil || p.Phone != nil || p.PositionApplied != nil ||
		p.Source != nil || p.FormData != nil || p.InternalData != nil
}

type ApplicantFilter struct {
	Status   string
	Position string
	Search   string
}

type TransitionReq struct {
	Status string `json:"status"`
}

type UploadSlotReq struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}
