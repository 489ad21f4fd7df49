package model

// Note is an immutable ledger entry on an applicant. NoteId is a monotonic ULID,
// so ordering by (created_at, note_id) matches insertion order.
type Note struct {
	BaseModel
	NoteId      string  `gorm:"column:note_id;size:26;uniqueIndex" json:"id"`
	ApplicantId string  `gorm:"column:applicant_id;size:36;index" json:"applicant_id"`
	ShopId      string  `gorm:"column:shop_id;size:36;index" json:"-"`
	AddedBy     *string `gorm:"column:added_by;size:255" json:"added_by"`
	AddedById   *string `gorm:"column:added_by_id;size:64" json:"added_by_id"`
	Message     string  `gorm:"column:message;type:text;not null" json:"message"`
}

func (Note) TableName() string {
	return "t_note"
}

// SystemAuthor is the display name on notes written by the service itself.
const SystemAuthor = "System"

type CreateNoteReq struct {
	Message string  `json:"message"`
	AddedBy *string `json:"added_by"`
}
