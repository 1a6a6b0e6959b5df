package model

import "gorm.io/datatypes"

// ChallengeModel mirrors the 'challenges' table. Content columns are jsonb
// and hold any JSON value; a field the client did not send is stored as JSON null.
type ChallengeModel struct {
	ChallengeID string         `gorm:"column:challenge_id;type:varchar(64);primaryKey"`
	UserID      string         `gorm:"column:user_id;type:varchar(64);not null;index:challenges_user_id_idx"`
	Text        datatypes.JSON `gorm:"column:text;type:jsonb;not null"`
	Description datatypes.JSON `gorm:"column:description;type:jsonb;not null"`
	Dataset     datatypes.JSON `gorm:"column:dataset;type:jsonb;not null"`
	Picture     datatypes.JSON `gorm:"column:picture;type:jsonb;not null"`
	Result      datatypes.JSON `gorm:"column:result;type:jsonb;not null"`
	// Seq keeps listings in insertion order.
	Seq int64 `gorm:"column:seq;autoIncrement;not null;uniqueIndex:challenges_seq_key"`
}

// TableName explicitly sets the table name for GORM.
func (ChallengeModel) TableName() string {
	return "challenges"
}
