package model

// UserModel mirrors the 'users' table.
type UserModel struct {
	UserID       string `gorm:"column:user_id;type:varchar(64);primaryKey"`
	Username     string `gorm:"column:username;type:varchar(255);not null;uniqueIndex:users_username_key"`
	Email        string `gorm:"column:email;type:varchar(255);not null;uniqueIndex:users_email_key"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
