package domain

type Role string

const (
	RoleAdm    Role = "Adm"
	RoleEditor Role = "Editor"
)

type Administrator struct {
	ID           int    `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"column:senha;size:100;not null"`
	Role         Role   `gorm:"column:perfil;size:10;not null"`
}

func (Administrator) TableName() string { return "administradores" }

// NewAdministrator is the insert input; Password is plaintext and only lives
// until it is hashed.
type NewAdministrator struct {
	Email    string
	Password string
	Role     Role
}
