package domain

type Vehicle struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"column:nome;size:150;not null" json:"nome"`
	Brand string `gorm:"column:marca;size:100;not null" json:"marca"`
	Year  int    `gorm:"column:ano" json:"ano"`
}

func (Vehicle) TableName() string { return "veiculos" }

// VehicleFilter narrows a listing. Name and Brand match case-insensitive
// substrings; empty means no filter. Page is 1-indexed.
type VehicleFilter struct {
	Page     int
	PageSize int
	Name     string
	Brand    string
}
