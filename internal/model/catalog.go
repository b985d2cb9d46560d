package model

// Catalog tables backing the ticket form selects. Static lookup data,
// seeded by migrations and read-only from the application.

type Area struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"type:varchar(255);not null" json:"nombre"`
}

func (Area) TableName() string { return "areas" }

type Proyecto struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"type:varchar(255);not null" json:"nombre"`
}

func (Proyecto) TableName() string { return "proyectos" }

type TipoProblema struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"type:varchar(255);not null" json:"nombre"`
}

func (TipoProblema) TableName() string { return "tipos_problema" }
