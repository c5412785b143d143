package models

// Product represents an item in the catalog
type Product struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"nombre" json:"name"`
	Category string  `db:"categoria" json:"category"`
	Price    float64 `db:"precio" json:"price"`
	Quantity int     `db:"cantidad" json:"quantity"`
}

// Sale represents a recorded sale transaction
type Sale struct {
	ID          int64   `db:"id" json:"id"`
	Description string  `db:"descripcion" json:"description"`
	Total       float64 `db:"total" json:"total"`
	Date        string  `db:"fecha" json:"date"`
}

// Report represents a free-text report entry
type Report struct {
	ID          int64  `db:"id" json:"id"`
	Type        string `db:"tipo" json:"type"`
	Description string `db:"descripcion" json:"description"`
	Date        string `db:"fecha" json:"date"`
}

// User represents a registered account
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"nombre" json:"name"`
	Email    string `db:"correo" json:"email"`
	Password string `db:"password" json:"-"`
}
