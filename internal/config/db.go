package config

// DB holds the database configuration settings.
type DB struct {
	Extras   string
	Host     string
	Port     int `validate:"gte=0,lte=65535"`
	User     string
	Password string
	// Name is the database name, or the file path for sqlite.
	Name string `validate:"required"`
	// GormEngine selects the gorm driver.
	GormEngine string `validate:"required,oneof=mysql mariadb postgres postgresql sqlite sqlite3"`
}
