package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database. Default sqlite (file sloteats.db)
// supaya development tidak butuh server; set DB_DRIVER=mysql plus
// kredensialnya untuk produksi.
//
// TranslateError wajib aktif: service layer mengandalkan
// gorm.ErrDuplicatedKey untuk mendeteksi pelanggaran unique index
// (registrasi dengan email/username kembar).
func InitDB() (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	if os.Getenv("DB_DRIVER") == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
		)
		return gorm.Open(mysql.Open(dsn), gormCfg)
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "sloteats.db"
	}
	return gorm.Open(sqlite.Open(path), gormCfg)
}
