package db

import (
	"log"

	"github.com/motiondesk/server/internal/chat"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens the MySQL connection and migrates the chat tables.
func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[db] open: %v", err)
	}
	if err := gdb.AutoMigrate(&chat.Chat{}, &chat.StoredMessage{}); err != nil {
		log.Fatalf("[db] automigrate: %v", err)
	}
	return gdb
}
