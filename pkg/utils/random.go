package utils

import "github.com/google/uuid"

// GenerateID создает уникальный ID для клиентов и записей лога
func GenerateID() string {
	return uuid.NewString()
}
