// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и роль.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

// Роли пользователей. Роль выдается при регистрации и определяет,
// какие операции доступны владельцу токена.
const (
	RoleCustomer      = "customer"
	RoleEmployee      = "employee"
	RoleAdministrator = "administrator"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string // Уникальный идентификатор пользователя
	Username     string // Имя пользователя (уникальное)
	Email        string // Электронная почта (уникальная)
	PasswordHash string // Хэш пароля пользователя
	Role         string // Роль: customer, employee или administrator
}

// Identity описывает, от чьего имени выполняется запрос.
// Заполняется auth-шлюзом после проверки токена и кладется в контекст запроса.
type Identity struct {
	UserUID  string `json:"sub"`
	Username string `json:"username"`
	Role     string `json:"rol"`
}
