package models

// Customer представляет профиль покупателя. Профиль может быть связан
// с учётной записью пользователя через UserUID — по этой связи покупатель
// видит только свои заказы.
type Customer struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	LastName string  `json:"last_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	UserUID  *string `json:"user_uid,omitempty"`
}
