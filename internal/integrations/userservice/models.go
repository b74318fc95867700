package userservice

// User модель пользователя из UserService
type User struct {
	ID int64 `json:"id"`
}

