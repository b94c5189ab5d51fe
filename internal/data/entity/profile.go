package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Profile struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	FullName     string   `db:"full_name"`
	Phone        string   `db:"phone"`
	Role         UserRole `db:"role"`
}
