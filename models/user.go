package models

type UserRole string

const (
	RoleFarmer UserRole = "FARMER"
	RoleBuyer  UserRole = "BUYER"
	RoleAdmin  UserRole = "ADMIN"
)

type User struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Role         UserRole `json:"role" yaml:"role"`
	Location     string   `json:"location" yaml:"location"`
	Phone        string   `json:"phone" yaml:"phone"`
	Avatar       string   `json:"avatar,omitempty" yaml:"avatar"`
	PasswordHash string   `json:"-" yaml:"-"`
}
