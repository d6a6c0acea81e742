package models

import "gorm.io/gorm"

// User is an API principal. Staff users may write reference data and edit any
// dispatch; regular users may only edit dispatches they created.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Staff    bool   `json:"staff"`
}
