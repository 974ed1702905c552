package user_dto

import "time"

type UserProfileResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Points       int        `json:"points"`
	District     *string    `json:"district,omitempty"`
	Municipality *string    `json:"municipality,omitempty"`
	Ward         *string    `json:"ward,omitempty"`
	Department   *string    `json:"department,omitempty"`
	EmployeeCode *string    `json:"employee_code,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
