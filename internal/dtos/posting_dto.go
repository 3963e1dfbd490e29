package dtos

import "time"

type CreatePostingRequest struct {
	CompanyName string    `json:"company_name" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`

	// Optional Fields
	Location  string   `json:"location"`
	Questions []string `json:"questions"`
}
