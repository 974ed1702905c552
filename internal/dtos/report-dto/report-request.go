package report_dto

import (
	"github.com/go-playground/validator/v10"
)

// Intake categories mirror the civic complaint taxonomy; unknown categories
// are accepted downstream with a default point weight, but intake keeps the
// list closed to avoid free-text drift.
var reportCategories = map[string]struct{}{
	"pothole":      {},
	"road_damage":  {},
	"street_light": {},
	"garbage":      {},
	"water_supply": {},
	"sewage":       {},
	"other":        {},
}

type ParamReportID struct {
	ID string `params:"report_id" validate:"required,uuid"`
}

type CreateReportRequest struct {
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description" validate:"required,max=5000"`
	Category     string  `json:"category" validate:"required,reportCategory"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=300"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Priority     *string `json:"priority,omitempty" validate:"omitempty,itemPriority"`
	District     *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Municipality string  `json:"municipality" validate:"required,max=100"`
	Ward         string  `json:"ward" validate:"required,max=100"`
	Department   *string `json:"department,omitempty" validate:"omitempty,max=100"`
}

type ReportListFilter struct {
	Status       *string `query:"status" validate:"omitempty,itemStatus"`
	Category     *string `query:"category" validate:"omitempty,reportCategory"`
	Municipality *string `query:"municipality"`
	Ward         *string `query:"ward"`
	Page         int     `query:"page" validate:"omitempty,min=1,max=100"`
	Limit        int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

func IsValidReportCategory(fl validator.FieldLevel) bool {
	_, ok := reportCategories[fl.Field().String()]
	return ok
}
