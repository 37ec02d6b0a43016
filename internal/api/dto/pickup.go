package dto

import "waste-route-service/internal/domain"

type CreatePickupRequest struct {
	HouseholdID string `json:"household_id" validate:"required,max=64"`
	Type        string `json:"type" validate:"omitempty,oneof=wet dry e-waste"`
	Address     string `json:"address" validate:"max=200"`
	FullName    string `json:"full_name" validate:"max=100"`
	Phone       string `json:"phone" validate:"max=20"`
	Slot        string `json:"slot" validate:"max=50"`
}

type ListPickupsResponse struct {
	Pickups []domain.Pickup `json:"pickups"`
}

type ListHouseholdsResponse struct {
	Households []domain.Household `json:"households"`
}

type ReportOverflowRequest struct {
	Location    string `json:"location" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
}

type ListOverflowsResponse struct {
	Overflows []domain.BinOverflow `json:"overflows"`
}

type PointsResponse struct {
	CitizenPoints int `json:"citizen_points"`
}

type WasteTypeResponse struct {
	Type        domain.WasteType `json:"type"`
	Rate        int              `json:"rate"`
	Description string           `json:"description"`
}

type ListWasteTypesResponse struct {
	WasteTypes []WasteTypeResponse `json:"waste_types"`
}
