package dto

type ProfileRequest struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	IsHomeowner   bool   `json:"is_homeowner"`
	IsRenter      bool   `json:"is_renter"`
	HasDependents bool   `json:"has_dependents"`
	HasVehicle    bool   `json:"has_vehicle"`
	OwnsBusiness  bool   `json:"owns_business"`
	HighNetWorth  bool   `json:"high_net_worth"`
}

type ProfileResponse struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	IsHomeowner   bool   `json:"is_homeowner"`
	IsRenter      bool   `json:"is_renter"`
	HasDependents bool   `json:"has_dependents"`
	HasVehicle    bool   `json:"has_vehicle"`
	OwnsBusiness  bool   `json:"owns_business"`
	HighNetWorth  bool   `json:"high_net_worth"`
}
