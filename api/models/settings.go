package models

import "github.com/Mayank-kush24/Consolidated-Dahsboards/storage"

type EventConfigResponse struct {
	Initiative         string `json:"initiative"`
	DashboardLink      string `json:"dashboard_link"`
	AdminUsername      string `json:"admin_username"`
	AdminPassword      string `json:"admin_password"`
	RegistrationTarget int    `json:"registration_target"`
}

type EventConfigUpdateRequest struct {
	DashboardLink      string `json:"dashboard_link"`
	AdminUsername      string `json:"admin_username"`
	AdminPassword      string `json:"admin_password"`
	RegistrationTarget int    `json:"registration_target"`
}

func TransformEventConfigToResponse(config *storage.EventConfig) EventConfigResponse {
	return EventConfigResponse{
		Initiative:         config.Initiative,
		DashboardLink:      config.DashboardLink,
		AdminUsername:      config.AdminUsername,
		AdminPassword:      config.AdminPassword,
		RegistrationTarget: config.RegistrationTarget,
	}
}
