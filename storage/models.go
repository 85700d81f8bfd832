package storage

import "time"

// EventConfig is the admin-maintained dashboard configuration for one
// initiative. The registration target drives the pace forecast; zero means no
// target is set.
type EventConfig struct {
	Initiative         string `dynamodbav:"PK" json:"initiative"`
	DashboardLink      string `dynamodbav:"DashboardLink" json:"dashboard_link"`
	AdminUsername      string `dynamodbav:"AdminUsername" json:"admin_username"`
	AdminPassword      string `dynamodbav:"AdminPassword" json:"admin_password"`
	RegistrationTarget int    `dynamodbav:"RegistrationTarget" json:"registration_target"`
}

// Session is one logged-in dashboard session, keyed by its opaque token.
type Session struct {
	Token     string    `dynamodbav:"PK" json:"token"`
	User      string    `dynamodbav:"User" json:"user"`
	Role      string    `dynamodbav:"Role" json:"role"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"created_at"`
}

// Pin marks an initiative as pinned in the event selector.
type Pin struct {
	Initiative string    `dynamodbav:"PK" json:"initiative"`
	CreatedAt  time.Time `dynamodbav:"CreatedAt" json:"created_at"`
}
