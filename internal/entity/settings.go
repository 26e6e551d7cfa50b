package entity

// Settings is the persisted configuration record. Exactly one exists per
// installation; its absence reads as the unconfigured default.
type Settings struct {
	DashboardURL string `json:"dashboardUrl"`
	DisplayIndex int    `json:"displayIndex"`
	IsConfigured bool   `json:"isConfigured"`
}
