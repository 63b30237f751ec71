// internal/admin/models.go

package admin

import "github.com/imadgeboyega/vibesnap-backend/internal/state"

// Stats backs the dashboard cards
type Stats struct {
	TotalUsers     int `json:"totalUsers"`
	TotalPosts     int `json:"totalPosts"`
	PendingReports int `json:"pendingReports"`
}

// ReportView is a report with its target post and reporter resolved.
// Either may be nil when the referenced entity no longer exists.
type ReportView struct {
	state.Report
	TargetPost *state.Post `json:"targetPost"`
	Reporter   *state.User `json:"reporter"`
}

// ActionResponse echoes the id an admin action was applied to.
// The entity is omitted when the id matched nothing or the entity was removed.
type ActionResponse struct {
	ID     string        `json:"id"`
	User   *state.User   `json:"user,omitempty"`
	Report *state.Report `json:"report,omitempty"`
}
