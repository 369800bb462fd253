package domain

// Stats is the dashboard summary: four scalar counts plus the daily
// active-user series feeding the activity chart.
type Stats struct {
	TotalUsers   int             `json:"total_users"`
	TotalFoods   int             `json:"total_foods"`
	TodayLogs    int             `json:"today_logs"`
	ActiveUsers  int             `json:"active_users"`
	ActivityData []ActivityPoint `json:"activity_data"`
}

// ActivityPoint is one day of the active-user time series.
type ActivityPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
