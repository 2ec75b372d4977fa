package dtos

type DashboardStatsDto struct {
	ActiveOrders     int64 `json:"activeOrders"`
	PendingOrders    int64 `json:"pendingOrders"`
	DeliveredOrders  int64 `json:"deliveredOrders"`
	Suppliers        int64 `json:"suppliers"`
	ActiveContracts  int64 `json:"activeContracts"`
	UpcomingMeetings int64 `json:"upcomingMeetings"`
}

type SpendChartDto struct {
	Labels []string `json:"labels"`
	Values []string `json:"values"`
}
