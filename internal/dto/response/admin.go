package response

import "time"

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type DashboardResponse struct {
	TotalBookings    int64             `json:"totalBookings"`
	PendingBookings  int64             `json:"pendingBookings"`
	TotalCars        int64             `json:"totalCars"`
	TotalOfferings   int64             `json:"totalOfferings"`
	CollectedDeposit int64             `json:"collectedDeposit"`
	RecentBookings   []BookingResponse `json:"recentBookings"`
}
