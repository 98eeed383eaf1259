package models

// DashboardStats is the aggregate view backing the admin dashboard.
type DashboardStats struct {
	TotalPackages       int64 `json:"totalPackages"`
	ActivePackages      int64 `json:"activePackages"`
	TotalBookings       int64 `json:"totalBookings"`
	PendingBookings     int64 `json:"pendingBookings"`
	TotalCabBookings    int64 `json:"totalCabBookings"`
	PendingCabBookings  int64 `json:"pendingCabBookings"`
	TotalInquiries      int64 `json:"totalInquiries"`
	NewInquiries        int64 `json:"newInquiries"`
	TotalTestimonials   int64 `json:"totalTestimonials"`
	PendingTestimonials int64 `json:"pendingTestimonials"`
	TotalClients        int64 `json:"totalClients"`
	TotalBlogPosts      int64 `json:"totalBlogPosts"`
	PublishedBlogPosts  int64 `json:"publishedBlogPosts"`

	MonthlyRevenue float64    `json:"monthlyRevenue"`
	RecentBookings []*Booking `json:"recentBookings"`
}
