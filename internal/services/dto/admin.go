package dto

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=255"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Thumbnail   string   `json:"thumbnail" binding:"omitempty,url"`
	ContentURL  string   `json:"content_url" binding:"omitempty,url"`
	Category    string   `json:"category" binding:"omitempty,max=100"`
	Difficulty  string   `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Features    []string `json:"features"`
	TechStack   []string `json:"tech_stack"`
}

// UpdateProjectRequest applies only the fields present in the body;
// absent fields keep their current value.
type UpdateProjectRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Thumbnail   *string  `json:"thumbnail" binding:"omitempty,url"`
	ContentURL  *string  `json:"content_url" binding:"omitempty,url"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Difficulty  *string  `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Features    []string `json:"features"`
	TechStack   []string `json:"tech_stack"`
}

type AdminUserResponse struct {
	UserResponse
	OrdersCount int64 `json:"orders_count"`
}

type AdminUserListResponse struct {
	Users      []AdminUserResponse `json:"users"`
	Pagination Pagination          `json:"pagination"`
}

type MonthRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

type DashboardStats struct {
	TotalUsers     int64           `json:"total_users"`
	TotalProjects  int64           `json:"total_projects"`
	TotalSales     int64           `json:"total_sales"`
	TotalRevenue   float64         `json:"total_revenue"`
	MonthlyRevenue []MonthRevenue  `json:"monthly_revenue"`
	TotalDownloads int64           `json:"total_downloads"`
	RecentOrders   []OrderResponse `json:"recent_orders"`
}
