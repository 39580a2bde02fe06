package department

// Department adalah read-model dari HR API; id dan timestamp milik server.
type Department struct {
	ID        int64  `json:"departmentId"`
	Code      string `json:"departmentCode"`
	Name      string `json:"departmentName"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type CreateDepartmentRequest struct {
	Code string `json:"departmentCode" binding:"required,min=2,max=10,depcode"`
	Name string `json:"departmentName" binding:"required,min=3,max=100"`
}

// UpdateDepartmentRequest meng-echo id di body sesuai kontrak upstream.
type UpdateDepartmentRequest struct {
	ID   int64  `json:"departmentId"`
	Code string `json:"departmentCode" binding:"required,min=2,max=10,depcode"`
	Name string `json:"departmentName" binding:"required,min=3,max=100"`
}

type PagedDepartments struct {
	Items      []Department `json:"items"`
	TotalCount int64        `json:"totalCount"`
}
