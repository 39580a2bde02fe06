package employee

// DepartmentSummary adalah denormalisasi ringkas dari upstream untuk tampilan;
// sumber otoritatifnya tetap entitas department.
type DepartmentSummary struct {
	ID   int64  `json:"departmentId"`
	Code string `json:"departmentCode"`
	Name string `json:"departmentName"`
}

// Employee adalah read-model dari HR API. Age dihitung server dan hanya
// ditampilkan; console tidak pernah menghitungnya sendiri di luar validasi DOB.
type Employee struct {
	ID           int64              `json:"employeeId"`
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	Email        string             `json:"email"`
	DateOfBirth  string             `json:"dateOfBirth"`
	Age          int                `json:"age"`
	Salary       float64            `json:"salary"`
	DepartmentID int64              `json:"departmentId"`
	Department   *DepartmentSummary `json:"department,omitempty"`
	CreatedAt    string             `json:"createdAt,omitempty"`
	UpdatedAt    string             `json:"updatedAt,omitempty"`
}

type CreateEmployeeRequest struct {
	FirstName    string  `json:"firstName" binding:"required,min=2,max=50,alphaspace"`
	LastName     string  `json:"lastName" binding:"required,min=2,max=50,alphaspace"`
	Email        string  `json:"email" binding:"required,email,max=100"`
	DateOfBirth  string  `json:"dateOfBirth" binding:"required,adult"`
	Salary       float64 `json:"salary" binding:"required,gt=0,lte=999999999.99"`
	DepartmentID int64   `json:"departmentId" binding:"required,gt=0"`
}

// UpdateEmployeeRequest meng-echo id di body sesuai kontrak upstream.
type UpdateEmployeeRequest struct {
	ID           int64   `json:"employeeId"`
	FirstName    string  `json:"firstName" binding:"required,min=2,max=50,alphaspace"`
	LastName     string  `json:"lastName" binding:"required,min=2,max=50,alphaspace"`
	Email        string  `json:"email" binding:"required,email,max=100"`
	DateOfBirth  string  `json:"dateOfBirth" binding:"required,adult"`
	Salary       float64 `json:"salary" binding:"required,gt=0,lte=999999999.99"`
	DepartmentID int64   `json:"departmentId" binding:"required,gt=0"`
}

type PagedEmployees struct {
	Items      []Employee `json:"items"`
	TotalCount int64      `json:"totalCount"`
}
