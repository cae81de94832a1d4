package model

// ApplicationStatus 入驻申请状态
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// IsDecision 是否为终态（审核结果）
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// ShopApplication 商家入驻申请
type ShopApplication struct {
	ID               string            `json:"id"`
	FullName         string            `json:"fullName"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	ShopName         string            `json:"shopName"`
	BusinessCategory string            `json:"businessCategory"`
	Description      string            `json:"description"`
	Status           ApplicationStatus `json:"status"`
	Date             string            `json:"date"`
}

// CloneApplications 拷贝申请集合
func CloneApplications(in []ShopApplication) []ShopApplication {
	if in == nil {
		return nil
	}
	return append([]ShopApplication(nil), in...)
}
