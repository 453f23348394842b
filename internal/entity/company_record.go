package entity

// CompanyRecord is one accepted business contact extracted from a candidate
// site. The JSON tags carry the Korean field names the reporting client
// expects; they must not change.
type CompanyRecord struct {
	URL         string `json:"URL"`
	SiteTitle   string `json:"사이트명"`
	CompanyName string `json:"회사명"`
	CEOName     string `json:"대표자명"`
	Address     string `json:"회사주소"`
	Email       string `json:"이메일"`
}
