package models

// Banner is a homepage hero/banner slot managed by content admins.
type Banner struct {
	BaseUUIDModel
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	ImageURL string `gorm:"type:varchar(512);not null" json:"imageUrl"`
	LinkURL  string `gorm:"type:varchar(512)"          json:"linkUrl"`
	Position int    `gorm:"type:int;not null;default:0" json:"position"`
	Active   bool   `gorm:"not null;default:true"      json:"active"`
}

// ContentPage is a managed static page (About, Programs, Privacy Policy...).
type ContentPage struct {
	BaseUUIDModel
	Slug      string `gorm:"type:varchar(128);not null;uniqueIndex" json:"slug"`
	Title     string `gorm:"type:varchar(255);not null"             json:"title"`
	Body      string `gorm:"type:text"                              json:"body"`
	Published bool   `gorm:"not null;default:false"                 json:"published"`
}
