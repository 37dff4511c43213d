package models

// Nationality is a canonical country entry referenced by players and clubs.
// Rows are created during bulk load and only touched again by explicit correction.
type Nationality struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:255;not null;uniqueIndex"`
}

// TableName returns the table name for Nationality
func (Nationality) TableName() string {
	return "nationalities"
}
