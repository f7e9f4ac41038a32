package domain

// Board represents a collaborative goal board
type Board struct {
	BaseModel
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	IsDeleted    bool           `gorm:"not null;default:false;index:idx_boards_is_deleted" json:"is_deleted"`
	Participants []Participant  `gorm:"foreignKey:BoardID;constraint:OnDelete:RESTRICT" json:"participants,omitempty"`
	Categories   []GoalCategory `gorm:"foreignKey:BoardID;constraint:OnDelete:RESTRICT" json:"categories,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
