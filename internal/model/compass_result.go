package model

import "gorm.io/datatypes"

// CompassResult is a completed test stored for history and statistics.
type CompassResult struct {
	UUIDBase
	SessionID           string         `gorm:"index;type:varchar(36)" json:"sessionId"`
	Orientation         string         `gorm:"size:120;index" json:"orientation"`
	ArchetypeID         string         `gorm:"size:80;index" json:"archetypeId"`
	CentralizationScore float64        `json:"centralizationScore"`
	PrivatePublicScore  float64        `json:"privatePublicScore"`
	RawCentralization   float64        `json:"rawCentralization"`
	RawPrivatePublic    float64        `json:"rawPrivatePublic"`
	QuestionsAnswered   int            `json:"questionsAnswered"`
	Payload             datatypes.JSON `json:"payload"`
	// Discarded results stay in history and statistics but are no longer
	// a session's last result.
	Discarded bool `gorm:"default:false;index" json:"discarded"`
}

func (CompassResult) TableName() string {
	return "compass_results"
}
