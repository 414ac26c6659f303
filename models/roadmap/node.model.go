package roadmap

import "gorm.io/gorm"

// Node is one learning step of a roadmap. Students unlock nodes in
// Position order, and a node counts as completed once its quiz is
// passed and its project submission reaches the approval score.
type Node struct {
	gorm.Model
	RoadmapID        uint   `json:"roadmap_id" gorm:"index;not null"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Icon             string `json:"icon"`
	Position         int    `json:"position" gorm:"default:0;index"` // node order within roadmap
}

// KeyLearningObjective is a single takeaway listed on a node
type KeyLearningObjective struct {
	gorm.Model
	NodeID uint   `json:"node_id" gorm:"index;not null"`
	Body   string `json:"body"`
}

// Resource is an external reading/watching link attached to a node
type Resource struct {
	gorm.Model
	NodeID uint   `json:"node_id" gorm:"index;not null"`
	Link   string `json:"link"`
}
