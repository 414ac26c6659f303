package roadmap

import "gorm.io/gorm"

// Roadmap is an ordered learning track authored by an admin
type Roadmap struct {
	gorm.Model
	Title     string `json:"title"`
	Published bool   `json:"published" gorm:"default:false"`
	CreatedBy uint   `json:"created_by" gorm:"index"`
}

// Enrollment links a student to a roadmap they have joined
type Enrollment struct {
	gorm.Model
	RoadmapID uint `json:"roadmap_id" gorm:"index;not null;uniqueIndex:idx_roadmap_student"`
	StudentID uint `json:"student_id" gorm:"index;not null;uniqueIndex:idx_roadmap_student"`
}
