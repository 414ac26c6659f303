package progression

import (
	roadmapModels "dojo/models/roadmap"

	"gorm.io/gorm"
)

// UnlockedNodes returns the prefix of the roadmap's node sequence the
// student may currently access. The first node is always unlocked; each
// later node unlocks only once its immediate predecessor is complete.
// The walk stops at the first locked node, so the result is always a
// prefix, never a sparse subset.
//
// Fails with ErrNotPublished when the roadmap is missing or unpublished
// and ErrNotEnrolled when the student has not joined it.
func UnlockedNodes(db *gorm.DB, studentID, roadmapID uint) ([]roadmapModels.Node, error) {
	var rm roadmapModels.Roadmap
	if err := db.Where("id = ? AND published = ?", roadmapID, true).First(&rm).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotPublished
		}
		return nil, err
	}

	var enrollmentCount int64
	if err := db.Model(&roadmapModels.Enrollment{}).
		Where("roadmap_id = ? AND student_id = ?", roadmapID, studentID).
		Count(&enrollmentCount).Error; err != nil {
		return nil, err
	}
	if enrollmentCount == 0 {
		return nil, ErrNotEnrolled
	}

	var nodes []roadmapModels.Node
	if err := db.Where("roadmap_id = ?", roadmapID).
		Order("position asc, id asc").
		Find(&nodes).Error; err != nil {
		return nil, err
	}

	unlocked := make([]roadmapModels.Node, 0, len(nodes))
	for i, node := range nodes {
		if i > 0 {
			prevDone, err := IsNodeComplete(db, studentID, nodes[i-1].ID)
			if err != nil {
				return nil, err
			}
			if !prevDone {
				break
			}
		}
		unlocked = append(unlocked, node)
	}
	return unlocked, nil
}

// Join enrolls a student into a published roadmap. Fails with
// ErrNotPublished for missing/unpublished roadmaps and
// ErrAlreadyEnrolled on a duplicate join.
func Join(db *gorm.DB, studentID, roadmapID uint) (roadmapModels.Enrollment, error) {
	var rm roadmapModels.Roadmap
	if err := db.Where("id = ? AND published = ?", roadmapID, true).First(&rm).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return roadmapModels.Enrollment{}, ErrNotPublished
		}
		return roadmapModels.Enrollment{}, err
	}

	var existing roadmapModels.Enrollment
	err := db.Where("roadmap_id = ? AND student_id = ?", roadmapID, studentID).First(&existing).Error
	if err == nil {
		return roadmapModels.Enrollment{}, ErrAlreadyEnrolled
	}
	if err != gorm.ErrRecordNotFound {
		return roadmapModels.Enrollment{}, err
	}

	enrollment := roadmapModels.Enrollment{
		RoadmapID: roadmapID,
		StudentID: studentID,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return roadmapModels.Enrollment{}, err
	}
	return enrollment, nil
}
