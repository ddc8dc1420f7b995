// file: internals/features/school/model/support_models.go
// Supporting records: they are not mutated through the form handlers but
// they are real dependents for the delete guards.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GradeModel represents the `grades` table.
type GradeModel struct {
	GradeID    int `json:"grade_id" gorm:"column:grade_id;primaryKey;autoIncrement"`
	GradeLevel int `json:"grade_level" gorm:"column:grade_level;uniqueIndex;not null"`
}

func (GradeModel) TableName() string { return "grades" }

// ResultModel represents the `results` table. A result belongs to an exam
// or an assignment, never both.
type ResultModel struct {
	ResultID    int `json:"result_id" gorm:"column:result_id;primaryKey;autoIncrement"`
	ResultScore int `json:"result_score" gorm:"column:result_score;not null"`

	ResultExamID       *int      `json:"result_exam_id,omitempty" gorm:"column:result_exam_id"`
	ResultAssignmentID *int      `json:"result_assignment_id,omitempty" gorm:"column:result_assignment_id"`
	ResultStudentID    uuid.UUID `json:"result_student_id" gorm:"column:result_student_id;type:uuid;not null"`
}

func (ResultModel) TableName() string { return "results" }

// EventModel represents the `events` table.
type EventModel struct {
	EventID          int       `json:"event_id" gorm:"column:event_id;primaryKey;autoIncrement"`
	EventTitle       string    `json:"event_title" gorm:"column:event_title;type:varchar(150);not null"`
	EventDescription string    `json:"event_description" gorm:"column:event_description;type:text;not null"`
	EventStartTime   time.Time `json:"event_start_time" gorm:"column:event_start_time;not null"`
	EventEndTime     time.Time `json:"event_end_time" gorm:"column:event_end_time;not null"`

	EventClassID *int `json:"event_class_id,omitempty" gorm:"column:event_class_id"` // NULL = school-wide
}

func (EventModel) TableName() string { return "events" }

// AnnouncementModel represents the `announcements` table.
type AnnouncementModel struct {
	AnnouncementID          int            `json:"announcement_id" gorm:"column:announcement_id;primaryKey;autoIncrement"`
	AnnouncementTitle       string         `json:"announcement_title" gorm:"column:announcement_title;type:varchar(150);not null"`
	AnnouncementDescription string         `json:"announcement_description" gorm:"column:announcement_description;type:text;not null"`
	AnnouncementDate        time.Time      `json:"announcement_date" gorm:"column:announcement_date;not null"`
	AnnouncementTags        pq.StringArray `json:"announcement_tags" gorm:"column:announcement_tags;type:text[]"`

	AnnouncementClassID *int `json:"announcement_class_id,omitempty" gorm:"column:announcement_class_id"` // NULL = school-wide
}

func (AnnouncementModel) TableName() string { return "announcements" }
