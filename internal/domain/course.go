package domain

import (
	"fmt"
	"strings"
)

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "Beginner"
	CourseLevelIntermediate CourseLevel = "Intermediate"
	CourseLevelAdvanced     CourseLevel = "Advanced"
)

type Course struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Instructor       string      `json:"instructor"`
	Duration         string      `json:"duration"`
	Level            CourseLevel `json:"level"`
	Price            float64     `json:"price"`
	OriginalPrice    *float64    `json:"originalPrice,omitempty"`
	Discount         *int        `json:"discount,omitempty"`
	Rating           float64     `json:"rating"`
	ReviewCount      int         `json:"reviewCount"`
	Category         string      `json:"category"`
	Image            string      `json:"image"`
	Tags             []string    `json:"tags"`
	IsPopular        bool        `json:"isPopular,omitempty"`
	IsNew            bool        `json:"isNew,omitempty"`
	CompletionRate   *float64    `json:"completionRate,omitempty"`
	StudentsEnrolled int         `json:"studentsEnrolled"`
}

// CourseQuery selects courses from the catalog. Empty strings and false
// values mean "no filter".
type CourseQuery struct {
	Category    string
	Level       string
	PopularOnly bool
	NewOnly     bool
	Limit       int
}

func (q CourseQuery) Matches(course Course) bool {
	if q.Category != "" && !strings.EqualFold(q.Category, "all") && !strings.EqualFold(q.Category, course.Category) {
		return false
	}
	if q.Level != "" && !strings.EqualFold(q.Level, string(course.Level)) {
		return false
	}
	if q.PopularOnly && !course.IsPopular {
		return false
	}
	if q.NewOnly && !course.IsNew {
		return false
	}
	return true
}

func (q CourseQuery) String() string {
	return fmt.Sprintf("category=%s;limit=%d;level=%s;popular=%t;new=%t", q.Category, q.Limit, q.Level, q.PopularOnly, q.NewOnly)
}
