package request

type BookCourseRequest struct {
	CourseID int64  `json:"course_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type BookStudyHallRequest struct {
	Name string `json:"name" binding:"required"`
	// Hours is optional; the engine applies its default when omitted.
	Hours int `json:"hours" binding:"omitempty,gt=0"`
}
