package response

import (
	"seatbook/internal/usecase"

	"github.com/jinzhu/copier"
)

type CourseResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Fee   int64  `json:"fee"`
	Seats int    `json:"seats"`
}

type StudyHallResponse struct {
	AvailableSeats int `json:"availableSeats"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type AddCourseResponse struct {
	ID int64 `json:"id"`
}

func FromCourseView(v *usecase.CourseView) *CourseResponse {
	var resp CourseResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCourseViews(views []*usecase.CourseView) []*CourseResponse {
	out := make([]*CourseResponse, len(views))
	for i, v := range views {
		out[i] = FromCourseView(v)
	}
	return out
}

func FromStudyHallView(v usecase.StudyHallView) *StudyHallResponse {
	return &StudyHallResponse{AvailableSeats: v.AvailableSeats}
}
