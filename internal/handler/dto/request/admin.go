package request

type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type AddCourseRequest struct {
	Title string `json:"title" binding:"required"`
	Fee   int64  `json:"fee" binding:"gte=0"`
	Seats int    `json:"seats" binding:"gte=0"`
}

type ResizeStudyHallRequest struct {
	// Delta may be negative; the engine clamps the pool at zero.
	Delta int `json:"delta" binding:"required"`
}
