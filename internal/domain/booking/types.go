package booking

type Kind string

const (
	KindCourse    Kind = "course"
	KindStudyHall Kind = "study"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCourse, KindStudyHall:
		return true
	default:
		return false
	}
}
