package inventory

import (
	"errors"

	"seatbook/internal/domain/course"
)

var (
	ErrCourseNotFound = errors.New("course not found in inventory")
	ErrNoCourseSeats  = errors.New("course seats exhausted")
	ErrNoStudySeats   = errors.New("study hall seats exhausted")
)

// Seed values restored on first run and on every reset.
const SeedStudySeats = 60

type seedCourse struct {
	title string
	fee   int64
	seats int
}

var seedCourses = []seedCourse{
	{title: "Digital Literacy (1 month)", fee: 1500, seats: 20},
	{title: "DCA (6 months)", fee: 6000, seats: 15},
	{title: "MS Office Essentials (2 months)", fee: 3000, seats: 10},
}

// Inventory owns all mutable seat state: the course list and the shared
// study-hall pool. It is not safe for concurrent use; the reservation
// engine serializes access.
type Inventory struct {
	courses      []*course.Course
	studySeats   int
	nextCourseID int64
}

func NewSeeded() *Inventory {
	inv := &Inventory{}
	inv.ResetToSeed()
	return inv
}

func (i *Inventory) ResetToSeed() {
	i.courses = make([]*course.Course, 0, len(seedCourses))
	for idx, s := range seedCourses {
		c := course.ReconstructCourse(int64(idx+1), s.title, s.fee, s.seats)
		i.courses = append(i.courses, c)
	}
	i.studySeats = SeedStudySeats
	i.nextCourseID = int64(len(seedCourses) + 1)
}

func (i *Inventory) FindCourse(id int64) (*course.Course, bool) {
	for _, c := range i.courses {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

func (i *Inventory) HasCourseSeat(id int64) bool {
	c, ok := i.FindCourse(id)
	return ok && c.HasSeat()
}

func (i *Inventory) DecrementCourseSeat(id int64) error {
	c, ok := i.FindCourse(id)
	if !ok {
		return ErrCourseNotFound
	}
	if err := c.DecrementSeat(); err != nil {
		return ErrNoCourseSeats
	}
	return nil
}

func (i *Inventory) HasStudyHallSeat() bool {
	return i.studySeats > 0
}

func (i *Inventory) DecrementStudyHallSeat() error {
	if i.studySeats <= 0 {
		return ErrNoStudySeats
	}
	i.studySeats--
	return nil
}

func (i *Inventory) AddCourse(title string, fee int64, seats int) (int64, error) {
	c, err := course.NewCourse(i.nextCourseID, title, fee, seats)
	if err != nil {
		return 0, err
	}
	i.courses = append(i.courses, c)
	i.nextCourseID++
	return c.ID(), nil
}

// ResizeStudyHall shifts the pool by delta, clamping at zero so the pool
// never goes negative even when the step overshoots.
func (i *Inventory) ResizeStudyHall(delta int) {
	next := i.studySeats + delta
	if next < 0 {
		next = 0
	}
	i.studySeats = next
}

func (i *Inventory) Courses() []*course.Course {
	out := make([]*course.Course, len(i.courses))
	copy(out, i.courses)
	return out
}

func (i *Inventory) StudyHallSeats() int {
	return i.studySeats
}

// CourseSnapshot is the persisted shape of one course.
type CourseSnapshot struct {
	ID    int64
	Title string
	Fee   int64
	Seats int
}

func (i *Inventory) Snapshot() ([]CourseSnapshot, int) {
	out := make([]CourseSnapshot, len(i.courses))
	for idx, c := range i.courses {
		out[idx] = CourseSnapshot{
			ID:    c.ID(),
			Title: c.Title(),
			Fee:   c.Fee(),
			Seats: c.Seats(),
		}
	}
	return out, i.studySeats
}

func Restore(courses []CourseSnapshot, studySeats int) *Inventory {
	inv := &Inventory{
		courses:    make([]*course.Course, 0, len(courses)),
		studySeats: studySeats,
	}
	if inv.studySeats < 0 {
		inv.studySeats = 0
	}

	var maxID int64
	for _, s := range courses {
		inv.courses = append(inv.courses, course.ReconstructCourse(s.ID, s.Title, s.Fee, s.Seats))
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	inv.nextCourseID = maxID + 1
	return inv
}
