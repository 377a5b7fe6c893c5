// Package catalog holds the static curriculum: levels, lessons,
// subscription plans and the placement-test question bank. It is
// read-only data compiled into the binary.
package catalog

// Lesson is a single teachable unit inside a level.
type Lesson struct {
	ID            string
	Title         string
	Description   string
	Content       string // may embed [CODE_START]/[CODE_END] fenced blocks
	AIContext     string // starter question suggested to the tutor
	EstimatedTime string
}

// Level is a fixed curriculum tier with an ordered lesson sequence.
type Level struct {
	ID          string
	Title       string
	Description string
	Lessons     []Lesson
}

const (
	AppName   = "CodeGenio"
	AppSlogan = "¡Aprende Programación Jugando!"
)

// Level ids, ordered from easiest to hardest.
const (
	LevelInicial    = "inicial"
	LevelIntermedio = "intermedio"
	LevelAvanzado   = "avanzado"
)

// LevelByID returns the level with the given id, or nil.
func LevelByID(id string) *Level {
	for i := range Levels {
		if Levels[i].ID == id {
			return &Levels[i]
		}
	}
	return nil
}

// LessonByID returns the lesson and its owning level, or nil, nil.
func LessonByID(id string) (*Lesson, *Level) {
	for i := range Levels {
		for j := range Levels[i].Lessons {
			if Levels[i].Lessons[j].ID == id {
				return &Levels[i].Lessons[j], &Levels[i]
			}
		}
	}
	return nil, nil
}

// NextLesson returns the lesson following lessonID within its level,
// or nil when lessonID is unknown or last in its level.
func NextLesson(lessonID string) *Lesson {
	_, lvl := LessonByID(lessonID)
	if lvl == nil {
		return nil
	}
	for i := range lvl.Lessons {
		if lvl.Lessons[i].ID == lessonID && i+1 < len(lvl.Lessons) {
			return &lvl.Lessons[i+1]
		}
	}
	return nil
}

// IsFinalCourseLesson reports whether lessonID is the last lesson of the
// last level, which unlocks the completion certificate.
func IsFinalCourseLesson(lessonID string) bool {
	if len(Levels) == 0 {
		return false
	}
	last := Levels[len(Levels)-1]
	if len(last.Lessons) == 0 {
		return false
	}
	return last.Lessons[len(last.Lessons)-1].ID == lessonID
}

// TotalLessons returns the number of lessons across all levels.
func TotalLessons() int {
	n := 0
	for i := range Levels {
		n += len(Levels[i].Lessons)
	}
	return n
}
