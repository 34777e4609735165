// Package inmemdb provides map-backed repositories for DEV and tests,
// with the same semantics as the SQL implementations.
package inmemdb

import (
	"sync"

	"github.com/web3versity/web3versity/core/course"
	"github.com/web3versity/web3versity/core/progress"
	"github.com/web3versity/web3versity/core/user"
)

type (
	userTable struct {
		mutex sync.RWMutex
		table map[string]*user.User
	}

	courseTable struct {
		mutex   sync.RWMutex
		courses map[string]*course.Course
		lessons map[string]*course.Lesson
	}

	progressTable struct {
		mutex       sync.RWMutex
		completions map[string]map[string]*progress.Completion // userID -> lessonID
		xp          map[string]int
	}

	DB struct {
		user     *userTable
		course   *courseTable
		progress *progressTable
	}
)

func NewDB() *DB {
	return &DB{
		user: &userTable{table: make(map[string]*user.User)},
		course: &courseTable{
			courses: make(map[string]*course.Course),
			lessons: make(map[string]*course.Lesson),
		},
		progress: &progressTable{
			completions: make(map[string]map[string]*progress.Completion),
			xp:          make(map[string]int),
		},
	}
}

// NewSeededDB preloads the built-in course catalog.
func NewSeededDB() *DB {
	db := NewDB()
	courses, lessons := course.Seed()
	for i := range courses {
		db.course.courses[courses[i].ID] = &courses[i]
	}
	for i := range lessons {
		db.course.lessons[lessons[i].ID] = &lessons[i]
	}
	return db
}
