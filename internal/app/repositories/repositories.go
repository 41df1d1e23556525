package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances for dependency wiring.
type Repositories struct {
	NoticeRepository  *NoticeRepository
	FacultyRepository *FacultyRepository
	GalleryRepository *GalleryRepository
	UserRepository    *UserRepository
}

// NewRepositories creates all repositories over one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		NoticeRepository:  NewNoticeRepository(db),
		FacultyRepository: NewFacultyRepository(db),
		GalleryRepository: NewGalleryRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
