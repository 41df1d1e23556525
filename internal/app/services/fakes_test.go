package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
)

// fakeNoticeStore is an in-memory notice store recording every call.
type fakeNoticeStore struct {
	notices []*models.Notice
	nextID  int
	calls   int
	failAll bool
}

func (f *fakeNoticeStore) fail() error {
	return apperrors.NewStoreError(fmt.Errorf("store down"), "store down")
}

func (f *fakeNoticeStore) Create(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	f.nextID++
	stored := *notice
	stored.ID = "notice-" + strconv.Itoa(f.nextID)
	f.notices = append(f.notices, &stored)
	return &stored, nil
}

func (f *fakeNoticeStore) GetByID(ctx context.Context, id string) (*models.Notice, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	for _, n := range f.notices {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, apperrors.NewNotFoundError("notice not found")
}

func (f *fakeNoticeStore) List(ctx context.Context, activeOnly bool, limit int) ([]*models.Notice, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	var out []*models.Notice
	for _, n := range f.notices {
		if activeOnly && !n.IsActive {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeNoticeStore) Update(ctx context.Context, id string, update models.NoticeUpdate) error {
	f.calls++
	if f.failAll {
		return f.fail()
	}
	for _, n := range f.notices {
		if n.ID != id {
			continue
		}
		if update.Title != nil {
			n.Title.Default = *update.Title
		}
		if update.IsActive != nil {
			n.IsActive = *update.IsActive
		}
		return nil
	}
	return apperrors.NewNotFoundError("notice not found")
}

func (f *fakeNoticeStore) Delete(ctx context.Context, id string) error {
	f.calls++
	if f.failAll {
		return f.fail()
	}
	for i, n := range f.notices {
		if n.ID == id {
			f.notices = append(f.notices[:i], f.notices[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("notice not found")
}

// fakeFacultyStore is an in-memory faculty store recording every call.
type fakeFacultyStore struct {
	members []*models.FacultyMember
	nextID  int
	calls   int
	failAll bool
}

func (f *fakeFacultyStore) fail() error {
	return apperrors.NewStoreError(fmt.Errorf("store down"), "store down")
}

func (f *fakeFacultyStore) Create(ctx context.Context, member *models.FacultyMember) (*models.FacultyMember, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	f.nextID++
	stored := *member
	stored.ID = "faculty-" + strconv.Itoa(f.nextID)
	f.members = append(f.members, &stored)
	return &stored, nil
}

func (f *fakeFacultyStore) GetByID(ctx context.Context, id string) (*models.FacultyMember, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, apperrors.NewNotFoundError("faculty member not found")
}

func (f *fakeFacultyStore) List(ctx context.Context, department string, limit int) ([]*models.FacultyMember, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	var out []*models.FacultyMember
	for _, m := range f.members {
		if department != "" && m.Department != department {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeFacultyStore) ListDepartments(ctx context.Context) ([]string, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	seen := map[string]bool{}
	var out []string
	for _, m := range f.members {
		if m.Department == "" || seen[m.Department] {
			continue
		}
		seen[m.Department] = true
		out = append(out, m.Department)
	}
	return out, nil
}

func (f *fakeFacultyStore) Update(ctx context.Context, id string, update models.FacultyUpdate) error {
	f.calls++
	if f.failAll {
		return f.fail()
	}
	for _, m := range f.members {
		if m.ID != id {
			continue
		}
		if update.Name != nil {
			m.Name.Default = *update.Name
		}
		if update.Order != nil {
			m.Order = *update.Order
		}
		return nil
	}
	return apperrors.NewNotFoundError("faculty member not found")
}

func (f *fakeFacultyStore) SetPhotoURL(ctx context.Context, id string, photoURL string) error {
	f.calls++
	if f.failAll {
		return f.fail()
	}
	for _, m := range f.members {
		if m.ID == id {
			m.PhotoURL = photoURL
			return nil
		}
	}
	return apperrors.NewNotFoundError("faculty member not found")
}

func (f *fakeFacultyStore) Delete(ctx context.Context, id string) error {
	f.calls++
	if f.failAll {
		return f.fail()
	}
	for i, m := range f.members {
		if m.ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("faculty member not found")
}

// fakeGalleryStore is an in-memory gallery store recording every call.
type fakeGalleryStore struct {
	items      []*models.GalleryItem
	nextID     int
	calls      int
	failAll    bool
	failCreate bool
}

func (f *fakeGalleryStore) fail() error {
	return apperrors.NewStoreError(fmt.Errorf("store down"), "store down")
}

func (f *fakeGalleryStore) Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	f.calls++
	if f.failAll || f.failCreate {
		return nil, f.fail()
	}
	f.nextID++
	stored := *item
	stored.ID = "gallery-" + strconv.Itoa(f.nextID)
	f.items = append(f.items, &stored)
	return &stored, nil
}

func (f *fakeGalleryStore) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, apperrors.NewNotFoundError("gallery item not found")
}

func (f *fakeGalleryStore) List(ctx context.Context, category string, limit int) ([]*models.GalleryItem, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	var out []*models.GalleryItem
	for _, it := range f.items {
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, it)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeGalleryStore) ListCategories(ctx context.Context) ([]string, error) {
	f.calls++
	if f.failAll {
		return nil, f.fail()
	}
	seen := map[string]bool{}
	var out []string
	for _, it := range f.items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out, nil
}

func (f *fakeGalleryStore) Update(ctx context.Context, id string, update models.GalleryUpdate) error {
	f.calls++
	if f.failAll {
		return f.fail()
	}
	for _, it := range f.items {
		if it.ID != id {
			continue
		}
		if update.Title != nil {
			it.Title.Default = *update.Title
		}
		if update.Category != nil {
			it.Category = *update.Category
		}
		return nil
	}
	return apperrors.NewNotFoundError("gallery item not found")
}

func (f *fakeGalleryStore) Delete(ctx context.Context, id string) error {
	f.calls++
	if f.failAll {
		return f.fail()
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("gallery item not found")
}

// fakeAssetStore records saves and deletes without touching the disk.
type fakeAssetStore struct {
	saved      []string
	deleted    []string
	failSave   bool
	failDelete bool
}

func (f *fakeAssetStore) Save(fileHeader *multipart.FileHeader, subdir, key string) (string, error) {
	if f.failSave {
		return "", apperrors.NewAssetError(fmt.Errorf("disk full"), "disk full")
	}
	url := "http://assets.test/" + subdir + "/" + key
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeAssetStore) Delete(fileURL string) error {
	if f.failDelete {
		return apperrors.NewAssetError(fmt.Errorf("io error"), "io error")
	}
	f.deleted = append(f.deleted, fileURL)
	return nil
}

// fakeUserStore serves fixed accounts keyed by email.
type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func adminSession() *models.Session {
	return &models.Session{UserID: "admin-1", Email: "admin@school.edu", Role: models.RoleAdmin}
}

func teacherSession() *models.Session {
	return &models.Session{UserID: "teacher-1", Email: "teacher@school.edu", Role: models.RoleTeacher}
}
