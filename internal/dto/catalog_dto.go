package dto

// --- Catalog & Dashboard DTOs ---

type ChapterDTO struct {
	Id        string   `json:"id"`
	Title     string   `json:"title"`
	VideoId   string   `json:"video_id,omitempty"`
	Resources []string `json:"resources,omitempty"`
	Completed bool     `json:"completed"`
}

type ModuleDTO struct {
	Id       string       `json:"id"`
	Title    string       `json:"title"`
	Chapters []ChapterDTO `json:"chapters"`
}

type CourseDTO struct {
	Id              string      `json:"id"`
	Name            string      `json:"name"`
	Locked          bool        `json:"locked"`
	Modules         []ModuleDTO `json:"modules,omitempty"`
	TotalChapters   int         `json:"total_chapters"`
	PercentComplete int         `json:"percent_complete"`
	Completed       bool        `json:"completed"`
}

type PackageDTO struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price"`
	CourseIds     []string `json:"course_ids"`
	PaymentLink   string   `json:"payment_link"`
}

type DashboardResponse struct {
	Email        string      `json:"email"`
	FullName     string      `json:"full_name"`
	Package      string      `json:"package"`
	Courses      []CourseDTO `json:"courses"`
	Certificates int         `json:"certificates"`
}

// --- Progress DTOs ---

type MarkChapterRequest struct {
	CourseId  string `json:"course_id" validate:"required"`
	ChapterId string `json:"chapter_id" validate:"required"`
	Completed bool   `json:"completed"`
}

type CourseProgressResponse struct {
	CourseId          string   `json:"course_id"`
	CompletedChapters []string `json:"completed_chapters"`
	TotalChapters     int      `json:"total_chapters"`
	PercentComplete   int      `json:"percent_complete"`
	Completed         bool     `json:"completed"`
}
