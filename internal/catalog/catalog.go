// Static, code-defined package and course tables. This is the single source
// of truth for tier ranking and course ownership; everything entitlement
// related is derived from it.
package catalog

type PackageID string

const (
	PackageStarter      PackageID = "starter"
	PackageProfessional PackageID = "professional"
	PackageEnterprise   PackageID = "enterprise"
)

// packageRanks orders the tiers. Unknown or empty values rank 0, which
// grants nothing.
var packageRanks = map[PackageID]int{
	PackageStarter:      1,
	PackageProfessional: 2,
	PackageEnterprise:   3,
}

func Rank(id PackageID) int {
	return packageRanks[id]
}

type Chapter struct {
	Id                    string
	Title                 string
	VideoId               string
	DownloadableResources []string
}

type Module struct {
	Id       string
	Title    string
	Chapters []Chapter
}

type Course struct {
	Id      string
	Name    string
	Modules []Module
}

// Package is a purchasable tier. Prices are whole rupees. CourseIds lists
// the courses this tier adds on top of every lower tier; the effective
// course set for a buyer is the union over all tiers at or below their rank.
type Package struct {
	Id                 PackageID
	Name               string
	Price              int64
	OriginalPrice      int64
	CourseIds          []string
	DefaultPaymentLink string
}

var packages = []Package{
	{
		Id:                 PackageStarter,
		Name:               "Starter",
		Price:              4800,
		OriginalPrice:      9600,
		CourseIds:          []string{"premiere-pro"},
		DefaultPaymentLink: "https://pay.skillras.com/starter",
	},
	{
		Id:                 PackageProfessional,
		Name:               "Professional",
		Price:              9600,
		OriginalPrice:      19200,
		CourseIds:          []string{"after-effects", "graphic-design"},
		DefaultPaymentLink: "https://pay.skillras.com/professional",
	},
	{
		Id:                 PackageEnterprise,
		Name:               "Enterprise",
		Price:              19200,
		OriginalPrice:      38400,
		CourseIds:          []string{"video-editing-masterclass", "youtube-growth"},
		DefaultPaymentLink: "https://pay.skillras.com/enterprise",
	},
}

var courses = []Course{
	{
		Id:   "premiere-pro",
		Name: "Premiere Pro Mastery",
		Modules: []Module{
			{
				Id:    "pp-basics",
				Title: "Editing Fundamentals",
				Chapters: []Chapter{
					{Id: "pp-01", Title: "Workspace Tour", VideoId: "pp_vid_01"},
					{Id: "pp-02", Title: "Cuts and Trims", VideoId: "pp_vid_02"},
					{Id: "pp-03", Title: "Audio Cleanup", VideoId: "pp_vid_03", DownloadableResources: []string{"pp-audio-presets.zip"}},
				},
			},
			{
				Id:    "pp-advanced",
				Title: "Color and Delivery",
				Chapters: []Chapter{
					{Id: "pp-04", Title: "Color Grading", VideoId: "pp_vid_04"},
					{Id: "pp-05", Title: "Export Settings", VideoId: "pp_vid_05"},
				},
			},
		},
	},
	{
		Id:   "after-effects",
		Name: "After Effects Motion Design",
		Modules: []Module{
			{
				Id:    "ae-core",
				Title: "Motion Essentials",
				Chapters: []Chapter{
					{Id: "ae-01", Title: "Compositions", VideoId: "ae_vid_01"},
					{Id: "ae-02", Title: "Keyframe Animation", VideoId: "ae_vid_02"},
					{Id: "ae-03", Title: "Masks and Mattes", VideoId: "ae_vid_03"},
				},
			},
		},
	},
	{
		Id:   "graphic-design",
		Name: "Graphic Design Essentials",
		Modules: []Module{
			{
				Id:    "gd-core",
				Title: "Design Foundations",
				Chapters: []Chapter{
					{Id: "gd-01", Title: "Typography", VideoId: "gd_vid_01"},
					{Id: "gd-02", Title: "Layout and Grids", VideoId: "gd_vid_02", DownloadableResources: []string{"gd-templates.zip"}},
				},
			},
		},
	},
	{
		Id:   "video-editing-masterclass",
		Name: "Video Editing Masterclass",
		Modules: []Module{
			{
				Id:    "vm-pro",
				Title: "Professional Workflows",
				Chapters: []Chapter{
					{Id: "vm-01", Title: "Client Projects", VideoId: "vm_vid_01"},
					{Id: "vm-02", Title: "Multicam Editing", VideoId: "vm_vid_02"},
					{Id: "vm-03", Title: "Sound Design", VideoId: "vm_vid_03"},
					{Id: "vm-04", Title: "Final Delivery", VideoId: "vm_vid_04"},
				},
			},
		},
	},
	{
		Id:   "youtube-growth",
		Name: "YouTube Growth Blueprint",
		Modules: []Module{
			{
				Id:    "yt-core",
				Title: "Channel Strategy",
				Chapters: []Chapter{
					{Id: "yt-01", Title: "Niche Research", VideoId: "yt_vid_01"},
					{Id: "yt-02", Title: "Thumbnails and Titles", VideoId: "yt_vid_02"},
				},
			},
		},
	},
}

func Packages() []Package {
	out := make([]Package, len(packages))
	copy(out, packages)
	return out
}

func FindPackage(id PackageID) (Package, bool) {
	for _, p := range packages {
		if p.Id == id {
			return p, true
		}
	}
	return Package{}, false
}

func Courses() []Course {
	out := make([]Course, len(courses))
	copy(out, courses)
	return out
}

func FindCourse(id string) (Course, bool) {
	for _, c := range courses {
		if c.Id == id {
			return c, true
		}
	}
	return Course{}, false
}

// ChapterIds flattens the module tree into the ordered list of chapter ids.
func (c Course) ChapterIds() []string {
	var ids []string
	for _, m := range c.Modules {
		for _, ch := range m.Chapters {
			ids = append(ids, ch.Id)
		}
	}
	return ids
}
