package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	assert.Equal(t, 1, Rank(PackageStarter))
	assert.Equal(t, 2, Rank(PackageProfessional))
	assert.Equal(t, 3, Rank(PackageEnterprise))
	assert.Equal(t, 0, Rank(""))
	assert.Equal(t, 0, Rank("platinum"))
}

func TestFindPackage(t *testing.T) {
	p, ok := FindPackage(PackageProfessional)
	require.True(t, ok)
	assert.Equal(t, "Professional", p.Name)
	assert.NotEmpty(t, p.CourseIds)

	_, ok = FindPackage("platinum")
	assert.False(t, ok)
}

func TestCatalogIntegrity(t *testing.T) {
	// Every course id referenced by a package must resolve, and no course
	// may belong to more than one tier.
	seen := map[string]PackageID{}
	for _, p := range Packages() {
		for _, courseId := range p.CourseIds {
			_, ok := FindCourse(courseId)
			assert.True(t, ok, "package %s references unknown course %s", p.Id, courseId)

			owner, dup := seen[courseId]
			assert.False(t, dup, "course %s owned by both %s and %s", courseId, owner, p.Id)
			seen[courseId] = p.Id
		}
	}
}

func TestChapterIdsUniqueAndOrdered(t *testing.T) {
	for _, c := range Courses() {
		ids := c.ChapterIds()
		require.NotEmpty(t, ids, "course %s has no chapters", c.Id)

		unique := map[string]bool{}
		for _, id := range ids {
			assert.False(t, unique[id], "duplicate chapter id %s in course %s", id, c.Id)
			unique[id] = true
		}
	}
}

func TestPackagesReturnsCopy(t *testing.T) {
	a := Packages()
	a[0].Name = "mutated"

	b := Packages()
	assert.NotEqual(t, "mutated", b[0].Name)
}
