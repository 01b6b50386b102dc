package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillras-be/internal/catalog"
)

func TestHasAccess(t *testing.T) {
	tiers := []catalog.PackageID{catalog.PackageStarter, catalog.PackageProfessional, catalog.PackageEnterprise}

	for i, user := range tiers {
		for j, required := range tiers {
			got := HasAccess(user, required)
			assert.Equal(t, i >= j, got, "user=%s required=%s", user, required)
		}
	}

	t.Run("no package never unlocks", func(t *testing.T) {
		for _, required := range tiers {
			assert.False(t, HasAccess("", required))
		}
	})

	t.Run("unknown values rank zero", func(t *testing.T) {
		assert.False(t, HasAccess("platinum", catalog.PackageStarter))
	})
}

func TestAvailableCoursesMonotonic(t *testing.T) {
	starter := AvailableCourses(catalog.PackageStarter)
	pro := AvailableCourses(catalog.PackageProfessional)
	ent := AvailableCourses(catalog.PackageEnterprise)

	assert.NotEmpty(t, starter)
	assert.Subset(t, pro, starter)
	assert.Subset(t, ent, pro)
	assert.Nil(t, AvailableCourses(""))
}

func TestCanViewCourse(t *testing.T) {
	assert.True(t, CanViewCourse(catalog.PackageStarter, "premiere-pro"))
	assert.False(t, CanViewCourse(catalog.PackageStarter, "after-effects"))
	assert.True(t, CanViewCourse(catalog.PackageEnterprise, "premiere-pro"))
	assert.False(t, CanViewCourse("", "premiere-pro"))
}
