// Package entitlement resolves what a buyer's package unlocks. Both the
// access predicate and the course listing are derived from the same ranked
// catalog table, so access is monotonic in tier by construction.
package entitlement

import (
	"skillras-be/internal/catalog"
)

// HasAccess reports whether userPackage unlocks content gated at
// requiredPackage. Empty or unknown packages rank 0 and unlock nothing.
func HasAccess(userPackage, requiredPackage catalog.PackageID) bool {
	return catalog.Rank(userPackage) >= catalog.Rank(requiredPackage)
}

// AvailableCourses returns the course ids unlocked by userPackage: the union
// of the course sets of every tier at or below the buyer's rank, in catalog
// order.
func AvailableCourses(userPackage catalog.PackageID) []string {
	userRank := catalog.Rank(userPackage)
	if userRank == 0 {
		return nil
	}

	var ids []string
	for _, p := range catalog.Packages() {
		if catalog.Rank(p.Id) > userRank {
			continue
		}
		ids = append(ids, p.CourseIds...)
	}
	return ids
}

// CanViewCourse reports whether the buyer's package includes the course.
func CanViewCourse(userPackage catalog.PackageID, courseId string) bool {
	for _, id := range AvailableCourses(userPackage) {
		if id == courseId {
			return true
		}
	}
	return false
}
