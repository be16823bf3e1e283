package version

// MeetsMinimum reports whether v satisfies floor using a component-wise
// comparison: major >= floor.Major and minor >= floor.Minor. Patch is ignored.
//
// Minor is not reset when major rolls over, so 2.0 does not satisfy 1.22.
// Course requirements pin the major version, which keeps this exact.
func (v Version) MeetsMinimum(floor Version) bool {
	return v.Major >= floor.Major && v.Minor >= floor.Minor
}
