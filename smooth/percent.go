package smooth

// Percent returns the fraction of the remaining distance closed after
// elapsed seconds with the given retention: 1 - retention^elapsed.
//
// The formula composes exactly: driving by a and then by b leaves
// retention^a * retention^b = retention^(a+b) of the gap, the same as one
// drive by a+b.
func Percent(retention, elapsed float32) float32 {
	return 1 - power(retention, elapsed)
}
