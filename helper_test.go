package dcf

// fp is a helper for test to build optional statement values from const
func fp(v float64) *float64 { return &v }

// almost reports whether got is within tol of want.
func almost(got, want, tol float64) bool {
	d := got - want
	return d < tol && d > -tol
}
