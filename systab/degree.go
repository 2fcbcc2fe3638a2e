package systab

// degreeCDF is the RaptorQ degree distribution (RFC 6330 Table for Deg(v)):
// row i is the exclusive upper bound on v (out of 2^20) for degree i+1, so
// Deg(v) returns i+1 for degreeCDF[i-1] <= v < degreeCDF[i]. The table is a
// piecewise-constant CDF with 30 steps.
var degreeCDF = [30]int{
	5243, 529531, 704294, 791675, 844104, 879057, 904023, 922747, 937311,
	948962, 958494, 966438, 973160, 978921, 983914, 988283, 992138, 995565,
	998631, 1001391, 1003887, 1006157, 1008229, 1010129, 1011876, 1013490,
	1014983, 1016370, 1017662, 1048576,
}

// Deg maps v in [0, 2^20) to a degree in [1,30] per the piecewise-constant
// CDF above: the smallest i such that v < degreeCDF[i] gives degree i+1.
func Deg(v int) int {
	for i, threshold := range degreeCDF {
		if v < threshold {
			return i + 1
		}
	}
	return 30 // reached only for v >= 2^20; every v below that returns in the loop.
}
