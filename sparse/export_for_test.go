// SPDX-License-Identifier: MIT

package sparse

// OptionsSnapshot exposes resolved codec options to external tests.
type OptionsSnapshot struct {
	RejectZeroValues bool
	MaxLineBytes     int
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{RejectZeroValues: o.rejectZeroValues, MaxLineBytes: o.maxLineBytes}
}
