package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the url column and
	// the key hints are dropped.
	LayoutCompactWidth = 60

	// LayoutWideWidth is the width from which the url column gets half of
	// the list.
	LayoutWideWidth = 120
)

// Fixed heights of the chrome around the station list.
const (
	headerHeight     = 1
	commandBarHeight = 1
	statusHeight     = 1
	nowPlayingHeight = 4 // bordered panel: two lines plus border
)

// Dialog widths.
const (
	dialogWidth     = 60
	helpDialogWidth = 44
)
