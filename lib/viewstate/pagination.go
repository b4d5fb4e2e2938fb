// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewstate

import "strconv"

// ControlKind distinguishes the buttons of a pagination bar.
type ControlKind int

const (
	ControlPrevious ControlKind = iota
	ControlPage
	ControlEllipsis
	ControlNext
)

// PageControl is one button of a pagination bar.
type PageControl struct {
	Kind ControlKind

	// Page is the page the button navigates to. Zero for ellipses.
	Page int

	// Active marks the button for the current page.
	Active bool

	// Disabled marks a Previous/Next button whose direction has no
	// page. Ellipses are always disabled.
	Disabled bool
}

// Label is the button text.
func (control PageControl) Label() string {
	switch control.Kind {
	case ControlPrevious:
		return "Previous"
	case ControlNext:
		return "Next"
	case ControlEllipsis:
		return "…"
	}
	return strconv.Itoa(control.Page)
}

// windowSize is the most numbered buttons shown around the current
// page, not counting the first/last shortcuts.
const windowSize = 5

// PaginationControls lays out the pagination bar for currentPage of
// lastPage:
//
//	start = max(1, current-2)
//	end   = min(last, start+4)
//	start = max(1, end-4)
//
// A "1" shortcut precedes the window when start > 1, with an ellipsis
// between them when start > 2. The end mirrors this: an ellipsis when
// end < last-1 and a last-page shortcut when end < last. Previous and
// Next are disabled per hasPrev/hasNext.
func PaginationControls(currentPage, lastPage int, hasPrev, hasNext bool) []PageControl {
	lastPage = max(lastPage, 1)
	currentPage = min(max(currentPage, 1), lastPage)

	start := max(1, currentPage-windowSize/2)
	end := min(lastPage, start+windowSize-1)
	start = max(1, end-windowSize+1)

	controls := []PageControl{{Kind: ControlPrevious, Page: currentPage - 1, Disabled: !hasPrev}}
	if start > 1 {
		controls = append(controls, PageControl{Kind: ControlPage, Page: 1})
		if start > 2 {
			controls = append(controls, PageControl{Kind: ControlEllipsis, Disabled: true})
		}
	}
	for page := start; page <= end; page++ {
		controls = append(controls, PageControl{Kind: ControlPage, Page: page, Active: page == currentPage})
	}
	if end < lastPage {
		if end < lastPage-1 {
			controls = append(controls, PageControl{Kind: ControlEllipsis, Disabled: true})
		}
		controls = append(controls, PageControl{Kind: ControlPage, Page: lastPage})
	}
	controls = append(controls, PageControl{Kind: ControlNext, Page: currentPage + 1, Disabled: !hasNext})
	return controls
}
