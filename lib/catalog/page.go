// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

// PageInfo describes where a page sits within the full listing. It has
// no custom decoding: a server pageInfo is decoded as a WirePageInfo and
// resolved against the request that produced it.
type PageInfo struct {
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	PerPage  int  `json:"perPage"`
	LastPage int  `json:"lastPage"`
	HasNext  bool `json:"hasNext"`
	HasPrev  bool `json:"hasPrev"`
}

// NewPageInfo computes pagination metadata from the total item count,
// the 1-based page number and the page size:
//
//	lastPage = max(1, ceil(total / perPage))
//	hasNext  = page < lastPage
//	hasPrev  = page > 1
//
// Out-of-range inputs are clamped: perPage and page to at least 1,
// total to at least 0. A page past lastPage is kept as requested so the
// caller can still step back from it.
func NewPageInfo(total, page, perPage int) PageInfo {
	total = max(total, 0)
	page = max(page, 1)
	perPage = max(perPage, 1)

	lastPage := total / perPage
	if total%perPage != 0 {
		lastPage++
	}
	lastPage = max(lastPage, 1)
	return PageInfo{
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage,
		HasNext:  page < lastPage,
		HasPrev:  page > 1,
	}
}

// Normalize recomputes the derived fields from Total, Page and PerPage.
func (info PageInfo) Normalize() PageInfo {
	return NewPageInfo(info.Total, info.Page, info.PerPage)
}

// WirePageInfo is a pageInfo object as servers send it. Servers have
// spelled the page number both "page" and "currentPage", and some omit
// fields the client already knows.
type WirePageInfo struct {
	Total       int `json:"total"`
	Page        int `json:"page"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
}

// Resolve computes authoritative PageInfo, taking the page number and
// page size from the request when the server left them out.
func (wire WirePageInfo) Resolve(requestedPage, requestedPerPage int) PageInfo {
	page := wire.Page
	if page == 0 {
		page = wire.CurrentPage
	}
	if page == 0 {
		page = requestedPage
	}
	perPage := wire.PerPage
	if perPage == 0 {
		perPage = requestedPerPage
	}
	return NewPageInfo(wire.Total, page, perPage)
}

// Page is one page of the listing.
type Page struct {
	Items    []Item   `json:"items"`
	PageInfo PageInfo `json:"pageInfo"`
}
