// Package query holds the pure pagination policy: it turns raw client paging
// input into a validated, bounded query descriptor. It has no dependency on
// the store or the delivery layer so it can be exercised as a function.
package query

import "slices"

// Direction is the sort order of a listing.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Default and ceiling values applied when a policy leaves a field zero.
const (
	DefaultPage      = 1
	DefaultPerPage   = 25
	DefaultMaxPage   = 100
	DefaultMaxPer    = 100
	DefaultOrderBy   = "created_at"
	DefaultDirection = Ascending
)

// Policy is an entity's paging configuration: defaults, ceilings, and the
// declared set of sortable fields. A zero field falls back to the package
// default, so `query.Policy{AllowedOrderBy: ...}` is a complete policy.
type Policy struct {
	DefaultPerPage int
	MaxPerPage     int
	MaxPage        int
	DefaultOrderBy string
	AllowedOrderBy []string
	DefaultOrder   Direction
}

// ListQuery is the raw, untrusted paging input bound from a request.
type ListQuery struct {
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
	OrderBy string `query:"orderBy"`
	Order   string `query:"order"`
}

// Descriptor is a validated, bounded paging request. Every field is safe to
// interpolate into a store query: OrderBy is guaranteed to be a member of the
// policy's allow-list.
type Descriptor struct {
	Page    int
	PerPage int
	OrderBy string
	Order   Direction
}

// Offset returns the number of records to skip for this page.
func (d Descriptor) Offset() int {
	return (d.Page - 1) * d.PerPage
}

// Normalize applies the policy to raw input. Out-of-range values clamp to the
// policy ceilings and unknown orderBy fields fall back to the policy default;
// nothing here rejects.
func Normalize(raw ListQuery, policy Policy) Descriptor {
	perDefault := policy.DefaultPerPage
	if perDefault <= 0 {
		perDefault = DefaultPerPage
	}
	maxPer := policy.MaxPerPage
	if maxPer <= 0 {
		maxPer = DefaultMaxPer
	}
	maxPage := policy.MaxPage
	if maxPage <= 0 {
		maxPage = DefaultMaxPage
	}
	orderDefault := policy.DefaultOrderBy
	if orderDefault == "" {
		orderDefault = DefaultOrderBy
	}
	dirDefault := policy.DefaultOrder
	if dirDefault == "" {
		dirDefault = DefaultDirection
	}

	desc := Descriptor{
		Page:    raw.Page,
		PerPage: raw.PerPage,
		OrderBy: raw.OrderBy,
		Order:   dirDefault,
	}

	if desc.Page < DefaultPage {
		desc.Page = DefaultPage
	}
	if desc.Page > maxPage {
		desc.Page = maxPage
	}

	if desc.PerPage <= 0 {
		desc.PerPage = perDefault
	}
	if desc.PerPage > maxPer {
		desc.PerPage = maxPer
	}

	if desc.OrderBy == "" || !slices.Contains(policy.AllowedOrderBy, desc.OrderBy) {
		desc.OrderBy = orderDefault
	}

	switch Direction(raw.Order) {
	case Ascending, Descending:
		desc.Order = Direction(raw.Order)
	}

	return desc
}
