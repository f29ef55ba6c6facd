package casino

import (
	"math"
	"strings"
)

// Paging is the paging and ordering block shared by every listing filter.
// An empty OrderingDirection means no explicit direction.
type Paging struct {
	PageIndex         int    `json:"pageIndex"`
	PageSize          int    `json:"pageSize"`
	OrderingField     string `json:"orderingField,omitempty"`
	OrderingDirection string `json:"orderingDirection,omitempty"`
}

// Validate checks the paging block, stopping at the first invalid field.
func (p Paging) Validate() error {
	if p.PageIndex < 1 {
		return invalid("PageIndex")
	}
	if p.PageSize < 1 {
		return invalid("PageSize")
	}
	if p.OrderingDirection != "" {
		dir := strings.ToLower(p.OrderingDirection)
		if dir != "asc" && dir != "desc" {
			return invalid("OrderingDirection")
		}
	}
	return nil
}

// HashFields returns the paging values in backend hash order.
func (p Paging) HashFields() []string {
	return []string{
		p.OrderingDirection,
		p.OrderingField,
		FormatInt(int64(p.PageIndex)),
		FormatInt(int64(p.PageSize)),
	}
}

// Offset returns the zero based index of the first item of the page. It
// saturates at math.MaxInt for pages beyond any addressable item.
func (p Paging) Offset() int {
	if p.PageIndex <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.PageIndex-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.PageIndex - 1) * p.PageSize
}

// Rule is a single pre-dispatch check.
type Rule func() error

// Validate runs rules in order and returns the first failure.
func Validate(rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "invalid " + field}
}
