package product

import "errors"

var ErrUnknownProduct = errors.New("unknown product type")

// Type identifies a purchasable (or free) content product.
type Type string

const (
	TypeWorkbook0 Type = "workbook_0" // permanently free tier
	TypeWorkbook1 Type = "workbook_1"
	TypeWorkbook2 Type = "workbook_2"
	TypeWorkbook3 Type = "workbook_3"
	TypeWorkbook4 Type = "workbook_4"
	TypeWorkbook5 Type = "workbook_5"
	TypeBundle    Type = "bundle"
	TypeWebinar   Type = "webinar"
)

var allTypes = []Type{
	TypeWorkbook0,
	TypeWorkbook1,
	TypeWorkbook2,
	TypeWorkbook3,
	TypeWorkbook4,
	TypeWorkbook5,
	TypeBundle,
	TypeWebinar,
}

func Parse(s string) (Type, error) {
	for _, t := range allTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrUnknownProduct
}

func All() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

func (t Type) String() string {
	return string(t)
}

// IsFree reports whether the product requires no purchase at all.
func (t Type) IsFree() bool {
	return t == TypeWorkbook0
}

var titles = map[Type]string{
	TypeWorkbook0: "Brand Foundations Workbook",
	TypeWorkbook1: "Audience & Positioning Workbook",
	TypeWorkbook2: "Voice & Messaging Workbook",
	TypeWorkbook3: "Visual Identity Workbook",
	TypeWorkbook4: "Launch Strategy Workbook",
	TypeWorkbook5: "Growth & Consistency Workbook",
	TypeBundle:    "Complete Blueprint Bundle",
	TypeWebinar:   "Live Brand Webinar",
}

func (t Type) Title() string {
	return titles[t]
}

func (t Type) IsWorkbook() bool {
	switch t {
	case TypeWorkbook0, TypeWorkbook1, TypeWorkbook2, TypeWorkbook3, TypeWorkbook4, TypeWorkbook5:
		return true
	default:
		return false
	}
}
