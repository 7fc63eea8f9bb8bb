package reminder

import "errors"

var (
	ErrParseType = errors.New("invalid reminder type")
	ErrParseSide = errors.New("invalid sender/receiver side")
)

// Type is the recurrence policy of a reminder. Values read from the
// store may carry recurrence policies this engine does not know; such
// reminders are skipped at sweep time rather than rejected at read time.
type Type struct {
	v string
}

func (t Type) String() string {
	return t.v
}

func (t Type) IsValid() bool {
	return t == TypeBeforeDays || t == TypeWeekly
}

// TypeFrom wraps a raw stored value without validating it.
func TypeFrom(value string) Type {
	return Type{v: value}
}

func ParseType(value string) (Type, error) {
	switch value {
	case "BEFORE_DAYS":
		return TypeBeforeDays, nil
	case "WEEKLY":
		return TypeWeekly, nil
	default:
		return TypeUnknown, ErrParseType
	}
}

var (
	TypeUnknown    = Type{}
	TypeBeforeDays = Type{v: "BEFORE_DAYS"}
	TypeWeekly     = Type{v: "WEEKLY"}
)

// Side tells whether the business sends or receives the bill.
type Side struct {
	v string
}

func (s Side) String() string {
	return s.v
}

func (s Side) IsValid() bool {
	return s == SideSender || s == SideReceiver
}

// SideFrom wraps a raw stored value without validating it.
func SideFrom(value string) Side {
	return Side{v: value}
}

func ParseSide(value string) (Side, error) {
	switch value {
	case "sender":
		return SideSender, nil
	case "receiver":
		return SideReceiver, nil
	default:
		return SideUnknown, ErrParseSide
	}
}

var (
	SideUnknown  = Side{}
	SideSender   = Side{v: "sender"}
	SideReceiver = Side{v: "receiver"}
)
