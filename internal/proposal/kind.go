package proposal

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of a challenge: how its proposals are authored and
// how its answers are encoded.
type Kind int

const (
	KindUnknown Kind = iota
	SingleChoice
	MultiChoice
	SingleText
	MultiText
	ConfirmationOnly
)

// Stored type codes, as written by content authoring.
const (
	TypeSingleChoice     = "QCU"
	TypeMultiChoice      = "QCM"
	TypeSingleText       = "QROC"
	TypeMultiText        = "QROCM"
	TypeConfirmationOnly = "QCU_CONFIRM"
)

var kindCodes = map[Kind]string{
	SingleChoice:     TypeSingleChoice,
	MultiChoice:      TypeMultiChoice,
	SingleText:       TypeSingleText,
	MultiText:        TypeMultiText,
	ConfirmationOnly: TypeConfirmationOnly,
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{SingleChoice, MultiChoice, SingleText, MultiText, ConfirmationOnly}
}

// ParseKind maps a stored type code to its Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(code string) (Kind, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for kind, c := range kindCodes {
		if c == code {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown challenge type %q", code)
}

// String returns the stored type code.
func (k Kind) String() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return "UNKNOWN"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsChoice reports whether proposals use the list syntax and answers the
// comma-separated index format.
func (k Kind) IsChoice() bool {
	return k == SingleChoice || k == MultiChoice
}

// IsText reports whether proposals use the placeholder syntax.
func (k Kind) IsText() bool {
	return k == SingleText || k == MultiText
}
