package statusreport

import "fmt"

// Color is a rendering hint telling a dashboard how severe a status is.
type Color string

const (
	ColorPrimary   Color = "Primary"
	ColorSecondary Color = "Secondary"
	ColorSuccess   Color = "Success"
	ColorWarning   Color = "Warning"
	ColorDanger    Color = "Danger"
	ColorError     Color = "Error"
	ColorInfo      Color = "Info"
)

func (c Color) IsValid() bool {
	switch c {
	case ColorPrimary, ColorSecondary, ColorSuccess, ColorWarning, ColorDanger, ColorError, ColorInfo:
		return true
	default:
		return false
	}
}

func (c Color) String() string {
	return string(c)
}

// ParseColor converts s into a Color, rejecting values outside the known set.
func ParseColor(s string) (Color, error) {
	c := Color(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// UnmarshalText lets colors be decoded from configuration and JSON.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// NoticeLevel classifies an advisory message attached to a report.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "Info"
	NoticeWarning NoticeLevel = "Warning"
	NoticeDanger  NoticeLevel = "Danger"
)

func (l NoticeLevel) IsValid() bool {
	switch l {
	case NoticeInfo, NoticeWarning, NoticeDanger:
		return true
	default:
		return false
	}
}
