package landing

import (
	"strings"

	types "github.com/yungbote/bookfront/internal/domain"
)

const (
	newsletterText  = "Join our newsletter for exclusive content"
	subscribersText = "Exclusive for subscribers"
)

func freeCopyText(book types.Book) string {
	return "Get your FREE copy of " + book.Title
}

// ResolveHeading maps a heading slot to display text. Sources that are not
// valid for a heading, including book_description, resolve to "".
func ResolveHeading(spec *types.TextSpec, book types.Book) string {
	if spec == nil {
		return ""
	}
	switch spec.Type {
	case types.TextTagline:
		return book.Tagline
	case types.TextNewsletter:
		return newsletterText
	case types.TextGetFreeCopy:
		return freeCopyText(book)
	case types.TextSubscribers:
		return subscribersText
	case types.TextCustom:
		return spec.CustomText
	default:
		return ""
	}
}

// ResolveBodyText maps the page-text slot to display text.
func ResolveBodyText(spec *types.TextSpec, book types.Book) string {
	if spec == nil {
		return ""
	}
	switch spec.Type {
	case types.TextBookDescription:
		return book.Description
	case types.TextCustom:
		return spec.CustomText
	default:
		return ""
	}
}

// ReplacePlaceholders substitutes every literal {{title}}, then every
// {{author}}. A title that itself contains "{{author}}" is expanded too.
func ReplacePlaceholders(text string, book types.Book) string {
	text = strings.ReplaceAll(text, "{{title}}", book.Title)
	return strings.ReplaceAll(text, "{{author}}", book.Author)
}
