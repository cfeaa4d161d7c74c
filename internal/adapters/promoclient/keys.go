package promoclient

import (
	"fmt"

	"github.com/Amund211/skillforge/internal/domain"
)

// Cache keys are <endpoint>:<name>=<value>;... with the parameters in the
// order the endpoint declares them. Equal requests must produce equal keys.

func OffersKey(limit int, activeOnly bool) string {
	return fmt.Sprintf("offers:limit=%d;active=%t", limit, activeOnly)
}

func BannersKey(limit int, activeOnly bool) string {
	return fmt.Sprintf("banners:limit=%d;active=%t", limit, activeOnly)
}

func MiniOffersKey(limit int, activeOnly bool) string {
	return fmt.Sprintf("mini-offers:limit=%d;active=%t", limit, activeOnly)
}

func NotificationsKey(limit int, userType domain.UserType, activeOnly bool) string {
	return fmt.Sprintf("notifications:limit=%d;userType=%s;active=%t", limit, userType, activeOnly)
}

func CoursesKey(query domain.CourseQuery) string {
	return "courses:" + query.String()
}
