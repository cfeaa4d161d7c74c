package domain

import "fmt"

type NotificationType string

const (
	NotificationTypeRecommendation NotificationType = "recommendation"
	NotificationTypeAchievement    NotificationType = "achievement"
	NotificationTypeReminder       NotificationType = "reminder"
	NotificationTypeSocial         NotificationType = "social"
	NotificationTypeMilestone      NotificationType = "milestone"
)

type NotificationPriority string

const (
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityLow    NotificationPriority = "low"
)

// Rank orders priorities so that a higher rank is shown first
func (p NotificationPriority) Rank() int {
	switch p {
	case NotificationPriorityHigh:
		return 3
	case NotificationPriorityMedium:
		return 2
	case NotificationPriorityLow:
		return 1
	default:
		return 0
	}
}

type UserType string

const (
	UserTypeAll      UserType = "all"
	UserTypeLoggedIn UserType = "logged-in"
	UserTypeNew      UserType = "new"
	UserTypePremium  UserType = "premium"
)

func ParseUserType(raw string) (UserType, error) {
	switch UserType(raw) {
	case UserTypeAll, UserTypeLoggedIn, UserTypeNew, UserTypePremium:
		return UserType(raw), nil
	}
	return "", fmt.Errorf("%w: unknown user type %q", ErrInvalidQuery, raw)
}

type Notification struct {
	ID              string               `json:"id"`
	Type            NotificationType     `json:"type"`
	Title           string               `json:"title"`
	Message         string               `json:"message"`
	ActionText      string               `json:"actionText"`
	ActionURL       string               `json:"actionUrl"`
	Icon            string               `json:"icon"`
	Priority        NotificationPriority `json:"priority"`
	BackgroundColor string               `json:"backgroundColor"`
	TextColor       string               `json:"textColor"`
	ShowAvatar      *bool                `json:"showAvatar,omitempty"`
	ShowProgress    *bool                `json:"showProgress,omitempty"`
	ProgressValue   *int                 `json:"progressValue,omitempty"`
	ExpiresAt       *string              `json:"expiresAt,omitempty"`
	IsActive        bool                 `json:"isActive"`
	TargetUserType  UserType             `json:"targetUserType"`
}

// TargetsUserType reports whether the notification should be shown to the given audience
func (n Notification) TargetsUserType(userType UserType) bool {
	if userType == UserTypeAll {
		return true
	}
	return n.TargetUserType == UserTypeAll || n.TargetUserType == userType
}
