package catalog

import "github.com/Amund211/skillforge/internal/domain"

func ptr[T any](v T) *T {
	return &v
}

func defaultOffers() []domain.Offer {
	return []domain.Offer{
		{
			ID:            "welcome-discount",
			Type:          domain.OfferTypeWelcome,
			Title:         "🎉 Welcome! Get 50% OFF",
			Subtitle:      "New User Special",
			Description:   "Start your learning journey with our exclusive welcome offer. Join 100,000+ students worldwide!",
			Discount:      ptr(50),
			OriginalPrice: "$199",
			SalePrice:     "$99",
			ButtonText:    "Claim Discount",
			ButtonURL:     "/categories?discount=welcome50",
			Trigger:       domain.OfferTriggerTime,
			TriggerValue:  5000,
			Gradient:      "from-blue-600 via-purple-600 to-pink-600",
			Pattern:       "geometric",
			Icon:          "Gift",
			Countdown:     ptr(24 * 60 * 60),
			IsActive:      true,
			Priority:      1,
		},
		{
			ID:            "flash-sale",
			Type:          domain.OfferTypeLimited,
			Title:         "⚡ MEGA FLASH SALE",
			Subtitle:      "70% OFF Everything",
			Description:   "Our biggest sale of the year! All 500+ courses included. Limited slots available.",
			Discount:      ptr(70),
			OriginalPrice: "$299",
			SalePrice:     "$89",
			ButtonText:    "Shop Now",
			ButtonURL:     "/categories?sale=flash70",
			Trigger:       domain.OfferTriggerScroll,
			TriggerValue:  50,
			Gradient:      "from-red-600 via-orange-500 to-yellow-500",
			Pattern:       "lightning",
			Icon:          "Zap",
			Countdown:     ptr(6 * 60 * 60),
			IsActive:      false,
			Priority:      2,
		},
	}
}

func defaultBanners() []domain.Banner {
	return []domain.Banner{
		{
			ID:              "flash-sale-banner",
			Type:            domain.BannerTypeTopBar,
			Title:           "⚡ FLASH SALE ALERT",
			Message:         "70% OFF all courses - Limited time only!",
			CTAText:         "Shop Now",
			CTAURL:          "/categories?flash=70off",
			BackgroundColor: "bg-gradient-to-r from-red-600 to-orange-500",
			TextColor:       "text-white",
			Icon:            "Zap",
			Position:        domain.BannerPositionTop,
			Animation:       domain.BannerAnimationSlide,
			Duration:        10000,
			IsActive:        true,
			Priority:        1,
		},
		{
			ID:              "new-courses-banner",
			Type:            domain.BannerTypeFloatingBanner,
			Title:           "🆕 NEW COURSES DROPPED",
			Message:         "50 brand new courses added this week!",
			CTAText:         "Explore New",
			CTAURL:          "/categories?filter=new",
			BackgroundColor: "bg-gradient-to-r from-blue-600 to-purple-600",
			TextColor:       "text-white",
			Icon:            "Sparkles",
			Position:        domain.BannerPositionBottom,
			Animation:       domain.BannerAnimationFade,
			Duration:        8000,
			IsActive:        false,
			Priority:        2,
		},
	}
}

func defaultNotifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:              "course-recommendation",
			Type:            domain.NotificationTypeRecommendation,
			Title:           "📚 Perfect Match Found!",
			Message:         `Based on your React skills, we recommend "Advanced React Patterns" - 94% match`,
			ActionText:      "View Course",
			ActionURL:       "/course/advanced-react-patterns",
			Icon:            "BookOpen",
			Priority:        domain.NotificationPriorityHigh,
			BackgroundColor: "bg-gradient-to-r from-blue-500 to-indigo-600",
			TextColor:       "text-white",
			ShowProgress:    ptr(true),
			ProgressValue:   ptr(94),
			IsActive:        true,
			TargetUserType:  domain.UserTypeLoggedIn,
		},
		{
			ID:              "streak-achievement",
			Type:            domain.NotificationTypeAchievement,
			Title:           "🔥 Streak Master!",
			Message:         "Congrats! You have maintained a 7-day learning streak. Keep it up!",
			ActionText:      "Continue Learning",
			ActionURL:       "/my-learning",
			Icon:            "Trophy",
			Priority:        domain.NotificationPriorityHigh,
			BackgroundColor: "bg-gradient-to-r from-orange-500 to-red-500",
			TextColor:       "text-white",
			ShowProgress:    ptr(true),
			ProgressValue:   ptr(100),
			IsActive:        false,
			TargetUserType:  domain.UserTypeLoggedIn,
		},
	}
}

func defaultMiniOffers() []domain.MiniOffer {
	return []domain.MiniOffer{
		{
			ID:        "free-course",
			Message:   `🎁 Free course of the week: "JavaScript Basics"`,
			Action:    "Claim Free",
			ActionURL: "/course/free-javascript",
			Icon:      "Gift",
			Color:     "bg-green-500",
			Duration:  8000,
			IsActive:  true,
			Priority:  1,
		},
		{
			ID:        "flash-discount",
			Message:   "⚡ Flash: 30% off all courses expires in 2 hours!",
			Action:    "Shop Now",
			ActionURL: "/categories?flash=30",
			Icon:      "Zap",
			Color:     "bg-orange-500",
			Duration:  10000,
			IsActive:  false,
			Priority:  2,
		},
	}
}

func defaultCourses() []domain.Course {
	return []domain.Course{
		{
			ID:               "react-fundamentals",
			Title:            "React Fundamentals",
			Description:      "Learn React from scratch with hands-on projects and real-world examples.",
			Instructor:       "Sarah Johnson",
			Duration:         "12 hours",
			Level:            domain.CourseLevelBeginner,
			Price:            89.99,
			OriginalPrice:    ptr(149.99),
			Discount:         ptr(40),
			Rating:           4.8,
			ReviewCount:      2847,
			Category:         "Development",
			Image:            "/images/courses/react-fundamentals.jpg",
			Tags:             []string{"React", "JavaScript", "Frontend", "Components"},
			IsPopular:        true,
			StudentsEnrolled: 15420,
		},
		{
			ID:               "advanced-react-patterns",
			Title:            "Advanced React Patterns",
			Description:      "Master advanced React patterns, hooks, and performance optimization techniques.",
			Instructor:       "David Chen",
			Duration:         "18 hours",
			Level:            domain.CourseLevelAdvanced,
			Price:            129.99,
			OriginalPrice:    ptr(199.99),
			Discount:         ptr(35),
			Rating:           4.9,
			ReviewCount:      1523,
			Category:         "Development",
			Image:            "/images/courses/advanced-react.jpg",
			Tags:             []string{"React", "Advanced", "Hooks", "Performance"},
			IsNew:            true,
			StudentsEnrolled: 8750,
		},
		{
			ID:               "nodejs-backend",
			Title:            "Node.js Backend Development",
			Description:      "Build scalable backend APIs with Node.js, Express, and MongoDB.",
			Instructor:       "Michael Rodriguez",
			Duration:         "20 hours",
			Level:            domain.CourseLevelIntermediate,
			Price:            99.99,
			OriginalPrice:    ptr(179.99),
			Discount:         ptr(45),
			Rating:           4.7,
			ReviewCount:      3201,
			Category:         "Development",
			Image:            "/images/courses/nodejs-backend.jpg",
			Tags:             []string{"Node.js", "Express", "MongoDB", "API"},
			IsPopular:        true,
			StudentsEnrolled: 12300,
		},
		{
			ID:               "ui-ux-design",
			Title:            "UI/UX Design Masterclass",
			Description:      "Create stunning user interfaces and exceptional user experiences.",
			Instructor:       "Emma Wilson",
			Duration:         "15 hours",
			Level:            domain.CourseLevelBeginner,
			Price:            79.99,
			OriginalPrice:    ptr(129.99),
			Discount:         ptr(38),
			Rating:           4.8,
			ReviewCount:      1876,
			Category:         "Design",
			Image:            "/images/courses/ui-ux-design.jpg",
			Tags:             []string{"UI", "UX", "Figma", "Design"},
			StudentsEnrolled: 9640,
		},
		{
			ID:               "python-data-science",
			Title:            "Python for Data Science",
			Description:      "Learn Python programming for data analysis, visualization, and machine learning.",
			Instructor:       "Dr. Lisa Park",
			Duration:         "25 hours",
			Level:            domain.CourseLevelIntermediate,
			Price:            149.99,
			OriginalPrice:    ptr(249.99),
			Discount:         ptr(40),
			Rating:           4.9,
			ReviewCount:      4562,
			Category:         "Data Science",
			Image:            "/images/courses/python-data-science.jpg",
			Tags:             []string{"Python", "Data Science", "ML", "Analytics"},
			IsPopular:        true,
			StudentsEnrolled: 18750,
		},
		{
			ID:               "digital-marketing",
			Title:            "Complete Digital Marketing",
			Description:      "Master SEO, social media marketing, PPC, and content marketing strategies.",
			Instructor:       "Robert Taylor",
			Duration:         "22 hours",
			Level:            domain.CourseLevelBeginner,
			Price:            89.99,
			OriginalPrice:    ptr(159.99),
			Discount:         ptr(44),
			Rating:           4.6,
			ReviewCount:      2834,
			Category:         "Marketing",
			Image:            "/images/courses/digital-marketing.jpg",
			Tags:             []string{"SEO", "Social Media", "PPC", "Content"},
			StudentsEnrolled: 11230,
		},
	}
}
